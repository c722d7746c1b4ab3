package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gridkind/sudoku/puzzle"
	"github.com/spf13/cobra"
)

var serveListen string

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP solving service",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	commandServe.Flags().StringVarP(&serveListen, "listen", "l", "",
		"listen address (default $SUDOKU_LISTEN or localhost:8080)")
	mainCommand.AddCommand(commandServe)
}

func runServe() error {
	addr := serveListen
	if addr == "" {
		addr = os.Getenv("SUDOKU_LISTEN")
	}
	if addr == "" {
		// running locally in dev mode
		addr = "localhost:8080"
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Route("/api", func(r chi.Router) {
		r.Post("/solve", puzzle.SolveHandler)
		r.Post("/validate", puzzle.ValidateHandler)
		r.Get("/solve/live", puzzle.LiveSolveHandler)
	})

	server := &http.Server{Addr: addr, Handler: router}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s...", addr)
		errs <- server.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errs:
		return err
	case sig := <-signals:
		log.Printf("Received %v, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
