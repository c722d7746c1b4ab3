package puzzle

/*

Constraint propagation

The propagator does "naked single" elimination only: a known
square's value can't appear in any square of its three containing
groups, so it is removed from all of their candidate sets.  Each
removal can turn more squares into known squares, so full passes
repeat until a pass removes nothing.  Candidate sets only shrink,
so the loop terminates after at most 9x9x9 eliminations.

*/

// Propagate narrows the grid to its naked-single fixed point.  It
// returns nil when the fixed point is reached, or the contradiction
// Error when an elimination empties some square's candidate set, in
// which case the grid must not be mutated further: the puzzle is
// unsolvable.  Propagate on an already-fixed-point grid changes
// nothing.
func (g *Grid) Propagate() error {
	if len(g.errors) > 0 {
		return g.errors[0]
	}
	for {
		removed := false
		for i := 1; i <= SquareCount; i++ {
			s := g.squares[i]
			if len(s.pvals) != 1 {
				continue
			}
			v := s.pvals[0]
			for _, pi := range g.mapping.peers[i] {
				if g.eliminate(pi, v) {
					removed = true
				}
				if len(g.errors) > 0 {
					return g.errors[0]
				}
			}
		}
		if !removed {
			return nil
		}
	}
}
