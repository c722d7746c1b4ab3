package puzzle

/*

Exhaustive search

When propagation stalls, the remaining possibilities form the
Cartesian product of each undetermined square's candidate set.  The
enumerator walks that product in odometer order (last square varies
fastest) and reports each step as a delta against the previous
combination: the digit to retract and the digit to set, per changed
square.  Successive combinations differ in few squares, so applying
deltas to a persistent cube keeps the per-trial cost proportional
to the change, not to the whole grid.  The first step has no prior
state to diff against and yields the full initial assignment.

*/

// A move names a digit choice for a square.
type move struct {
	index int // 1-based square index
	digit int
}

// A delta is one square's change between successive combinations.
// retract is the zero move on the first step.
type delta struct {
	retract move
	set     move
}

// An enumerator produces the combinations of an undetermined
// grid's candidates as delta lists.  It is finite, forward-only,
// and restartable only by constructing a new one.
type enumerator struct {
	indices [][]int // candidate digits per undetermined square
	squares []int   // 1-based square index per slot
	pos     []int   // current odometer position
	started bool
}

// newEnumerator collects the undetermined squares of a grid in
// index order, candidates ascending.
func newEnumerator(g *Grid) *enumerator {
	e := &enumerator{}
	for i := 1; i <= SquareCount; i++ {
		if len(g.squares[i].pvals) > 1 {
			e.squares = append(e.squares, i)
			e.indices = append(e.indices, newIntsetCopy(g.squares[i].pvals))
		}
	}
	e.pos = make([]int, len(e.squares))
	return e
}

// next yields the deltas for the following combination, or false
// when the product is exhausted.  The first call yields a set move
// for every undetermined square.
func (e *enumerator) next() ([]delta, bool) {
	if !e.started {
		e.started = true
		ds := make([]delta, len(e.squares))
		for k, si := range e.squares {
			ds[k] = delta{set: move{si, e.indices[k][0]}}
		}
		return ds, true
	}
	// advance the odometer: rightmost slot that can still move
	k := len(e.pos) - 1
	for k >= 0 && e.pos[k] == len(e.indices[k])-1 {
		k--
	}
	if k < 0 {
		return nil, false
	}
	var ds []delta
	prev := e.indices[k][e.pos[k]]
	e.pos[k]++
	ds = append(ds, delta{
		retract: move{e.squares[k], prev},
		set:     move{e.squares[k], e.indices[k][e.pos[k]]},
	})
	// slots to the right wrap around to their first candidate
	for j := k + 1; j < len(e.pos); j++ {
		prev := e.indices[j][e.pos[j]]
		e.pos[j] = 0
		ds = append(ds, delta{
			retract: move{e.squares[j], prev},
			set:     move{e.squares[j], e.indices[j][0]},
		})
	}
	return ds, true
}

// A searchOutcome carries the result of an exhaustive search.
type searchOutcome struct {
	found    bool
	canceled bool
	solution []int // 81 row-major digits, when found
	tried    uint64
}

// search enumerates the grid's remaining combinations and returns
// the first assignment the validator accepts.  The caller is
// responsible for the budget gate; search itself runs to
// completion, except that a non-nil progress callback returning
// false stops it cooperatively after the current trial.
//
// The grid itself is not mutated: deltas are applied to a cube and
// to a parallel digit slice owned by the search.
func (g *Grid) search(progress func(tried uint64) bool) (searchOutcome, error) {
	digits := g.values()
	cb := cubeFromDigits(digits)
	e := newEnumerator(g)
	var out searchOutcome
	for {
		ds, ok := e.next()
		if !ok {
			return out, nil
		}
		for _, d := range ds {
			row, col := (d.set.index-1)/SideLength, (d.set.index-1)%SideLength
			if d.retract.digit != 0 {
				cb.retract(row, col, d.retract.digit)
			}
			cb.set(row, col, d.set.digit)
			digits[d.set.index-1] = d.set.digit
		}
		out.tried++
		valid, err := cb.valid()
		if err != nil {
			// can't happen: the enumerator keeps the cube one-hot
			return out, err
		}
		if valid {
			out.found = true
			out.solution = append([]int(nil), digits...)
			return out, nil
		}
		if progress != nil && !progress(out.tried) {
			out.canceled = true
			return out, nil
		}
	}
}
