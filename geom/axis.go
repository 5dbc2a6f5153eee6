// Package geom implements the increasing-diameter axis search used by
// legalisation: a small stateful iterator that emits start, start+1, start-1,
// start+2, start-2, ..., restricted to [min,max] (candidates outside the
// range are skipped, so no value is emitted twice), in order of increasing
// |offset|, plus a degenerate single-value form for fixed axes.
//
// legalise uses one AxisSearch per axis (X, Y, Z) when searching for a root
// or child location; the three-axis nested iteration treats Z as innermost,
// then Y, then X (see legalise/search.go).
package geom

// AxisSearch enumerates candidate integer coordinates along one axis in
// order of increasing distance from a starting point, skipping candidates
// outside [min,max].
// A "fixed" search (constructed with NewFixedAxisSearch) instead emits
// exactly one value.
type AxisSearch struct {
	start, min, max int32
	fixed           bool
	fixedVal        int32

	offset  int32 // current |offset| from start, 0-based
	tryPlus bool  // within one offset magnitude, try +offset before -offset
	cur     int32
	ok      bool // whether cur holds a valid, not-yet-exhausted candidate
	done_   bool
}

// NewAxisSearch returns an iterator over [min,max] starting at start and
// expanding outward. start is clamped into [min,max] first.
func NewAxisSearch(start, min, max int32) *AxisSearch {
	if start < min {
		start = min
	}
	if start > max {
		start = max
	}
	a := &AxisSearch{start: start, min: min, max: max}
	a.reset()

	return a
}

// NewFixedAxisSearch returns an iterator that emits exactly one value: v.
// Used when a cell's constraint pins an axis to a single coordinate rather
// than leaving it free to search.
func NewFixedAxisSearch(v int32) *AxisSearch {
	return &AxisSearch{fixed: true, fixedVal: v, ok: true}
}

// Reset rewinds the iterator to its first candidate. The nested three-axis
// iteration resets an inner axis each time an outer axis advances.
func (a *AxisSearch) Reset() { a.reset() }

func (a *AxisSearch) reset() {
	if a.fixed {
		a.ok = true
		a.done_ = false
		return
	}
	a.offset = 0
	a.tryPlus = true
	a.done_ = false
	a.ok = false
	a.advanceToValid()
}

// Done reports whether the iterator has exhausted its candidates.
func (a *AxisSearch) Done() bool {
	if a.fixed {
		return a.done_
	}

	return a.done_ || !a.ok
}

// Get returns the current candidate. Valid only when !Done().
func (a *AxisSearch) Get() int32 {
	if a.fixed {
		return a.fixedVal
	}

	return a.cur
}

// Next advances to the following candidate.
func (a *AxisSearch) Next() {
	if a.fixed {
		a.done_ = true
		return
	}
	a.step()
	a.advanceToValid()
}

// step advances the internal (offset, sign) state by exactly one emission,
// without regard to clamping; advanceToValid then skips clamped duplicates.
func (a *AxisSearch) step() {
	if a.offset == 0 {
		a.offset = 1
		a.tryPlus = true
		return
	}
	if a.tryPlus {
		a.tryPlus = false
		return
	}
	a.offset++
	a.tryPlus = true
}

// advanceToValid scans forward from the current (offset,sign) state until it
// finds a candidate inside [min,max], skipping +offset or -offset branches
// that fall outside the grid rather than clamping them to a boundary value
// already emitted at a smaller offset — boundary behaviour must not emit
// duplicates.
func (a *AxisSearch) advanceToValid() {
	span := a.max - a.min
	for {
		if a.offset > span {
			a.ok = false
			a.done_ = true
			return
		}
		var cand int32
		if a.offset == 0 {
			cand = a.start
		} else if a.tryPlus {
			cand = a.start + a.offset
			if cand > a.max {
				// +offset falls outside the grid: this whole magnitude
				// only has a -offset candidate (or none).
				a.tryPlus = false
				continue
			}
		} else {
			cand = a.start - a.offset
			if cand < a.min {
				a.offset++
				a.tryPlus = true
				continue
			}
		}
		a.cur = cand
		a.ok = true
		return
	}
}
