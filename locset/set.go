// Package locset implements the "used" set of grid locations the
// constraint search claims and releases as it backtracks.
//
// Rather than a native map[devmodel.Loc]struct{}, Set packs each Loc into a
// 12-byte buffer and hashes it with farm.Hash64 (github.com/dgryski/go-farm)
// into a single uint64 bucket key: one arithmetic key instead of a
// three-field struct comparison on every lookup during the hot recursive
// search, which claims and releases entries on every candidate.
package locset

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"

	"github.com/nextpnr-go/placecore/devmodel"
)

// Set is a hash set of devmodel.Loc, keyed by a packed/hashed triple.
// Zero value is an empty, ready-to-use set.
type Set struct {
	m map[uint64]devmodel.Loc
}

// New returns an empty Set with room for n entries.
func New(n int) *Set {
	return &Set{m: make(map[uint64]devmodel.Loc, n)}
}

func key(l devmodel.Loc) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(l.X))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(l.Y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(l.Z))

	return farm.Hash64(buf[:])
}

// Add inserts l into the set. Add is idempotent.
func (s *Set) Add(l devmodel.Loc) {
	if s.m == nil {
		s.m = make(map[uint64]devmodel.Loc, 8)
	}
	s.m[key(l)] = l
}

// Remove deletes l from the set, used to unwind a backtracked candidate.
func (s *Set) Remove(l devmodel.Loc) {
	if s.m == nil {
		return
	}
	delete(s.m, key(l))
}

// Contains reports whether l is currently in the set.
func (s *Set) Contains(l devmodel.Loc) bool {
	if s.m == nil {
		return false
	}
	got, ok := s.m[key(l)]

	return ok && got == l
}

// Len returns the number of entries currently held.
func (s *Set) Len() int { return len(s.m) }
