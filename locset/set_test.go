package locset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/devmodel"
	"github.com/nextpnr-go/placecore/locset"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := locset.New(4)
	loc := devmodel.Loc{X: 1, Y: 2, Z: 3}

	assert.False(t, s.Contains(loc))
	s.Add(loc)
	assert.True(t, s.Contains(loc))
	assert.Equal(t, 1, s.Len())

	s.Remove(loc)
	assert.False(t, s.Contains(loc))
	assert.Equal(t, 0, s.Len())
}

func TestSet_DistinctLocationsDoNotCollide(t *testing.T) {
	s := locset.New(4)
	a := devmodel.Loc{X: 1, Y: 0, Z: 0}
	b := devmodel.Loc{X: 0, Y: 1, Z: 0}

	s.Add(a)
	assert.True(t, s.Contains(a))
	assert.False(t, s.Contains(b), "distinct triples must not alias through the packed hash key")
}

func TestSet_RemoveIsIdempotent(t *testing.T) {
	s := locset.New(0)
	loc := devmodel.Loc{X: 9, Y: 9, Z: 9}
	s.Remove(loc) // never added; must not panic
	assert.Equal(t, 0, s.Len())
}

func TestSet_ZeroValueUsable(t *testing.T) {
	var s locset.Set
	loc := devmodel.Loc{X: 1, Y: 1, Z: 1}
	assert.False(t, s.Contains(loc))
	s.Add(loc)
	assert.True(t, s.Contains(loc))
}
