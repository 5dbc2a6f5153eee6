package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/geom"
)

// collect drains an AxisSearch into a slice for assertion.
func collect(a *geom.AxisSearch) []int32 {
	var out []int32
	for ; !a.Done(); a.Next() {
		out = append(out, a.Get())
	}

	return out
}

func TestAxisSearch_StartAtMin(t *testing.T) {
	got := collect(geom.NewAxisSearch(0, 0, 7))
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6, 7}, got)
	assert.Equal(t, 8, len(got), "no duplicate emissions at the grid edge")
}

func TestAxisSearch_StartAtMax(t *testing.T) {
	got := collect(geom.NewAxisSearch(7, 0, 7))
	assert.Equal(t, []int32{7, 6, 5, 4, 3, 2, 1, 0}, got)
}

func TestAxisSearch_StartInMiddle(t *testing.T) {
	got := collect(geom.NewAxisSearch(3, 0, 7))
	assert.Equal(t, []int32{3, 4, 2, 5, 1, 6, 0, 7}, got)
	assert.ElementsMatch(t, []int32{0, 1, 2, 3, 4, 5, 6, 7}, got)
}

func TestAxisSearch_ClampsOutOfRangeStart(t *testing.T) {
	got := collect(geom.NewAxisSearch(99, 0, 3))
	assert.Equal(t, []int32{3, 2, 1, 0}, got)
}

func TestAxisSearch_Fixed(t *testing.T) {
	a := geom.NewFixedAxisSearch(5)
	assert.False(t, a.Done())
	assert.Equal(t, int32(5), a.Get())
	a.Next()
	assert.True(t, a.Done())
}

func TestAxisSearch_Reset(t *testing.T) {
	a := geom.NewAxisSearch(0, 0, 2)
	first := collect(a)
	a.Reset()
	second := collect(a)
	assert.Equal(t, first, second)
}

func TestAxisSearch_SingleValueRange(t *testing.T) {
	got := collect(geom.NewAxisSearch(0, 0, 0))
	assert.Equal(t, []int32{0}, got)
}
