package devmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/devmodel"
)

func TestLoc_Sub(t *testing.T) {
	a := devmodel.Loc{X: 5, Y: 7, Z: 1}
	b := devmodel.Loc{X: 2, Y: 3, Z: 1}
	assert.Equal(t, devmodel.Loc{X: 3, Y: 4, Z: 0}, a.Sub(b))
}

func TestLoc_String(t *testing.T) {
	assert.Equal(t, "3,4,0", devmodel.Loc{X: 3, Y: 4, Z: 0}.String())
}

func TestStrength_Order(t *testing.T) {
	assert.Less(t, int(devmodel.StrengthNone), int(devmodel.StrengthWeak))
	assert.Less(t, int(devmodel.StrengthWeak), int(devmodel.StrengthStrong))
	assert.Less(t, int(devmodel.StrengthStrong), int(devmodel.StrengthLocked))
}

func TestStrength_String(t *testing.T) {
	assert.Equal(t, "NONE", devmodel.StrengthNone.String())
	assert.Equal(t, "WEAK", devmodel.StrengthWeak.String())
	assert.Equal(t, "STRONG", devmodel.StrengthStrong.String())
	assert.Equal(t, "LOCKED", devmodel.StrengthLocked.String())
}
