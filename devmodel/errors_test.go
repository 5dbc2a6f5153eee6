package devmodel_test

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/devmodel"
)

func TestUnplaceableCellError_MessageAndCause(t *testing.T) {
	cause := devmodel.ErrNoBelOfType
	err := devmodel.NewUnplaceableCellError("my_cell", 4, cause)

	assert.ErrorContains(t, err, `"my_cell"`)
	assert.ErrorContains(t, err, "4")

	var upe *devmodel.UnplaceableCellError
	assert.ErrorAs(t, err, &upe)
	assert.Equal(t, "my_cell", upe.Cell)
	assert.Equal(t, 4, upe.TriedBels)
	assert.Same(t, cause, upe.Cause())
}

func TestUnsatisfiableChainError_MessageAndDump(t *testing.T) {
	err := devmodel.NewUnsatisfiableChainError("root_cell", "root_cell @ 1,1,0\n", nil)

	assert.ErrorContains(t, err, `"root_cell"`)

	var uce *devmodel.UnsatisfiableChainError
	assert.ErrorAs(t, err, &uce)
	assert.Equal(t, "root_cell", uce.Root)
	assert.Contains(t, uce.ChainDump, "root_cell @ 1,1,0")
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.False(t, pkgerrors.Is(devmodel.ErrNoBelOfType, devmodel.ErrCellLocked))
}
