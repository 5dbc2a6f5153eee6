package devmodel

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoBelOfType indicates the device has no bel matching a cell's type
	// at all (a configuration error distinct from transient unavailability).
	ErrNoBelOfType = errors.New("devmodel: no bel of matching type on device")

	// ErrCellLocked indicates an operation attempted to unbind or ripup a
	// cell whose strength is already LOCKED.
	ErrCellLocked = errors.New("devmodel: cannot unbind a LOCKED cell")
)

// UnplaceableCellError is the fatal error place.PlaceSingleCell raises when
// no bel of matching type is available and no ripup victim under STRONG
// exists, or the ripup iteration budget is exhausted.
type UnplaceableCellError struct {
	Cell      string
	TriedBels int
	cause     error
}

func (e *UnplaceableCellError) Error() string {
	return fmt.Sprintf("devmodel: cell %q is unplaceable after trying %d bel(s)", e.Cell, e.TriedBels)
}

// Cause lets callers errors.Cause() down to the underlying reason, if any.
func (e *UnplaceableCellError) Cause() error { return e.cause }

// NewUnplaceableCellError wraps an optional lower-level cause with the
// cell/trial-count context a caller needs to diagnose a fatal placement
// failure.
func NewUnplaceableCellError(cellName string, triedBels int, cause error) error {
	return errors.WithStack(&UnplaceableCellError{Cell: cellName, TriedBels: triedBels, cause: cause})
}

// UnsatisfiableChainError is the fatal error legalise.LegaliseConstraints
// raises when no root location admits a valid recursive assignment for a
// constraint chain, preceded by a debug dump of the chain tree.
type UnsatisfiableChainError struct {
	Root      string
	ChainDump string
	cause     error
}

func (e *UnsatisfiableChainError) Error() string {
	return fmt.Sprintf("devmodel: constraint chain rooted at %q is unsatisfiable", e.Root)
}

// Cause lets callers errors.Cause() down to the underlying reason, if any.
func (e *UnsatisfiableChainError) Cause() error { return e.cause }

// NewUnsatisfiableChainError attaches the chain's pretty-printed dump to a
// fatal legalisation failure.
func NewUnsatisfiableChainError(rootName, chainDump string, cause error) error {
	return errors.WithStack(&UnsatisfiableChainError{Root: rootName, ChainDump: chainDump, cause: cause})
}
