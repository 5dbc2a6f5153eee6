// SPDX-License-Identifier: MIT
//
// File: context.go
// Role: Thin, deterministic public facade exposing the DeviceContext
// contract the placement core consumes from the device database and
// netlist collaborators.
// Policy:
//   - No algorithms or hidden state here — only the interface shape.
//   - Concurrency model: the core is single-threaded and sequential;
//     DeviceContext need not be safe for concurrent use.
package devmodel

// DeviceContext is the minimum subset of device-database and
// placement-map operations the placement core requires. A
// real implementation wraps the architecture database and the live
// placement map; devtest.Fixture provides a small in-memory one for tests.
type DeviceContext interface {
	// Bels enumerates every bel on the device, in a stable order. Search
	// determinism depends on this order being identical across runs on
	// the same device.
	Bels() []BelID

	// BelType returns the architecture type tag of bel.
	BelType(bel BelID) BelType

	// BelTypeFromCellType maps a cell type to the bel type that can host it.
	BelTypeFromCellType(ct CellType) BelType

	// BelLocation returns the grid location of bel.
	BelLocation(bel BelID) Loc

	// BelByLocation returns the bel at loc, if any.
	BelByLocation(loc Loc) (BelID, bool)

	// GridDimX and GridDimY bound the X and Y axes of the device grid.
	GridDimX() int32
	GridDimY() int32

	// TileDimZ bounds the Z axis of the tile at (x,y).
	TileDimZ(x, y int32) int32

	// IsGlobalBuf reports whether bel is a clock/global-network buffer,
	// excluded from wirelength geometry.
	IsGlobalBuf(bel BelID) bool

	// IsValidBelForCell enforces architecture-specific legality beyond a
	// bare type match.
	IsValidBelForCell(cell *Cell, bel BelID) bool

	// CheckBelAvail reports whether bel currently holds no cell.
	CheckBelAvail(bel BelID) bool

	// BoundBelCell returns the cell currently bound to bel, or nil.
	BoundBelCell(bel BelID) *Cell

	// ConflictingBelCell returns the cell that would conflict with a
	// hypothetical bind to bel, or nil if bel is free. For most
	// implementations this is the same as BoundBelCell; the two are kept
	// distinct because an architecture may reserve a bel for reasons other
	// than an explicit bind (e.g. a shared resource column).
	ConflictingBelCell(bel BelID) *Cell

	// BindBel binds bel to the cell named cellName at the given strength.
	// The caller (place, legalise) is responsible for first unbinding any
	// incumbent permitted by the strength invariants.
	BindBel(bel BelID, cellName string, strength Strength)

	// UnbindBel clears bel's binding. The caller must have already checked
	// that the bound cell's strength is strictly less than LOCKED.
	UnbindBel(bel BelID)

	// PredictDelay estimates the delay from net's driver to user.
	PredictDelay(net *Net, user *User) Delay

	// DelayNS converts a Delay to nanoseconds.
	DelayNS(d Delay) float64

	// Rng returns a uniform integer in [0,n). Used only for the placer's
	// tie-breaking jitter; must be seeded reproducibly for two runs on
	// the same input to produce identical bindings.
	Rng(n int) int

	// TimingDriven reports whether COST-mode metrics should apply the
	// slack-based multiplier.
	TimingDriven() bool

	// Verbose gates the informational log lines place and legalise emit.
	Verbose() bool
}
