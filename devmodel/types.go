// This file declares the grid and identifier primitives shared by Cell, Net,
// and DeviceContext: Loc, Strength, BelID, BelType, CellType, Delay, and the
// UNCONSTR sentinel used by the constraint fields in cell.go.
package devmodel

import "fmt"

// UNCONSTR is the sentinel value for an unset constraint axis. It is chosen
// far outside any realistic grid coordinate so a stray comparison against a
// real location never accidentally matches.
const UNCONSTR int32 = -1 << 30

// BelID identifies a single basic element of logic on the device grid.
// Its zero value never denotes a real bel; DeviceContext.BelByLocation
// returns ok=false rather than the zero BelID when no bel exists.
type BelID string

// BelType and CellType are opaque architecture-specific type tags. A bel of
// a given BelType accepts only cells whose CellType maps to it via
// DeviceContext.BelTypeFromCellType.
type (
	BelType  string
	CellType string
)

// Delay is an architecture-specific, unitless timing quantity produced by
// DeviceContext.PredictDelay. User.Budget uses the same units, so slack is
// computed in Delay units and converted to nanoseconds via
// DeviceContext.DelayNS afterwards.
type Delay int64

// Loc is a discrete point on the device's 3-D grid. X and Y index a
// rectangular tile array (bounded by GridDimX/GridDimY); Z indexes the
// bels stacked within one tile (bounded by TileDimZ(X,Y)).
//
// Loc is comparable and safe to use as a map key; locset additionally packs
// it into a uint64 for a denser, hash-based "used" set during constraint
// search (see legalise/search.go).
type Loc struct {
	X, Y, Z int32
}

// String renders a Loc as "x,y,z" for log messages and chain dumps.
func (l Loc) String() string {
	return fmt.Sprintf("%d,%d,%d", l.X, l.Y, l.Z)
}

// Sub returns the componentwise difference l - other, used by
// constraints_distance and the relative-offset search to turn an absolute
// child location into a parent-relative delta.
func (l Loc) Sub(other Loc) Loc {
	return Loc{X: l.X - other.X, Y: l.Y - other.Y, Z: l.Z - other.Z}
}

// Strength totally orders which cell may displace which during placement
// and ripup. NONE is the weakest (never placed); LOCKED is the strongest
// (never unbound by any operation in this package).
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthStrong
	StrengthLocked
)

// String renders a Strength for log lines and test failure messages.
func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "NONE"
	case StrengthWeak:
		return "WEAK"
	case StrengthStrong:
		return "STRONG"
	case StrengthLocked:
		return "LOCKED"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}
