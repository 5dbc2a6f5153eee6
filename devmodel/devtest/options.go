// File: options.go
// Role: functional options for devtest.New. Option constructors validate
// and panic on meaningless inputs, algorithms themselves never do.
package devtest

import "github.com/nextpnr-go/placecore/devmodel"

// Option customizes a Fixture before it is handed to a test.
type Option func(*Fixture)

// WithGridDim sets the X/Y grid bounds. Panics on non-positive dimensions.
func WithGridDim(dimX, dimY int32) Option {
	if dimX <= 0 || dimY <= 0 {
		panic("devtest: WithGridDim requires positive dimensions")
	}

	return func(f *Fixture) {
		f.dimX, f.dimY = dimX, dimY
	}
}

// WithDefaultTileDimZ sets the Z depth used for any (x,y) not given an
// explicit override via WithTileDimZ. Panics if z <= 0.
func WithDefaultTileDimZ(z int32) Option {
	if z <= 0 {
		panic("devtest: WithDefaultTileDimZ requires z>0")
	}

	return func(f *Fixture) {
		f.defaultZ = z
	}
}

// WithTileDimZ overrides the Z depth at one (x,y) tile.
func WithTileDimZ(x, y, z int32) Option {
	if z <= 0 {
		panic("devtest: WithTileDimZ requires z>0")
	}

	return func(f *Fixture) {
		f.tileDimZ[[2]int32{x, y}] = z
	}
}

// WithBel adds one bel at loc with the given type. Panics if id is empty or
// loc is already occupied by another bel, since that would make
// BelByLocation ambiguous.
func WithBel(id devmodel.BelID, loc devmodel.Loc, typ devmodel.BelType) Option {
	if id == "" {
		panic("devtest: WithBel requires a non-empty id")
	}

	return func(f *Fixture) {
		if _, dup := f.belByLoc[loc]; dup {
			panic("devtest: WithBel: location " + loc.String() + " already has a bel")
		}
		f.bels[id] = belInfo{loc: loc, typ: typ}
		f.belByLoc[loc] = id
		f.belOrder = append(f.belOrder, id)
	}
}

// WithGlobalBuf flags an already-added bel as a global/clock buffer,
// excluded from wirelength geometry.
func WithGlobalBuf(id devmodel.BelID) Option {
	return func(f *Fixture) {
		info := f.bels[id]
		info.globalBuf = true
		f.bels[id] = info
	}
}

// WithCellTypeBelType registers which bel type hosts a given cell type.
func WithCellTypeBelType(ct devmodel.CellType, bt devmodel.BelType) Option {
	return func(f *Fixture) {
		f.cellTypeBelType[ct] = bt
	}
}

// WithCell registers cell for BindBel resolution, equivalent to calling
// Fixture.RegisterCell after construction.
func WithCell(cell *devmodel.Cell) Option {
	if cell == nil {
		panic("devtest: WithCell(nil)")
	}

	return func(f *Fixture) {
		f.cellsByName[cell.Name] = cell
	}
}

// WithSeed seeds the fixture's RNG deterministically.
func WithSeed(seed int64) Option {
	return func(f *Fixture) {
		f.rng = newFixtureRNG(seed)
	}
}

// WithTimingDriven toggles whether COST-mode metrics apply the slack-based
// multiplier.
func WithTimingDriven(on bool) Option {
	return func(f *Fixture) {
		f.timingDriven = on
	}
}

// WithVerbose toggles the informational log lines place/legalise emit.
func WithVerbose(on bool) Option {
	return func(f *Fixture) {
		f.verbose = on
	}
}

// WithDelayFn overrides the delay oracle PredictDelay consults. Without it,
// every predicted delay is 0 (i.e. slack always equals budget).
func WithDelayFn(fn func(*devmodel.Net, *devmodel.User) devmodel.Delay) Option {
	if fn == nil {
		panic("devtest: WithDelayFn(nil)")
	}

	return func(f *Fixture) {
		f.delayFn = fn
	}
}

// WithNSPerUnit sets the Delay→nanosecond conversion factor DelayNS applies.
// Panics if ns <= 0.
func WithNSPerUnit(ns float64) Option {
	if ns <= 0 {
		panic("devtest: WithNSPerUnit requires ns>0")
	}

	return func(f *Fixture) {
		f.nsPerUnit = ns
	}
}

// WithValidBelFn overrides IsValidBelForCell's architecture-legality check.
// Without it, every type-matching bel is considered valid.
func WithValidBelFn(fn func(*devmodel.Cell, devmodel.BelID) bool) Option {
	if fn == nil {
		panic("devtest: WithValidBelFn(nil)")
	}

	return func(f *Fixture) {
		f.validBel = fn
	}
}
