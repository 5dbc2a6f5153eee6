// File: fixture.go
// Role: Fixture, a small in-memory devmodel.DeviceContext double used by
// place/legalise/wirelen tests — a fixed grid of bels plus a name→*Cell
// registry BindBel/UnbindBel mutate; a handful of small builder functions
// shared by many _test.go files rather than one monolithic mock.
package devtest

import "github.com/nextpnr-go/placecore/devmodel"

type belInfo struct {
	loc       devmodel.Loc
	typ       devmodel.BelType
	globalBuf bool
}

// Fixture implements devmodel.DeviceContext over an explicit, small set of
// bels and cells assembled by functional options (see options.go) and/or
// RegisterCell. It is not safe for concurrent use, matching the core's
// single-threaded model.
type Fixture struct {
	dimX, dimY int32
	defaultZ   int32
	tileDimZ   map[[2]int32]int32

	bels     map[devmodel.BelID]belInfo
	belOrder []devmodel.BelID
	belByLoc map[devmodel.Loc]devmodel.BelID
	cellBel  map[devmodel.BelID]*devmodel.Cell

	cellsByName     map[string]*devmodel.Cell
	cellTypeBelType map[devmodel.CellType]devmodel.BelType
	validBel        func(*devmodel.Cell, devmodel.BelID) bool

	delayFn   func(*devmodel.Net, *devmodel.User) devmodel.Delay
	nsPerUnit float64

	rng          *fixtureRNG
	timingDriven bool
	verbose      bool
}

// New builds a Fixture with a 1x1x1 default grid, applying opts in order.
func New(opts ...Option) *Fixture {
	f := &Fixture{
		dimX:            1,
		dimY:            1,
		defaultZ:        1,
		tileDimZ:        make(map[[2]int32]int32),
		bels:            make(map[devmodel.BelID]belInfo),
		belByLoc:        make(map[devmodel.Loc]devmodel.BelID),
		cellBel:         make(map[devmodel.BelID]*devmodel.Cell),
		cellsByName:     make(map[string]*devmodel.Cell),
		cellTypeBelType: make(map[devmodel.CellType]devmodel.BelType),
		nsPerUnit:       1,
		rng:             newFixtureRNG(0),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// RegisterCell makes cell resolvable by name for BindBel. Tests call this
// once per cell they intend to place; WithCell wraps the same call as an
// option for cells known at construction time.
func (f *Fixture) RegisterCell(cell *devmodel.Cell) {
	f.cellsByName[cell.Name] = cell
}

func (f *Fixture) Bels() []devmodel.BelID { return f.belOrder }

func (f *Fixture) BelType(bel devmodel.BelID) devmodel.BelType { return f.bels[bel].typ }

func (f *Fixture) BelTypeFromCellType(ct devmodel.CellType) devmodel.BelType {
	return f.cellTypeBelType[ct]
}

func (f *Fixture) BelLocation(bel devmodel.BelID) devmodel.Loc { return f.bels[bel].loc }

func (f *Fixture) BelByLocation(loc devmodel.Loc) (devmodel.BelID, bool) {
	bel, ok := f.belByLoc[loc]

	return bel, ok
}

func (f *Fixture) GridDimX() int32 { return f.dimX }

func (f *Fixture) GridDimY() int32 { return f.dimY }

func (f *Fixture) TileDimZ(x, y int32) int32 {
	if z, ok := f.tileDimZ[[2]int32{x, y}]; ok {
		return z
	}

	return f.defaultZ
}

func (f *Fixture) IsGlobalBuf(bel devmodel.BelID) bool { return f.bels[bel].globalBuf }

func (f *Fixture) IsValidBelForCell(cell *devmodel.Cell, bel devmodel.BelID) bool {
	if f.validBel == nil {
		return true
	}

	return f.validBel(cell, bel)
}

func (f *Fixture) CheckBelAvail(bel devmodel.BelID) bool { return f.cellBel[bel] == nil }

func (f *Fixture) BoundBelCell(bel devmodel.BelID) *devmodel.Cell { return f.cellBel[bel] }

// ConflictingBelCell is identical to BoundBelCell: this fixture reserves no
// bel for reasons other than an explicit bind.
func (f *Fixture) ConflictingBelCell(bel devmodel.BelID) *devmodel.Cell { return f.cellBel[bel] }

func (f *Fixture) BindBel(bel devmodel.BelID, cellName string, strength devmodel.Strength) {
	cell, ok := f.cellsByName[cellName]
	if !ok {
		panic("devtest: BindBel for unregistered cell " + cellName)
	}
	f.cellBel[bel] = cell
}

func (f *Fixture) UnbindBel(bel devmodel.BelID) {
	delete(f.cellBel, bel)
}

func (f *Fixture) PredictDelay(net *devmodel.Net, user *devmodel.User) devmodel.Delay {
	if f.delayFn == nil {
		return 0
	}

	return f.delayFn(net, user)
}

func (f *Fixture) DelayNS(d devmodel.Delay) float64 { return float64(d) * f.nsPerUnit }

func (f *Fixture) Rng(n int) int { return f.rng.Intn(n) }

func (f *Fixture) TimingDriven() bool { return f.timingDriven }

func (f *Fixture) Verbose() bool { return f.verbose }
