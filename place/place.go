// Package place implements the Single-Cell Placer: iterative
// best-fit placement of one cell onto a matching bel, with bounded ripup of
// weaker incumbents when no free bel qualifies.
//
// The search loop is modeled as a dedicated engine struct (placeEngine)
// rather than nested closures; it keeps the per-iteration state (the
// current cell, remaining iteration budget, best candidates) inspectable
// and the termination condition in one place.
package place

import (
	"github.com/rs/zerolog"

	"github.com/nextpnr-go/placecore/devmodel"
	"github.com/nextpnr-go/placecore/placemetrics"
	"github.com/nextpnr-go/placecore/wirelen"
)

// maxIters is the ripup budget. The outer loop itself runs at most
// maxIters+1 times.
const maxIters = 25

// jitterIterFloor is the iteration count below which tie-breaking jitter is
// no longer added. With maxIters=25 this gives a 22-iteration jitter
// window (iters 25 down to 4); the final four iterations (iters 3 down to
// 0) search without noise.
const jitterIterFloor = 4

const jitterSpan = 25

// placeEngine carries one PlaceSingleCell invocation's loop state: the
// device context, legality policy, and the cell currently being placed
// (which changes across ripup iterations as displaced incumbents take its
// place).
type placeEngine struct {
	ctx             devmodel.DeviceContext
	requireLegality bool
	log             *zerolog.Logger
	metrics         placemetrics.Collector

	iters     int
	triedBels int
}

// PlaceSingleCell picks the best available bel of matching type for cell,
// with jittered ties; when no free bel satisfies
// it, displace ("ripup") a weaker-strength incumbent and retry with a
// decreasing iteration budget. metrics may be nil (defaults to
// placemetrics.NoopCollector{}).
//
// Preconditions (caller's responsibility): cell.Strength < LOCKED, asserted
// here by panicking with devmodel.ErrCellLocked; a device with no bel of
// matching type is not asserted but yields an UnplaceableCellError.
func PlaceSingleCell(ctx devmodel.DeviceContext, cell *devmodel.Cell, requireLegality bool, log *zerolog.Logger, metrics ...placemetrics.Collector) (bool, error) {
	if cell.Strength == devmodel.StrengthLocked {
		panic(devmodel.ErrCellLocked)
	}

	e := &placeEngine{ctx: ctx, requireLegality: requireLegality, log: quietUnlessVerbose(ctx, log), metrics: placemetrics.WithDefault(firstCollector(metrics))}
	e.iters = maxIters

	return e.run(cell)
}

// quietUnlessVerbose suppresses the informational ripup/placement lines
// when the context's verbose flag is off; error lines always get through.
func quietUnlessVerbose(ctx devmodel.DeviceContext, log *zerolog.Logger) *zerolog.Logger {
	l := devmodel.Logger(log)
	if !ctx.Verbose() {
		quiet := l.Level(zerolog.ErrorLevel)
		l = &quiet
	}

	return l
}

// firstCollector returns the first variadic Collector argument, or nil.
// PlaceSingleCell's metrics parameter is variadic rather than a plain
// optional so every existing four-arg call site (and legalise's internal
// re-placement call) keeps compiling unchanged.
func firstCollector(metrics []placemetrics.Collector) placemetrics.Collector {
	if len(metrics) == 0 {
		return nil
	}

	return metrics[0]
}

// run is the iterative best-fit-with-ripup loop. cell is re-bound to the
// variable on each ripup iteration: the *original* cell is always bound to
// bestBel before the loop continues with the displaced incumbent as the
// new cell. That ordering is load-bearing — do not reorder.
func (e *placeEngine) run(cell *devmodel.Cell) (bool, error) {
	belType := e.ctx.BelTypeFromCellType(cell.Type)

	for {
		if cell.Bel != nil {
			e.ctx.UnbindBel(*cell.Bel)
			cell.Bel = nil
		}

		var (
			bestBel       devmodel.BelID
			bestCost      int
			haveBest      bool
			bestRipupBel  devmodel.BelID
			bestRipupCost int
			ripupTarget   *devmodel.Cell
			haveRipup     bool
		)

		for _, bel := range e.ctx.Bels() {
			if e.ctx.BelType(bel) != belType {
				continue
			}
			e.triedBels++
			if e.requireLegality && !e.ctx.IsValidBelForCell(cell, bel) {
				continue
			}

			cost := wirelen.CellMetricAt(e.ctx, cell, bel, wirelen.Cost)
			if e.iters >= jitterIterFloor {
				cost += e.ctx.Rng(jitterSpan)
			}

			if e.ctx.CheckBelAvail(bel) {
				// "≤" is intentional: later equal-cost candidates replace
				// earlier ones.
				if !haveBest || cost <= bestCost {
					bestBel, bestCost, haveBest = bel, cost, true
				}
				continue
			}

			incumbent := e.ctx.BoundBelCell(bel)
			if incumbent != nil && incumbent.Strength < devmodel.StrengthStrong {
				if !haveRipup || cost <= bestRipupCost {
					bestRipupBel, bestRipupCost, ripupTarget, haveRipup = bel, cost, incumbent, true
				}
			}
		}

		if !haveBest {
			if e.iters == 0 || !haveRipup {
				e.log.Error().
					Str("cell", cell.Name).
					Int("tried_bels", e.triedBels).
					Msg("place: cell is unplaceable")

				return false, devmodel.NewUnplaceableCellError(cell.Name, e.triedBels, nil)
			}
			e.iters--
			e.ctx.UnbindBel(*ripupTarget.Bel)
			ripupTarget.Bel = nil
			bestBel = bestRipupBel
			e.metrics.Ripup()

			e.log.Debug().
				Str("ripped", ripupTarget.Name).
				Str("for", cell.Name).
				Int("iters_left", e.iters).
				Msg("place: ripup")

			e.bind(cell, bestBel)
			cell = ripupTarget

			continue
		}

		e.bind(cell, bestBel)
		e.metrics.CellPlaced()

		return true, nil
	}
}

// bind performs the single BindBel call shared by both the "placed
// directly" and "placed by displacing something" branches, always at WEAK
// strength.
func (e *placeEngine) bind(cell *devmodel.Cell, bel devmodel.BelID) {
	e.ctx.BindBel(bel, cell.Name, devmodel.StrengthWeak)
	b := bel
	cell.Bel = &b
	cell.Strength = devmodel.StrengthWeak
}
