// File: legalise.go
// Role: top-level legalisation orchestration — legaliseCell (one chain
// root) and LegaliseConstraints (every chain, plus re-placement of
// anything ripped up along the way).
package legalise

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nextpnr-go/placecore/devmodel"
	"github.com/nextpnr-go/placecore/geom"
	"github.com/nextpnr-go/placecore/locset"
	"github.com/nextpnr-go/placecore/place"
	"github.com/nextpnr-go/placecore/placemetrics"
)

// sortedByName returns a copy of cells ordered by Name, the deterministic
// iteration order used for both the old-locations snapshot and the
// legalisation pass itself.
func sortedByName(cells []*devmodel.Cell) []*devmodel.Cell {
	out := make([]*devmodel.Cell, len(cells))
	copy(out, cells)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// LegaliseConstraints snapshots every cell's current bel location,
// legalises every chain root in sorted-by-name order,
// then re-places every cell displaced along the way. Any fatal error aborts
// immediately; the caller must treat the whole run as failed.
func LegaliseConstraints(ctx devmodel.DeviceContext, cells []*devmodel.Cell, log *zerolog.Logger, metrics ...placemetrics.Collector) (bool, error) {
	log = devmodel.Logger(log)
	if !ctx.Verbose() {
		quiet := log.Level(zerolog.ErrorLevel)
		log = &quiet
	}
	m := placemetrics.WithDefault(firstCollector(metrics))
	ordered := sortedByName(cells)

	oldLocations := make(map[string]devmodel.Loc, len(ordered))
	for _, c := range ordered {
		if c.Placed() {
			oldLocations[c.Name] = ctx.BelLocation(*c.Bel)
		}
	}

	var rippedCells []*devmodel.Cell
	for _, cell := range ordered {
		ripped, err := legaliseCell(ctx, cell, oldLocations, log, m)
		if err != nil {
			return false, err
		}
		rippedCells = append(rippedCells, ripped...)
	}

	for _, cell := range rippedCells {
		if _, err := place.PlaceSingleCell(ctx, cell, false, log, m); err != nil {
			return false, err
		}
	}

	return true, nil
}

// firstCollector mirrors place.firstCollector: it lets metrics stay an
// optional trailing argument on every public entry point without breaking
// existing two/three-arg call sites.
func firstCollector(metrics []placemetrics.Collector) placemetrics.Collector {
	if len(metrics) == 0 {
		return nil
	}

	return metrics[0]
}

// legaliseCell legalises the chain rooted at cell. A non-root cell is
// skipped (its chain is driven by its own root). It returns the cells
// ripped up by the chain's atomic apply step, if any.
func legaliseCell(ctx devmodel.DeviceContext, cell *devmodel.Cell, oldLocations map[string]devmodel.Loc, log *zerolog.Logger, m placemetrics.Collector) ([]*devmodel.Cell, error) {
	if !cell.IsRoot() {
		return nil, nil
	}

	// A constraint-free, childless root is not part of any chain: there is
	// nothing to legalise, and locking it would freeze the whole design.
	// This also keeps cells ripped earlier in the pass (unplaced, hence a
	// nonzero distance) out of the search; they are re-placed at WEAK by
	// LegaliseConstraints' final pass instead.
	if !cell.HasConstraints() && len(cell.Children) == 0 {
		return nil, nil
	}

	if ConstraintsDistance(ctx, cell) == 0 {
		lockdownChain(cell)
		log.Debug().Str("root", cell.Name).Msg("legalise: chain already satisfied")
		m.LegaliseChain(placemetrics.OutcomeSatisfied)
		m.SearchDepth(0)

		return nil, nil
	}

	start := oldLocations[cell.Name]
	if cell.Placed() {
		start = ctx.BelLocation(*cell.Bel)
	}

	tried := 0
	xs := rootAxisSearch(cell.ConstrX, start.X, 0, ctx.GridDimX()-1)
	for ; !xs.Done(); xs.Next() {
		x := xs.Get()

		ys := rootAxisSearch(cell.ConstrY, start.Y, 0, ctx.GridDimY()-1)
		for ; !ys.Done(); ys.Next() {
			y := ys.Get()

			zs := rootZAxisSearch(ctx, cell, start.Z, x, y)
			for ; !zs.Done(); zs.Next() {
				loc := devmodel.Loc{X: x, Y: y, Z: zs.Get()}
				tried++

				sol := make(solution)
				used := locset.New(len(cell.Chain()))
				if validLocFor(ctx, cell, loc, sol, used) {
					ripped := applySolution(ctx, cell, sol, log, m)
					m.LegaliseChain(placemetrics.OutcomeSearched)
					m.SearchDepth(tried)

					return ripped, nil
				}
			}
		}
	}

	dump := dumpChain(ctx, cell, 0)
	log.Error().Str("root", cell.Name).Str("chain", dump).Msg("legalise: chain unsatisfiable")
	m.LegaliseChain(placemetrics.OutcomeFailed)
	m.SearchDepth(tried)

	return nil, devmodel.NewUnsatisfiableChainError(cell.Name, dump, nil)
}

// rootAxisSearch builds a root's own X/Y axis search: a constrained root
// axis is an absolute target, so it is a single fixed value rather than an
// offset from start; an unconstrained axis searches the full grid starting
// at start.
func rootAxisSearch(constr int32, start, min, max int32) *geom.AxisSearch {
	if constr == devmodel.UNCONSTR {
		return geom.NewAxisSearch(start, min, max)
	}

	return geom.NewFixedAxisSearch(constr)
}

func rootZAxisSearch(ctx devmodel.DeviceContext, cell *devmodel.Cell, startZ, x, y int32) *geom.AxisSearch {
	if cell.ConstrZ == devmodel.UNCONSTR {
		return geom.NewAxisSearch(startZ, 0, ctx.TileDimZ(x, y)-1)
	}

	return geom.NewFixedAxisSearch(cell.ConstrZ)
}

// applySolution is the atomic apply step: unbind every solution cell's
// current bel first, then bind every solution cell to its new bel at
// LOCKED, ripping up any weaker incumbent. Unbind-before-bind avoids a
// within-chain cell's old and new bel colliding during the apply.
func applySolution(ctx devmodel.DeviceContext, root *devmodel.Cell, sol solution, log *zerolog.Logger, m placemetrics.Collector) []*devmodel.Cell {
	chain := root.Chain()

	for _, c := range chain {
		if c.Placed() {
			ctx.UnbindBel(*c.Bel)
			c.Bel = nil
		}
	}

	var ripped []*devmodel.Cell
	for _, c := range chain {
		loc, ok := sol[c.Name]
		if !ok {
			continue
		}
		bel, ok := ctx.BelByLocation(loc)
		if !ok {
			panic("legalise: solution references a location with no bel")
		}

		if incumbent := ctx.ConflictingBelCell(bel); incumbent != nil && incumbent != c {
			if incumbent.Strength >= devmodel.StrengthStrong {
				panic("legalise: search proposed a solution conflicting with a STRONG+ incumbent")
			}
			ctx.UnbindBel(bel)
			incumbent.Bel = nil
			ripped = append(ripped, incumbent)
			m.Ripup()
		}

		ctx.BindBel(bel, c.Name, devmodel.StrengthLocked)
		b := bel
		c.Bel = &b
		c.Strength = devmodel.StrengthLocked
	}

	if ConstraintsDistance(ctx, root) != 0 {
		panic("legalise: post-apply constraints_distance is nonzero")
	}

	log.Debug().Str("root", root.Name).Int("chain_len", len(chain)).Msg("legalise: chain placed by search")

	return ripped
}

// lockdownChain recursively sets every cell in cell's chain to LOCKED
// without touching any bel binding.
func lockdownChain(cell *devmodel.Cell) {
	for _, c := range cell.Chain() {
		c.Strength = devmodel.StrengthLocked
	}
}

// dumpChain pretty-prints a chain's cell/location tree, used as the
// diagnostic payload of a fatal UnsatisfiableChainError.
func dumpChain(ctx devmodel.DeviceContext, cell *devmodel.Cell, depth int) string {
	var b strings.Builder
	writeChain(&b, ctx, cell, depth)

	return b.String()
}

func writeChain(b *strings.Builder, ctx devmodel.DeviceContext, cell *devmodel.Cell, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(cell.Name)
	if cell.Placed() {
		b.WriteString(" @ ")
		b.WriteString(ctx.BelLocation(*cell.Bel).String())
	} else {
		b.WriteString(" (unplaced)")
	}
	b.WriteString("\n")

	for _, child := range cell.Children {
		writeChain(b, ctx, child, depth+1)
	}
}
