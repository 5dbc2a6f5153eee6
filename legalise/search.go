// File: search.go
// Role: the recursive backtracking feasibility search over candidate chain
// locations. This is pure exploration: no bel is bound or unbound here,
// only the candidate's acceptability is tested and, on success,
// solution/used are updated so the caller (and recursive calls for later
// siblings) see the tentative assignment.
package legalise

import (
	"github.com/nextpnr-go/placecore/devmodel"
	"github.com/nextpnr-go/placecore/geom"
	"github.com/nextpnr-go/placecore/locset"
)

// solution is the transient cell-name -> Loc map a recursive search writes
// tentative assignments into. It is owned by one legaliseCell invocation and
// discarded on return.
type solution map[string]devmodel.Loc

// validLocFor attempts to place cell at loc, then recursively places every
// child at a location derived from its constraints (or searched freely when
// unconstrained), backtracking on conflict.
func validLocFor(ctx devmodel.DeviceContext, cell *devmodel.Cell, loc devmodel.Loc, sol solution, used *locset.Set) bool {
	bel, ok := ctx.BelByLocation(loc)
	if !ok {
		return false
	}
	if ctx.BelType(bel) != ctx.BelTypeFromCellType(cell.Type) {
		return false
	}
	if incumbent := ctx.BoundBelCell(bel); incumbent != nil && incumbent.Strength >= devmodel.StrengthStrong && incumbent != cell {
		return false
	}

	used.Add(loc)

	for _, child := range cell.Children {
		if !placeChild(ctx, child, loc, sol, used) {
			used.Remove(loc)

			return false
		}
	}

	if prev, had := sol[cell.Name]; had && prev != loc {
		used.Remove(prev)
	}
	sol[cell.Name] = loc

	return true
}

// placeChild builds the three per-axis candidate searches for child
// relative to parentLoc, then enumerates candidate locations with X
// outermost, Y next, Z innermost, until one succeeds
// recursively or the search is exhausted. Each AxisSearch.Get() already
// yields the final coordinate (either a freely searched value or the fixed
// parent-relative offset), so the loop body composes them directly.
func placeChild(ctx devmodel.DeviceContext, child *devmodel.Cell, parentLoc devmodel.Loc, sol solution, used *locset.Set) bool {
	xs := axisSearchFor(child.ConstrX, parentLoc.X, 0, ctx.GridDimX()-1)
	for ; !xs.Done(); xs.Next() {
		x := xs.Get()

		ys := axisSearchFor(child.ConstrY, parentLoc.Y, 0, ctx.GridDimY()-1)
		for ; !ys.Done(); ys.Next() {
			y := ys.Get()

			zs := zAxisSearchFor(ctx, child, parentLoc, x, y)
			for ; !zs.Done(); zs.Next() {
				candidate := devmodel.Loc{X: x, Y: y, Z: zs.Get()}
				if used.Contains(candidate) {
					continue
				}
				if validLocFor(ctx, child, candidate, sol, used) {
					return true
				}
			}
		}
	}

	return false
}

// axisSearchFor builds the X/Y axis search for a child's constraint field:
// a full-grid search starting at the parent's axis value when unconstrained,
// or a single fixed offset location otherwise.
func axisSearchFor(constr int32, parentAxis, min, max int32) *geom.AxisSearch {
	if constr == devmodel.UNCONSTR {
		return geom.NewAxisSearch(parentAxis, min, max)
	}

	return geom.NewFixedAxisSearch(parentAxis + constr)
}

// zAxisSearchFor builds the Z axis search: a full-tile-depth search when
// unconstrained, the absolute value when ConstrAbsZ, or the parent-relative
// offset otherwise.
func zAxisSearchFor(ctx devmodel.DeviceContext, child *devmodel.Cell, parentLoc devmodel.Loc, x, y int32) *geom.AxisSearch {
	if child.ConstrZ == devmodel.UNCONSTR {
		return geom.NewAxisSearch(parentLoc.Z, 0, ctx.TileDimZ(x, y)-1)
	}
	if child.ConstrAbsZ {
		return geom.NewFixedAxisSearch(child.ConstrZ)
	}

	return geom.NewFixedAxisSearch(parentLoc.Z + child.ConstrZ)
}
