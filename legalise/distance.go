// Package legalise implements the Constraint Legaliser:
// constraint-chain distance, the recursive backtracking feasibility search,
// and the top-level legalisation pass that walks every chain root.
package legalise

import "github.com/nextpnr-go/placecore/devmodel"

// largeInfeasible is the penalty charged for an unplaced cell in a chain,
// chosen far above any achievable Manhattan distance on a real grid.
const largeInfeasible = 100_000

// ConstraintsDistance is 0 iff the chain rooted at cell is satisfied;
// otherwise a positive Manhattan-style penalty. cell need not be a chain
// root: the walk recurses into cell's own subtree only.
func ConstraintsDistance(ctx devmodel.DeviceContext, cell *devmodel.Cell) int {
	total := 0
	walkDistance(ctx, cell, &total)

	return total
}

func walkDistance(ctx devmodel.DeviceContext, cell *devmodel.Cell, total *int) {
	if !cell.Placed() {
		*total += largeInfeasible
		for _, child := range cell.Children {
			walkDistance(ctx, child, total)
		}

		return
	}

	loc := ctx.BelLocation(*cell.Bel)

	if cell.IsRoot() {
		if cell.ConstrX != devmodel.UNCONSTR {
			*total += absInt32(cell.ConstrX - loc.X)
		}
		if cell.ConstrY != devmodel.UNCONSTR {
			*total += absInt32(cell.ConstrY - loc.Y)
		}
		if cell.ConstrZ != devmodel.UNCONSTR {
			*total += absInt32(cell.ConstrZ - loc.Z)
		}
	} else if !cell.Parent.Placed() {
		*total += largeInfeasible
	} else {
		parentLoc := ctx.BelLocation(*cell.Parent.Bel)
		delta := loc.Sub(parentLoc)
		if cell.ConstrX != devmodel.UNCONSTR {
			*total += absInt32(cell.ConstrX - delta.X)
		}
		if cell.ConstrY != devmodel.UNCONSTR {
			*total += absInt32(cell.ConstrY - delta.Y)
		}
		if cell.ConstrZ != devmodel.UNCONSTR {
			if cell.ConstrAbsZ {
				*total += absInt32(cell.ConstrZ - loc.Z)
			} else {
				*total += absInt32(cell.ConstrZ - delta.Z)
			}
		}
	}

	for _, child := range cell.Children {
		walkDistance(ctx, child, total)
	}
}

func absInt32(v int32) int {
	if v < 0 {
		v = -v
	}

	return int(v)
}
