// Package wirelen implements the Wirelength Estimator: a
// half-perimeter bounding-box cost for a net, a cell, and a hypothetical
// cell→bel assignment, optionally scaled by a worst-slack factor when
// timing-driven.
//
// These are pure functions: no bel is bound or unbound, and CellMetricAt
// never mutates cell.Bel.
package wirelen

import (
	"math"

	"github.com/nextpnr-go/placecore/devmodel"
)

// MetricType selects between a bare geometric cost and a timing-weighted one.
type MetricType int

const (
	Wirelength MetricType = iota
	Cost
)

// bbox accumulates the shared geometry/slack state for both NetMetric and
// CellMetricAt's override path, so the two stay in lockstep.
type bbox struct {
	xmin, xmax, ymin, ymax int32
	haveAny                bool
	negSlack               devmodel.Delay
	worstSlack             devmodel.Delay
	haveSlack              bool
}

func (b *bbox) include(loc devmodel.Loc) {
	if !b.haveAny {
		b.xmin, b.xmax, b.ymin, b.ymax = loc.X, loc.X, loc.Y, loc.Y
		b.haveAny = true
		return
	}
	if loc.X < b.xmin {
		b.xmin = loc.X
	}
	if loc.X > b.xmax {
		b.xmax = loc.X
	}
	if loc.Y < b.ymin {
		b.ymin = loc.Y
	}
	if loc.Y > b.ymax {
		b.ymax = loc.Y
	}
}

func (b *bbox) includeSlack(slack devmodel.Delay) {
	if slack < 0 {
		b.negSlack += slack
	}
	if !b.haveSlack || slack < b.worstSlack {
		b.worstSlack = slack
		b.haveSlack = true
	}
}

// halfPerimeter returns (xmax-xmin) + (ymax-ymin), or 0 for an empty box.
func (b *bbox) halfPerimeter() int {
	if !b.haveAny {
		return 0
	}

	return int(b.xmax-b.xmin) + int(b.ymax-b.ymin)
}

// costMultiplier is the worst-slack weighting factor 1+exp(-slackNS/5),
// capped at 5.0: it is 2.0 at zero worst-slack, stays above 1.0, and
// approaches 1.0 as worst-slack grows positive.
func costMultiplier(ctx devmodel.DeviceContext, worstSlack devmodel.Delay) float64 {
	return math.Min(5.0, 1.0+math.Exp(-ctx.DelayNS(worstSlack)/5))
}

// belOfFunc resolves the effective bel for a cell, given an optional
// (overrideCell, overrideBel) pair, and reports whether the cell is
// effectively placed.
type belOfFunc func(c *devmodel.Cell) (devmodel.BelID, bool)

func liveBelOf(c *devmodel.Cell) (devmodel.BelID, bool) {
	if !c.Placed() {
		return "", false
	}

	return *c.Bel, true
}

func overrideBelOf(overrideCell *devmodel.Cell, overrideBel devmodel.BelID) belOfFunc {
	return func(c *devmodel.Cell) (devmodel.BelID, bool) {
		if c == overrideCell {
			return overrideBel, true
		}

		return liveBelOf(c)
	}
}

// evalNet computes one net's bounding-box cost, given a way to resolve
// each endpoint's effective bel. tns may be nil.
func evalNet(ctx devmodel.DeviceContext, net *devmodel.Net, typ MetricType, belOf belOfFunc, tns *float64) int {
	if net == nil || net.Driver == nil {
		return 0
	}
	driverBel, ok := belOf(net.Driver.Cell)
	if !ok || ctx.IsGlobalBuf(driverBel) {
		return 0
	}

	var bb bbox
	bb.include(ctx.BelLocation(driverBel))

	timingDriven := typ == Cost && ctx.TimingDriven()

	for _, u := range net.Users {
		bel, ok := belOf(u.Cell)
		if !ok || ctx.IsGlobalBuf(bel) {
			continue
		}
		bb.include(ctx.BelLocation(bel))

		if timingDriven {
			delay := ctx.PredictDelay(net, u)
			bb.includeSlack(u.Budget - delay)
		}
	}

	wl := bb.halfPerimeter()
	if timingDriven && bb.haveSlack {
		wl = int(float64(wl) * costMultiplier(ctx, bb.worstSlack))
	}
	if tns != nil {
		*tns += ctx.DelayNS(bb.negSlack)
	}

	return wl
}

// NetMetric computes the wirelength contribution of net, adding the
// timing-weighted total negative slack (in nanoseconds) to *tns. tns may
// be nil if the caller doesn't track TNS.
func NetMetric(ctx devmodel.DeviceContext, net *devmodel.Net, typ MetricType, tns *float64) int {
	return evalNet(ctx, net, typ, liveBelOf, tns)
}

// CellMetric sums NetMetric over the distinct nets touched by cell's ports,
// in deterministic net-name order.
func CellMetric(ctx devmodel.DeviceContext, cell *devmodel.Cell, typ MetricType) int {
	total := 0
	for _, net := range devmodel.CellNets(cell) {
		total += NetMetric(ctx, net, typ, nil)
	}

	return total
}

// CellMetricAt evaluates CellMetric as if cell were bound to bel, without
// mutating the live placement map or cell.Bel itself: the override is
// carried as a pure value through evalNet rather than a temporary field
// mutation, removing the reentrancy hazard a pointer-swap approach would
// have when a net both drives and is used by the same cell.
func CellMetricAt(ctx devmodel.DeviceContext, cell *devmodel.Cell, bel devmodel.BelID, typ MetricType) int {
	belOf := overrideBelOf(cell, bel)
	total := 0
	for _, net := range devmodel.CellNets(cell) {
		total += evalNet(ctx, net, typ, belOf, nil)
	}

	return total
}
