package wirelen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/devmodel"
	"github.com/nextpnr-go/placecore/devmodel/devtest"
	"github.com/nextpnr-go/placecore/wirelen"
)

func newGrid4x4(t *testing.T, opts ...devtest.Option) *devtest.Fixture {
	t.Helper()
	data, err := devtest.Testdata("grid4x4.yaml")
	assert.NoError(t, err)
	f, err := devtest.NewFromYAML(data, opts...)
	assert.NoError(t, err)

	return f
}

func driverUserNet(driver, user *devmodel.Cell) *devmodel.Net {
	n := &devmodel.Net{Name: "n"}
	n.Connect(devmodel.Endpoint{Cell: driver, Port: "O"}, devmodel.User{Endpoint: devmodel.Endpoint{Cell: user, Port: "I"}})

	return n
}

// Single net, two cells: driver at (0,0), user at (3,1), so the
// half-perimeter is dx+dy on this fixture's 4x4 grid.
func TestNetMetric_SingleNetWirelength(t *testing.T) {
	f := newGrid4x4(t)
	driver := devmodel.NewCell("drv", "LUT")
	user := devmodel.NewCell("usr", "LUT")
	f.RegisterCell(driver)
	f.RegisterCell(user)
	f.BindBel("SLICE_X0Y0", "drv", devmodel.StrengthWeak)
	driverBel := devmodel.BelID("SLICE_X0Y0")
	driver.Bel = &driverBel
	f.BindBel("SLICE_X3Y1", "usr", devmodel.StrengthWeak)
	userBel := devmodel.BelID("SLICE_X3Y1")
	user.Bel = &userBel

	net := driverUserNet(driver, user)

	wl := wirelen.NetMetric(f, net, wirelen.Wirelength, nil)
	assert.Equal(t, 4, wl) // (3-0)+(1-0)
}

func TestNetMetric_GlobalBufferDriverContributesZero(t *testing.T) {
	f := newGrid4x4(t)
	driver := devmodel.NewCell("drv", "LUT")
	user := devmodel.NewCell("usr", "LUT")
	f.RegisterCell(driver)
	f.RegisterCell(user)
	f.BindBel("BUFG_X0Y0", "drv", devmodel.StrengthWeak)
	driverBel := devmodel.BelID("BUFG_X0Y0")
	driver.Bel = &driverBel
	f.BindBel("SLICE_X3Y1", "usr", devmodel.StrengthWeak)
	userBel := devmodel.BelID("SLICE_X3Y1")
	user.Bel = &userBel

	net := driverUserNet(driver, user)

	assert.Equal(t, 0, wirelen.NetMetric(f, net, wirelen.Wirelength, nil))
}

func TestNetMetric_NilOrUndrivenNetIsZero(t *testing.T) {
	assert.Equal(t, 0, wirelen.NetMetric(nil, nil, wirelen.Wirelength, nil))

	f := newGrid4x4(t)
	n := &devmodel.Net{Name: "undriven"}
	assert.Equal(t, 0, wirelen.NetMetric(f, n, wirelen.Wirelength, nil))
}

// COST mode with negative slack drives the timing multiplier to its
// ceiling of 5.0.
func TestNetMetric_CostModeAppliesTimingMultiplier(t *testing.T) {
	negSlack := devmodel.Delay(-10) // in "native" units that convert 1:1 to ns below
	f := newGrid4x4(t, devtest.WithTimingDriven(true), devtest.WithNSPerUnit(1), devtest.WithDelayFn(
		func(net *devmodel.Net, u *devmodel.User) devmodel.Delay {
			return u.Budget - negSlack // slack = budget - delay = negSlack
		}))

	driver := devmodel.NewCell("drv", "LUT")
	user := devmodel.NewCell("usr", "LUT")
	f.RegisterCell(driver)
	f.RegisterCell(user)
	f.BindBel("SLICE_X0Y0", "drv", devmodel.StrengthWeak)
	driverBel := devmodel.BelID("SLICE_X0Y0")
	driver.Bel = &driverBel
	f.BindBel("SLICE_X3Y1", "usr", devmodel.StrengthWeak)
	userBel := devmodel.BelID("SLICE_X3Y1")
	user.Bel = &userBel

	n := &devmodel.Net{Name: "n"}
	n.Connect(devmodel.Endpoint{Cell: driver, Port: "O"}, devmodel.User{Endpoint: devmodel.Endpoint{Cell: user, Port: "I"}, Budget: 0})

	var tns float64
	wl := wirelen.NetMetric(f, n, wirelen.Cost, &tns)

	// HPWL = 4, multiplier = min(5, 1+exp(10/5)) = min(5, 1+e^2) ~ 8.39 -> clamped to 5.0
	assert.Equal(t, 20, wl) // int(4 * 5.0)
	assert.InDelta(t, -10.0, tns, 1e-9)
}

func TestCostMultiplier_ClampRange(t *testing.T) {
	// exercised indirectly: a positive worst-slack (5 ns) gives the
	// multiplier 1+e^-1 ~ 1.37, which a 1-unit HPWL truncates back to 1.
	f := newGrid4x4(t, devtest.WithTimingDriven(true), devtest.WithNSPerUnit(1), devtest.WithDelayFn(
		func(net *devmodel.Net, u *devmodel.User) devmodel.Delay {
			return 0 // delay 0, slack = budget - 0 = budget (non-negative)
		}))

	driver := devmodel.NewCell("drv", "LUT")
	user := devmodel.NewCell("usr", "LUT")
	f.RegisterCell(driver)
	f.RegisterCell(user)
	f.BindBel("SLICE_X0Y0", "drv", devmodel.StrengthWeak)
	driverBel := devmodel.BelID("SLICE_X0Y0")
	driver.Bel = &driverBel
	f.BindBel("SLICE_X1Y0", "usr", devmodel.StrengthWeak)
	userBel := devmodel.BelID("SLICE_X1Y0")
	user.Bel = &userBel

	n := &devmodel.Net{Name: "n"}
	n.Connect(devmodel.Endpoint{Cell: driver, Port: "O"}, devmodel.User{Endpoint: devmodel.Endpoint{Cell: user, Port: "I"}, Budget: 5})

	var tns float64
	wl := wirelen.NetMetric(f, n, wirelen.Cost, &tns)
	assert.Equal(t, 1, wl) // 1 * (1+e^-1) truncates back to 1
	assert.Equal(t, 0.0, tns)
}

func TestCellMetricAt_DoesNotMutateLivePlacement(t *testing.T) {
	f := newGrid4x4(t)
	driver := devmodel.NewCell("drv", "LUT")
	user := devmodel.NewCell("usr", "LUT")
	f.RegisterCell(driver)
	f.RegisterCell(user)
	f.BindBel("SLICE_X0Y0", "drv", devmodel.StrengthWeak)
	driverBel := devmodel.BelID("SLICE_X0Y0")
	driver.Bel = &driverBel

	driverUserNet(driver, user)

	before := user.Bel
	cost := wirelen.CellMetricAt(f, user, "SLICE_X2Y2", wirelen.Wirelength)

	assert.Equal(t, 4, cost) // (2-0)+(2-0)
	assert.Equal(t, before, user.Bel, "CellMetricAt must not mutate cell.Bel")
}

func TestCellMetric_SumsDistinctNetsOnce(t *testing.T) {
	f := newGrid4x4(t)
	a := devmodel.NewCell("a", "LUT")
	b := devmodel.NewCell("b", "LUT")
	f.RegisterCell(a)
	f.RegisterCell(b)
	f.BindBel("SLICE_X0Y0", "a", devmodel.StrengthWeak)
	aBel := devmodel.BelID("SLICE_X0Y0")
	a.Bel = &aBel
	f.BindBel("SLICE_X1Y0", "b", devmodel.StrengthWeak)
	bBel := devmodel.BelID("SLICE_X1Y0")
	b.Bel = &bBel

	n1 := &devmodel.Net{Name: "n1"}
	n1.Connect(devmodel.Endpoint{Cell: a, Port: "O1"}, devmodel.User{Endpoint: devmodel.Endpoint{Cell: b, Port: "I1"}})
	n2 := &devmodel.Net{Name: "n2"}
	n2.Connect(devmodel.Endpoint{Cell: a, Port: "O2"}, devmodel.User{Endpoint: devmodel.Endpoint{Cell: b, Port: "I2"}})

	assert.Equal(t, 2, wirelen.CellMetric(f, a, wirelen.Wirelength)) // 1 (n1) + 1 (n2)
}
