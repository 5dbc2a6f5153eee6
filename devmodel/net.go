// File: net.go
// Role: Net/Endpoint lifecycle — the wirelength estimator's unit of work.
//
// Determinism:
//   - CellNets(cell) returns nets sorted lexicographically by Name, so
//     cell_metric sums net_metric in a reproducible order.
package devmodel

import "sort"

// Endpoint names one port of one cell: a (cell, port) pair used both for a
// net's driver and for each of its users.
type Endpoint struct {
	Cell *Cell
	Port string
}

// User is a net endpoint plus the timing budget the delay oracle compares
// its predicted delay against. Budget is in the same
// oracle-native Delay units as PredictDelay's return value; callers convert
// to nanoseconds via DeviceContext.DelayNS, not before.
type User struct {
	Endpoint
	Budget Delay
}

// Net is a driver endpoint plus its ordered list of users. A Net with a nil
// Driver, or whose Driver.Cell is unplaced, contributes zero wirelength.
type Net struct {
	Name   string
	Driver *Endpoint
	Users  []*User
}

// Connect binds both ends of a driver→user(s) relationship: it sets
// n.Driver, appends each user to n.Users, and sets p.Net = n on every
// involved port (creating the port if needed). Callers
// (the external netlist) use this while reading in a design; the placement
// core itself never calls it.
func (n *Net) Connect(driver Endpoint, users ...User) {
	n.Driver = &driver
	driver.Cell.Port(driver.Port).Net = n
	for _, u := range users {
		u := u
		n.Users = append(n.Users, &u)
		u.Cell.Port(u.Port).Net = n
	}
}

// CellNets returns the distinct nets touched by any of c's ports, sorted by
// Name. Deduplication and sort order make cell_metric's summation
// reproducible across platforms.
func CellNets(c *Cell) []*Net {
	seen := make(map[string]*Net, len(c.Ports))
	for _, p := range c.Ports {
		if p.Net != nil {
			seen[p.Net.Name] = p.Net
		}
	}
	out := make([]*Net, 0, len(seen))
	for _, net := range seen {
		out = append(out, net)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
