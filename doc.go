// Package placecore is the placement-common core of an FPGA place-and-route
// tool: wirelength estimation, single-cell placement with bounded ripup, and
// relative-constraint legalisation.
//
// There is no code at the module root — it exists only to document how the
// subpackages fit together:
//
//	devmodel/     — bels, cells, nets, strengths, the DeviceContext contract
//	devmodel/devtest/ — an in-memory DeviceContext fixture for tests
//	geom/         — the increasing-diameter axis search used by legalise
//	locset/       — a packed-(x,y,z) hash set ("used" locations during search)
//	wirelen/      — the half-perimeter wirelength/cost estimator
//	place/        — the single-cell best-fit placer with bounded ripup
//	legalise/     — the recursive relative-constraint legaliser
//	placemetrics/ — optional Prometheus counters for place/legalise
//
// Data flows downward: legalise calls place, place calls wirelen, both query
// the caller-supplied devmodel.DeviceContext. The only shared mutable state
// is the placement map inside that context; every mutation goes through its
// Bind/Unbind operations.
//
//	go get github.com/nextpnr-go/placecore
package placecore
