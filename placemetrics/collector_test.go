package placemetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/nextpnr-go/placecore/placemetrics"
)

func TestNoopCollector_DoesNothing(t *testing.T) {
	var c placemetrics.Collector = placemetrics.NoopCollector{}

	assert.NotPanics(t, func() {
		c.CellPlaced()
		c.Ripup()
		c.LegaliseChain(placemetrics.OutcomeSatisfied)
		c.SearchDepth(3)
	})
}

func TestWithDefault_NilYieldsNoop(t *testing.T) {
	got := placemetrics.WithDefault(nil)
	assert.Equal(t, placemetrics.NoopCollector{}, got)
}

func TestWithDefault_PassesThroughNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := placemetrics.NewPrometheusCollector(reg)

	got := placemetrics.WithDefault(c)
	assert.Same(t, c, got)
}

func TestPrometheusCollector_RecordsAcrossAllGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := placemetrics.NewPrometheusCollector(reg)

	assert.NotPanics(t, func() {
		c.CellPlaced()
		c.CellPlaced()
		c.Ripup()
		c.LegaliseChain(placemetrics.OutcomeSearched)
		c.LegaliseChain(placemetrics.OutcomeFailed)
		c.SearchDepth(5)
	})

	families, err := reg.Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["cells_placed_total"])
	assert.True(t, names["ripups_total"])
	assert.True(t, names["legalise_chains_total"])
	assert.True(t, names["legalise_search_depth"])
}
