// File: yaml.go
// Role: load a Fixture's grid/bel layout from a YAML document, so the
// larger end-to-end fixtures are data under devtest/testdata/*.yaml rather
// than hand-built Go literals repeated across several _test.go files.
package devtest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nextpnr-go/placecore/devmodel"
)

// belDoc is one entry of a YAML fixture's bel list.
type belDoc struct {
	ID        string `yaml:"id"`
	X         int32  `yaml:"x"`
	Y         int32  `yaml:"y"`
	Z         int32  `yaml:"z"`
	Type      string `yaml:"type"`
	GlobalBuf bool   `yaml:"global_buf"`
}

// gridDoc is the top-level shape of a devtest fixture YAML file.
type gridDoc struct {
	DimX         int32             `yaml:"dim_x"`
	DimY         int32             `yaml:"dim_y"`
	TileDimZ     int32             `yaml:"tile_dim_z"`
	Bels         []belDoc          `yaml:"bels"`
	CellBelTypes map[string]string `yaml:"cell_bel_types"`
}

// LoadYAML parses a fixture grid description and returns the equivalent
// Option list, applied in addition to any caller-supplied opts (cells are
// never part of the YAML shape: RegisterCell/WithCell attach those
// per-test, since cell identity is test-specific).
func LoadYAML(data []byte) ([]Option, error) {
	var doc gridDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("devtest: parse fixture yaml: %w", err)
	}
	if doc.DimX <= 0 || doc.DimY <= 0 {
		return nil, fmt.Errorf("devtest: fixture yaml must set positive dim_x/dim_y")
	}

	opts := []Option{WithGridDim(doc.DimX, doc.DimY)}
	if doc.TileDimZ > 0 {
		opts = append(opts, WithDefaultTileDimZ(doc.TileDimZ))
	}
	for ct, bt := range doc.CellBelTypes {
		opts = append(opts, WithCellTypeBelType(devmodel.CellType(ct), devmodel.BelType(bt)))
	}
	for _, b := range doc.Bels {
		opts = append(opts, WithBel(devmodel.BelID(b.ID), devmodel.Loc{X: b.X, Y: b.Y, Z: b.Z}, devmodel.BelType(b.Type)))
		if b.GlobalBuf {
			opts = append(opts, WithGlobalBuf(devmodel.BelID(b.ID)))
		}
	}

	return opts, nil
}

// NewFromYAML builds a Fixture from a YAML fixture description plus any
// extra options (typically WithSeed, WithTimingDriven, or per-test cells).
func NewFromYAML(data []byte, extra ...Option) (*Fixture, error) {
	opts, err := LoadYAML(data)
	if err != nil {
		return nil, err
	}

	return New(append(opts, extra...)...), nil
}
