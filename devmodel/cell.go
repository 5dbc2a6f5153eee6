// This file declares Cell and Port: the netlist-instance vocabulary the
// placement core reads and mutates. Cells and nets are owned by the
// external netlist container — this package never constructs or destroys
// them, only the bel-binding side effects of placement.
package devmodel

// Port is one named terminal of a Cell, optionally connected to a Net.
type Port struct {
	Name string
	Net  *Net // nil when unconnected
}

// Cell is a netlist instance awaiting (or already holding) a bel binding.
//
// The four constraint fields (ConstrX, ConstrY, ConstrZ, ConstrAbsZ) and the
// Parent/Children links describe a relative-placement chain: Parent is nil
// for a chain root, and Children is the ordered list of cells whose
// location is pinned relative to (or, for Z, optionally absolute to) this
// cell. The Parent/Children graph is a forest — no cycles — maintained by
// the external netlist; legalise only reads it.
type Cell struct {
	Name string
	Type CellType

	Bel      *BelID // nil when unplaced
	Strength Strength

	Ports map[string]*Port

	ConstrX, ConstrY, ConstrZ int32 // UNCONSTR when the axis is not pinned
	ConstrAbsZ                bool  // true: ConstrZ is absolute; false: relative to Parent

	Parent   *Cell
	Children []*Cell
}

// NewCell returns a Cell with an empty port map and every constraint axis
// unset. Callers attach ports and constraints before handing the cell to
// the placement core.
func NewCell(name string, typ CellType) *Cell {
	return &Cell{
		Name:     name,
		Type:     typ,
		Strength: StrengthNone,
		Ports:    make(map[string]*Port),
		ConstrX:  UNCONSTR,
		ConstrY:  UNCONSTR,
		ConstrZ:  UNCONSTR,
	}
}

// Port returns the named port, creating an unconnected one if it does not
// yet exist. This mirrors how a netlist lazily grows a cell's port set as
// the design is read in.
func (c *Cell) Port(name string) *Port {
	if p, ok := c.Ports[name]; ok {
		return p
	}
	p := &Port{Name: name}
	c.Ports[name] = p

	return p
}

// Placed reports whether the cell currently holds a bel binding.
func (c *Cell) Placed() bool {
	return c.Bel != nil
}

// IsRoot reports whether c has no constraint parent, i.e. it drives its own
// chain's legalisation.
func (c *Cell) IsRoot() bool {
	return c.Parent == nil
}

// HasConstraints reports whether any of the cell's own axes are pinned.
// A root with no constraints and no children has nothing to legalise.
func (c *Cell) HasConstraints() bool {
	return c.ConstrX != UNCONSTR || c.ConstrY != UNCONSTR || c.ConstrZ != UNCONSTR
}

// Chain returns every cell in c's subtree (c included) in a deterministic
// pre-order: c, then each child's Chain in Children order. Used by
// legalise for recursive lockdown and for the fatal chain-tree dump.
func (c *Cell) Chain() []*Cell {
	out := []*Cell{c}
	for _, child := range c.Children {
		out = append(out, child.Chain()...)
	}

	return out
}
