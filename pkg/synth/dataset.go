package synth

import "github.com/mesh-intelligence/topotab/pkg/types"

// Placeholder widths for the box layout's inert auxiliary tables.
const (
	bondWidth     = 4
	angleWidth    = 5
	dihedralWidth = 6
)

// Dataset bundles the four tables produced by one generation run.
type Dataset struct {
	Params    Params
	Atoms     *types.Table
	Bonds     *types.Table
	Angles    *types.Table
	Dihedrals *types.Table
}

// Dataset builds all four tables from the generator's parameters. The box
// layout pairs random atoms with placeholder auxiliary tables; the ring
// layout pairs a circular polymer with real wraparound connectivity.
func (g *Generator) Dataset() (*Dataset, error) {
	n := g.params.Atoms
	ds := &Dataset{Params: g.params}

	var err error
	switch g.params.Layout {
	case types.LayoutRing:
		if ds.Atoms, err = g.Polymer(n, 0); err != nil {
			return nil, err
		}
		if ds.Bonds, err = Bonds(n); err != nil {
			return nil, err
		}
		if ds.Angles, err = Angles(n); err != nil {
			return nil, err
		}
		if ds.Dihedrals, err = Dihedrals(n); err != nil {
			return nil, err
		}
	default:
		if ds.Atoms, err = g.Atoms(n); err != nil {
			return nil, err
		}
		if ds.Bonds, err = Placeholder(n, bondWidth); err != nil {
			return nil, err
		}
		if ds.Angles, err = Placeholder(n, angleWidth); err != nil {
			return nil, err
		}
		if ds.Dihedrals, err = Placeholder(n, dihedralWidth); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Section returns the table for the named section, or false when the
// name is not one of the standard sections.
func (ds *Dataset) Section(name string) (*types.Table, bool) {
	switch name {
	case types.SectionAtoms:
		return ds.Atoms, true
	case types.SectionBonds:
		return ds.Bonds, true
	case types.SectionAngles:
		return ds.Angles, true
	case types.SectionDihedrals:
		return ds.Dihedrals, true
	default:
		return nil, false
	}
}
