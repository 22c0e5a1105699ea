package synth

import (
	"math"
	"math/rand/v2"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

// DefaultBandSize is the number of rows at each end of the atoms table
// that receive a distinct category code.
const DefaultBandSize = 100

// Category codes assigned to atom rows. The whole table starts at
// CodeBulk, then the leading band is overwritten with CodeHead and the
// trailing band with CodeTail, in that order. When the bands overlap
// (fewer rows than two bands) the trailing code wins.
const (
	CodeBulk = 1
	CodeHead = 2
	CodeTail = 3
)

// Coordinate transform: a uniform draw in [0,1) is scaled to [-60,60),
// squared, and divided by 10. Squaring removes the sign, so coordinates
// are always >= 0.
const (
	coordSpan = 120.0
	coordLow  = -60.0
	coordDamp = 10.0
)

// Params configures dataset generation.
type Params struct {
	Atoms    int    // Number of atom rows.
	BandSize int    // Rows per category band; 0 means DefaultBandSize.
	Seed     uint64 // Random seed; 0 means unseeded.
	Layout   string // types.LayoutBox or types.LayoutRing; "" means box.
}

// Generator produces synthetic tables from one parameter set.
type Generator struct {
	params Params
	rng    *rand.Rand // nil means the shared global source
}

// New validates the parameters and returns a Generator.
// Returns ErrInvalidCount for negative counts or band sizes and
// ErrInvalidLayout for an unrecognized layout.
func New(p Params) (*Generator, error) {
	if p.Atoms < 0 || p.BandSize < 0 {
		return nil, types.ErrInvalidCount
	}
	if p.BandSize == 0 {
		p.BandSize = DefaultBandSize
	}
	if p.Layout == "" {
		p.Layout = types.LayoutBox
	}
	if p.Layout != types.LayoutBox && p.Layout != types.LayoutRing {
		return nil, types.ErrInvalidLayout
	}

	g := &Generator{params: p}
	if p.Seed != 0 {
		g.rng = rand.New(rand.NewPCG(p.Seed, p.Seed))
	}
	return g, nil
}

// Params returns the effective parameters after defaulting.
func (g *Generator) Params() Params {
	return g.params
}

func (g *Generator) float64() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}

// Atoms builds a six-column atoms table with count rows: a contiguous
// 1..count identifier, a banded category code, its mirror, and three
// squared-uniform coordinates. Returns ErrInvalidCount for count < 0.
func (g *Generator) Atoms(count int) (*types.Table, error) {
	tbl, err := types.NewTable(types.AtomColumns, count)
	if err != nil {
		return nil, err
	}

	band := g.params.BandSize
	for i := 0; i < count; i++ {
		row := tbl.Row(i)
		row[0] = float32(i + 1)

		code := CodeBulk
		if i < band {
			code = CodeHead
		}
		if i >= count-band {
			code = CodeTail
		}
		row[1] = float32(code)
		row[2] = row[1]

		for c := 3; c < len(row); c++ {
			v := g.float64()*coordSpan + coordLow
			row[c] = float32(v * v / coordDamp)
		}
	}
	return tbl, nil
}

// Polymer builds an atoms table whose rows sit on a circle in the z=0
// plane. Angles are spaced evenly over [-pi, pi] endpoints included, so
// the first and last atoms coincide and close the ring. A radius <= 0
// defaults to count/(2*pi), making the circumference roughly one unit
// per atom. Category and mirror codes are all 1.
func (g *Generator) Polymer(count int, radius float64) (*types.Table, error) {
	tbl, err := types.NewTable(types.AtomColumns, count)
	if err != nil {
		return nil, err
	}
	if radius <= 0 {
		radius = float64(count) / (2 * math.Pi)
	}

	step := 0.0
	if count > 1 {
		step = 2 * math.Pi / float64(count-1)
	}
	for i := 0; i < count; i++ {
		angle := -math.Pi + float64(i)*step
		row := tbl.Row(i)
		row[0] = float32(i + 1)
		row[1] = 1
		row[2] = 1
		row[3] = float32(radius * math.Cos(angle))
		row[4] = float32(radius * math.Sin(angle))
		row[5] = 0
	}
	return tbl, nil
}

// Atoms builds an atoms table with default parameters and the shared
// random source.
func Atoms(count int) (*types.Table, error) {
	g, err := New(Params{Atoms: count})
	if err != nil {
		return nil, err
	}
	return g.Atoms(count)
}
