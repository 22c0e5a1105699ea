package synth

import (
	"fmt"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

// Member counts for ring connectivity tables.
const (
	bondMembers     = 2
	angleMembers    = 3
	dihedralMembers = 4
)

// Bonds builds the bond table for a closed ring of count atoms: each row
// links atom i+1 to atom i+2, with references past count wrapping back to
// the start. Columns: id, type (always 1), a1, a2.
func Bonds(count int) (*types.Table, error) {
	return ring(count, bondMembers)
}

// Angles builds the angle table for a closed ring of count atoms.
// Columns: id, type (always 1), a1..a3.
func Angles(count int) (*types.Table, error) {
	return ring(count, angleMembers)
}

// Dihedrals builds the dihedral table for a closed ring of count atoms.
// Columns: id, type (always 1), a1..a4.
func Dihedrals(count int) (*types.Table, error) {
	return ring(count, dihedralMembers)
}

// ring builds a connectivity table whose row i references atoms
// i+1 .. i+members, shifting any reference past count down by count so
// the chain closes on itself.
func ring(count, members int) (*types.Table, error) {
	cols := make([]string, 2+members)
	cols[0] = "id"
	cols[1] = "type"
	for m := 0; m < members; m++ {
		cols[2+m] = fmt.Sprintf("a%d", m+1)
	}

	tbl, err := types.NewTable(cols, count)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		row := tbl.Row(i)
		row[0] = float32(i + 1)
		row[1] = 1
		for m := 0; m < members; m++ {
			ref := i + 1 + m
			if ref > count {
				ref -= count
			}
			row[2+m] = float32(ref)
		}
	}
	return tbl, nil
}
