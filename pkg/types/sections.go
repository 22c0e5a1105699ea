package types

// Standard dataset section names.
const (
	SectionAtoms     = "atoms"
	SectionBonds     = "bonds"
	SectionAngles    = "angles"
	SectionDihedrals = "dihedrals"
)

// SectionNames lists all standard section names in dataset order.
var SectionNames = []string{
	SectionAtoms,
	SectionBonds,
	SectionAngles,
	SectionDihedrals,
}

// Column names for the atoms table. Identifier first, then the category
// code, its mirror, and the three spatial coordinates.
const (
	ColAtomID   = "id"
	ColAtomType = "type"
	ColMolType  = "mol"
	ColX        = "x"
	ColY        = "y"
	ColZ        = "z"
)

// AtomColumns lists the atoms table columns in storage order.
var AtomColumns = []string{ColAtomID, ColAtomType, ColMolType, ColX, ColY, ColZ}

// CoordColumns lists the three coordinate columns of the atoms table.
var CoordColumns = []string{ColX, ColY, ColZ}
