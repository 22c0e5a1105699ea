// Package synth builds synthetic molecular-topology tables: randomly
// placed or ring-shaped atoms plus their bond, angle, and dihedral
// tables. The values are test scaffolding, not physics; the coordinate
// transform in particular squares its draw, so every coordinate comes
// out non-negative.
package synth
