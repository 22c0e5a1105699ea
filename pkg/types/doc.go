// Package types defines the Table representation, run-ledger entities,
// configuration, and standard error values for the topotab system.
package types
