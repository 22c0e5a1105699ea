// Package main provides the topotab CLI: it synthesizes molecular
// topology tables (atoms, bonds, angles, dihedrals), prints aggregate
// summaries, and records run summaries in a local ledger.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
