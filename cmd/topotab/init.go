// Init command: create configuration and data directories and
// initialize the run ledger.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize topotab configuration and ledger storage",
	Long:  "Create the configuration directory with a default config.yaml and initialize the run-ledger data directory.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	// Initialize the ledger data directory via Attach then Detach.
	store, err := attachStore()
	if err != nil {
		return err
	}
	if err := store.Detach(); err != nil {
		return fmt.Errorf("finalize ledger: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "topotab initialized successfully")
	return nil
}
