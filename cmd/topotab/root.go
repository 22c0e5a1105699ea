// Root command for the topotab CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/topotab/internal/paths"
	"github.com/mesh-intelligence/topotab/pkg/topotab"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the configuration loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "topotab",
	Short: "Topotab synthesizes molecular-topology tables and summarizes them",
	Long: `Topotab builds synthetic molecular-topology datasets (atoms plus bond,
angle, and dihedral tables), reports column-wise aggregate statistics,
and can record run summaries in a local SQLite ledger.`,
	Version:       topotab.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "ledger data directory (default: $(CWD)/.topotab-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(runsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TOPOTAB_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > TOPOTAB_DATA_DIR env >
// default $(CWD)/.topotab-db.
func resolveDataDir() (string, error) {
	var configDataDir string
	if cfg != nil {
		configDataDir = cfg.GetString(cfgKeyDataDir)
	}
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
