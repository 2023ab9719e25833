// Package cli implements the settle command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/settle/internal/config"
	"github.com/mmynk/settle/internal/storage/sqlite"
	"github.com/mmynk/settle/pkg/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "settle",
	Short: "Split shared expenses and settle up with the fewest payments",
	Long: `settle ingests a ledger of shared expenses, works out who owes whom,
and produces both the full pairwise debt breakdown and an optimized
payment plan that clears all debts with minimal transactions.

Expense ledgers are read from Excel workbooks; results are printed to
the console and written back as a two-sheet settlement workbook.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupVerbose(verbose)
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default ~/.settle/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the roster database at the configured path.
func openStore() (*sqlite.SQLiteStore, error) {
	return sqlite.New(cfg.DB.Path)
}
