package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timebank/internal/config"
	"timebank/internal/ledger"
	"timebank/internal/logging"
	"timebank/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "timebank",
	Short: "timebank – a personal work-hours ledger",
	Long: `timebank keeps a daily ledger of check-in/check-out times against a
contractual-hours target and reports the running balance (the "time bank").
Entries can be added by hand or bulk-imported from CSV/XLSX files.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
}

// openLedger wires config, logging, the configured store backend and
// the ledger together. The returned cleanup closes the store.
func openLedger() (*ledger.Ledger, func(), error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg := config.Resolve(fc)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log := logging.NewCLI(cfg.LogLevel)

	var st store.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		st, err = store.OpenSQLite(config.DBPath(cfg.DataDir))
	default:
		st, err = store.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		return nil, nil, err
	}

	led, err := ledger.Open(st, log)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return led, func() { _ = st.Close() }, nil
}
