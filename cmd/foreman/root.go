package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foreman/internal/config"
	"foreman/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cfg is loaded once in the persistent pre-run and shared by all subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "foreman",
	Short: "Canonical artifacts from an AI maintenance assistant",
	Long: "Foreman talks to an AI troubleshooting backend and turns its loosely-typed\nresponses into canonical artifacts: work orders, LOTO procedures, checklists,\nequipment cards and more, ready to render, export, or print.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if rootFlags.configPath != "" {
			cfg, err = config.LoadFromPath(rootFlags.configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		if rootFlags.logLevel != "" {
			cfg.Log.Level = rootFlags.logLevel
		}
		if rootFlags.logFormat != "" {
			cfg.Log.Format = rootFlags.logFormat
		}
		logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to config file (YAML or JSON)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
