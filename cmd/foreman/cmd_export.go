package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foreman/internal/export"
	"foreman/internal/format"
)

var exportFlags struct {
	file string
	mode string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a stored artifact envelope as text",
	Long:  "Reads a kind-tagged artifact JSON file (as produced by classify or ask --json)\nand renders it as plain text or Markdown.",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFlags.file, "file", "f", "", "Artifact envelope file (required)")
	f.StringVar(&exportFlags.mode, "mode", "", "Rendering mode (ascii, markdown); defaults to config")

	_ = exportCmd.MarkFlagRequired("file")
}

func runExport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportFlags.file)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	a, err := export.Unmarshal(data)
	if err != nil {
		return err
	}

	mode := exportFlags.mode
	if mode == "" {
		mode = cfg.Export.Mode
	}
	fmt.Fprintln(cmd.OutOrStdout(), export.Render(a, format.ParseMode(mode)))
	return nil
}
