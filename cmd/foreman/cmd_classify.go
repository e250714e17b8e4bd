package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"foreman/internal/classify"
	"foreman/internal/export"
	"foreman/internal/format"
	"foreman/internal/logging"
)

var classifyFlags struct {
	output string
	mode   string
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file...]",
	Short: "Classify raw assistant responses into canonical artifacts",
	Long: `Reads one or more raw response files (or stdin when no file is given),
runs each through the classification pipeline, and prints the result.
Output is the kind-tagged artifact JSON, or rendered text with --output=text.`,
	RunE: runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVarP(&classifyFlags.output, "output", "o", "json", "Output form (json, text)")
	f.StringVar(&classifyFlags.mode, "mode", "ascii", "Text rendering mode (ascii, markdown)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	logger := logging.New("classify")

	if len(args) == 0 {
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, err := classifyOne(body)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	// Each file is independent; fan out, but print in argument order.
	results := make([]string, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			body, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			out, err := classifyOne(body)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug("classified responses", "count", len(args))
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	return nil
}

func classifyOne(body []byte) (string, error) {
	res, err := classify.Transform(body)
	if err != nil {
		var upstream *classify.UpstreamError
		if errors.As(err, &upstream) {
			return "", fmt.Errorf("upstream error: %s", upstream.Message)
		}
		return "", err
	}

	if classifyFlags.output == "text" {
		return export.Render(res.Artifact, format.ParseMode(classifyFlags.mode)), nil
	}
	encoded, err := export.Marshal(res.Artifact)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
