package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"foreman/internal/assistant"
	"foreman/internal/export"
	"foreman/internal/format"
	"foreman/internal/logging"
)

var askFlags struct {
	image string
	json  bool
	mode  string
	save  bool
}

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Send a question to the troubleshooting backend",
	Long: `Sends a question (optionally with an image) to the assistant backend,
classifies the response, and prints the resulting artifact(s).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	f := askCmd.Flags()
	f.StringVar(&askFlags.image, "image", "", "Path to an image to upload with the question")
	f.BoolVar(&askFlags.json, "json", false, "Print the artifact envelope as JSON instead of text")
	f.StringVar(&askFlags.mode, "mode", "ascii", "Text rendering mode (ascii, markdown)")
	f.BoolVar(&askFlags.save, "save", false, "Record the classified artifact in the local history database")
}

func runAsk(cmd *cobra.Command, args []string) error {
	logger := logging.New("ask")

	client, err := newAssistantClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var imageID string
	if askFlags.image != "" {
		data, err := os.ReadFile(askFlags.image)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		imageID, err = client.UploadImage(ctx, filepath.Base(askFlags.image), data)
		if err != nil {
			return userFacing(err)
		}
		logger.Debug("image uploaded", "image_id", imageID)
	}

	res, err := client.Ask(ctx, strings.Join(args, " "), imageID)
	if err != nil {
		return userFacing(err)
	}

	logger.Debug("response classified",
		"kind", res.Classification.Kind, "source", res.Classification.Source)

	if askFlags.save {
		saveToHistory(strings.Join(args, " "), res)
	}

	out := cmd.OutOrStdout()
	if askFlags.json {
		encoded, err := export.Marshal(res.Artifact)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	text := export.Render(res.Artifact, format.ParseMode(askFlags.mode))
	if strings.TrimSpace(text) == "" {
		// An empty multi-response with no citable sources renders nothing;
		// the user still deserves an answer.
		text = "no response available"
	}
	fmt.Fprintln(out, text)
	return nil
}

// userFacing swaps a transport error for its user-facing message; other
// errors pass through for normal CLI reporting.
func userFacing(err error) error {
	var reqErr *assistant.RequestError
	if errors.As(err, &reqErr) {
		return errors.New(reqErr.UserMessage())
	}
	return err
}

// newAssistantClient builds the client from the loaded config.
func newAssistantClient() (*assistant.Client, error) {
	if cfg.Assistant.BaseURL == "" {
		return nil, fmt.Errorf("assistant base URL not configured (set assistant.base_url in the config file)")
	}

	var apiKey string
	if cfg.Assistant.APIKeyPath != "" {
		key, err := os.ReadFile(cfg.Assistant.APIKeyPath)
		if err != nil {
			return nil, fmt.Errorf("read API key: %w", err)
		}
		apiKey = strings.TrimSpace(string(key))
	}

	return assistant.New(cfg.Assistant.BaseURL, apiKey,
		assistant.WithTimeout(cfg.Assistant.Timeout),
		assistant.WithSessions(cfg.Assistant.Sessions),
		assistant.WithLogger(logging.New("assistant")),
	)
}
