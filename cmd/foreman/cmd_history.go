package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"foreman/internal/classify"
	"foreman/internal/export"
	"foreman/internal/format"
	"foreman/internal/history"
	"foreman/internal/logging"
)

var historyFlags struct {
	limit int
	mode  string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously classified artifacts",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-render one stored artifact",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "Maximum number of records to list")
	historyShowCmd.Flags().StringVar(&historyFlags.mode, "mode", "", "Text rendering mode (ascii, markdown); defaults to the configured export mode")
	historyCmd.AddCommand(historyShowCmd)
}

func openHistory() (*history.SqlStore, error) {
	path := cfg.History.Path
	if path == "" {
		path = history.DefaultDBPath
	}
	return history.Open(path)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List(historyFlags.limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
		return nil
	}

	tbl := format.NewTable(format.ASCII)
	tbl.Header("ID", "When", "Kind", "Source", "Query")
	for _, r := range recs {
		tbl.Row(r.ID, r.CreatedAt.Local().Format(time.DateTime), string(r.Kind), r.Source,
			format.Truncate(r.Query, 48))
	}
	tbl.Columns(format.ColumnConfig{Number: 1, Align: format.AlignRight})
	fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q", args[0])
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(id)
	if err != nil {
		return err
	}

	a, err := export.Unmarshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("decode stored artifact: %w", err)
	}

	mode := historyFlags.mode
	if mode == "" {
		mode = cfg.Export.Mode
	}
	fmt.Fprintln(cmd.OutOrStdout(), export.Render(a, format.ParseMode(mode)))
	return nil
}

// saveToHistory records a classification outcome. Failures are logged, not
// fatal: the answer was already produced and must still be shown.
func saveToHistory(query string, res classify.Result) {
	store, err := openHistory()
	if err != nil {
		logging.New("history").Warn("open history store", "error", err)
		return
	}
	defer store.Close()

	payload, err := export.Marshal(res.Artifact)
	if err != nil {
		logging.New("history").Warn("encode artifact", "error", err)
		return
	}
	if _, err := store.Save(&history.Record{
		Query:   query,
		Kind:    res.Classification.Kind,
		Source:  string(res.Classification.Source),
		Payload: payload,
	}); err != nil {
		logging.New("history").Warn("save record", "error", err)
	}
}
