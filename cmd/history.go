package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"json-cooker/core/config"
	"json-cooker/core/database"
	"json-cooker/core/ledger"

	"github.com/spf13/cobra"
)

var (
	historyTitle string
	historyLimit int
)

// historyCmd shows recent cooks recorded in the run ledger
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent cook runs from the run ledger",
	Long:  `Reads the run ledger (database.enabled must be true) and prints the latest runs with their failed tasks.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !cfg.Database.Enabled {
			return errors.New("run ledger is disabled (set DATABASE_ENABLED=true)")
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		l := ledger.New(db)
		if err := l.Migrate(cmd.Context()); err != nil {
			return err
		}
		runs, err := l.Recent(cmd.Context(), historyTitle, historyLimit)
		if err != nil {
			return err
		}
		return printHistory(cmd.OutOrStdout(), runs)
	},
}

func printHistory(w io.Writer, runs []ledger.CookRun) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tTITLE\tSTATE\tARTIFACTS\tFAILURES\tRUN ID")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Title, r.State, r.Artifacts, r.Failures, r.RunID)
		for _, t := range r.Tasks {
			if !t.OK() {
				fmt.Fprintf(tw, "\t  %s %s\t%s\t\t\t\n", t.Stage, t.Name, t.Error)
			}
		}
	}
	return tw.Flush()
}

func init() {
	historyCmd.Flags().StringVar(&historyTitle, "title", "", "Only show runs of this title")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show")
	RootCmd.AddCommand(historyCmd)
}
