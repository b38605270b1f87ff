package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"json-cooker/core/cooker"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var titlesFormat string

// titlesCmd prints what each title downloads, resolves and produces
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "List the fetch sets, key rules and transforms of every title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTitles(cmd.OutOrStdout(), allTitles(), titlesFormat)
	},
}

func printTitles(w io.Writer, titles []cooker.Title, format string) error {
	summaries := make([]cooker.TitleSummary, 0, len(titles))
	for _, t := range titles {
		summaries = append(summaries, t.Summary())
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(summaries)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func init() {
	titlesCmd.Flags().StringVar(&titlesFormat, "format", "yaml", "Output format (yaml, json)")
	RootCmd.AddCommand(titlesCmd)
}
