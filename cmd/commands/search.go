package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otdb/otdb-terminal/internal/cli"
	"github.com/otdb/otdb-terminal/pkg/form"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Collection string        `json:"collection" yaml:"collection"`
	Query      string        `json:"query" yaml:"query"`
	Count      int           `json:"count" yaml:"count"`
	Results    []form.Option `json:"results" yaml:"results"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var offline string

	cmd := &cobra.Command{
		Use:   "search <collection> <query>",
		Short: "Search users, mappools or tournaments",
		Long: `Run the same search a search field runs while you type.

Collections: users, mappools, tournaments

Examples:
  # Find a user
  otdb search users peppy

  # Search an offline option file instead of the API
  otdb search mappools owc --offline options.json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, offline)
		},
	}

	cmd.Flags().StringVar(&offline, "offline", "", "Read options from a JSON file instead of the API")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string, offline string) error {
	kind, err := cli.ValidateSearchKind(args[0])
	if err != nil {
		return err
	}
	query := strings.Join(args[1:], " ")

	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()
	logger, closer, err := ctx.OpenLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	searcher, err := ctx.Searcher(offline, logger)
	if err != nil {
		return err
	}

	results, err := searcher.Search(cmd.Context(), kind, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	format := outputFormat(cmd, settings)
	if format != string(cli.FormatText) {
		return cli.Encode(cmd.OutOrStdout(), format, SearchResultOutput{
			Collection: string(kind),
			Query:      query,
			Count:      len(results),
			Results:    results,
		})
	}

	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s found for %q\n", kind, query)
		return nil
	}

	table := cli.NewTable("LABEL", "VALUE")
	for _, r := range results {
		table.Row(cli.Truncate(r.Label, 50), cli.FormatValue(r.Value))
	}
	return table.Write(cmd.OutOrStdout())
}
