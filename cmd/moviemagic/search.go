package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviemagic/pkg/title"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search OMDb for movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := title.NormalizeQuery(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("query is empty")
	}

	client := NewClient(serverURL)
	results, err := client.Search(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No results for %q\n", query)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IMDB ID\tYEAR\tTYPE\tTITLE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.IMDBID, r.Year, r.Type, r.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d result(s)\n", len(results))
	return nil
}
