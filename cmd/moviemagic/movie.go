package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviemagic/pkg/title"
)

var movieCmd = &cobra.Command{
	Use:   "movie [imdb-id]",
	Short: "Show movie details and user reviews",
	Long: `Show movie details and user reviews.

Pass an IMDb identifier, or use --title to search and pick
the closest match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMovie,
}

func init() {
	movieCmd.Flags().String("title", "", "Resolve the movie by title instead of identifier")
	rootCmd.AddCommand(movieCmd)
}

func runMovie(cmd *cobra.Command, args []string) error {
	byTitle, _ := cmd.Flags().GetString("title")
	client := NewClient(serverURL)

	var id string
	switch {
	case len(args) == 1:
		id = args[0]
	case byTitle != "":
		resolved, err := resolveTitle(client, byTitle)
		if err != nil {
			return err
		}
		id = resolved
	default:
		return fmt.Errorf("an imdb id or --title is required")
	}

	movie, err := client.Movie(id)
	if err != nil {
		return fmt.Errorf("get movie failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, movie.Raw)
	}
	printMovie(out, movie)
	return nil
}

// resolveTitle searches by title and returns the identifier of the best match.
func resolveTitle(client *Client, query string) (string, error) {
	query = title.NormalizeQuery(query)
	text, _ := title.SplitYear(query)

	results, err := client.Search(text)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}

	candidates := make([]title.Candidate, len(results))
	for i, r := range results {
		candidates[i] = title.Candidate{Title: r.Title, Year: r.Year}
	}

	m := title.Best(query, candidates)
	if m.Index < 0 {
		return "", fmt.Errorf("no movie matching %q", query)
	}
	return results[m.Index].IMDBID, nil
}

func printMovie(w io.Writer, m *MovieDetails) {
	fmt.Fprintf(w, "%s (%s)  [%s]\n", m.Title, m.Year, m.IMDBID)
	if m.Rated != "" || m.Runtime != "" {
		fmt.Fprintf(w, "  Rated:    %s  %s\n", m.Rated, m.Runtime)
	}
	if m.Genre != "" {
		fmt.Fprintf(w, "  Genre:    %s\n", m.Genre)
	}
	if m.Director != "" {
		fmt.Fprintf(w, "  Director: %s\n", m.Director)
	}
	if m.Actors != "" {
		fmt.Fprintf(w, "  Actors:   %s\n", m.Actors)
	}
	if m.IMDBRating != "" {
		fmt.Fprintf(w, "  IMDb:     %s\n", m.IMDBRating)
	}
	if m.Plot != "" {
		fmt.Fprintf(w, "\n%s\n", m.Plot)
	}

	fmt.Fprintln(w)
	printReviews(w, m.UserReviews)
}
