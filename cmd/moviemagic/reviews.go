package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews <imdb-id>",
	Short: "List user reviews for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviews,
}

var reviewCmd = &cobra.Command{
	Use:   "review <imdb-id>",
	Short: "Add a user review for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddReview,
}

func init() {
	reviewCmd.Flags().String("rating", "", "Rating (numbers are sent as JSON numbers)")
	reviewCmd.Flags().String("comment", "", "Review text")
	reviewCmd.Flags().String("username", "", "Reviewer name (server default: Anonymous)")
	_ = reviewCmd.MarkFlagRequired("rating")
	_ = reviewCmd.MarkFlagRequired("comment")

	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runReviews(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	reviews, err := client.Reviews(args[0])
	if err != nil {
		return fmt.Errorf("list reviews failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, reviews)
	}
	printReviews(out, reviews)
	return nil
}

func runAddReview(cmd *cobra.Command, args []string) error {
	rating, _ := cmd.Flags().GetString("rating")
	comment, _ := cmd.Flags().GetString("comment")

	req := AddReviewRequest{
		Rating:  parseRating(rating),
		Comment: comment,
	}
	if cmd.Flags().Changed("username") {
		username, _ := cmd.Flags().GetString("username")
		req.Username = &username
	}

	client := NewClient(serverURL)
	resp, err := client.AddReview(args[0], req)
	if err != nil {
		return fmt.Errorf("add review failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}
	fmt.Fprintln(out, resp.Message)
	return nil
}

// parseRating sends numeric ratings as JSON numbers and anything else verbatim.
// NaN and infinities have no JSON number form and stay strings.
func parseRating(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

func printReviews(w io.Writer, reviews []Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(w, "No reviews yet.")
		return
	}
	fmt.Fprintf(w, "Reviews (%d):\n", len(reviews))
	for _, r := range reviews {
		fmt.Fprintf(w, "  [%v] %v: %v\n", r.Rating, r.Username, r.Comment)
	}
}
