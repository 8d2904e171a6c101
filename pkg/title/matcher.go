package title

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Confidence is how sure a match is.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Candidate is a search result to match against.
type Candidate struct {
	Title string
	Year  string // as reported upstream; series may be "2011–2019"
}

// Match is the outcome of Best.
type Match struct {
	Index      int // index into the candidate slice, -1 when nothing matched
	Score      float64
	Confidence Confidence
}

// Best picks the candidate closest to query using Jaro-Winkler similarity on
// cleaned titles. A trailing year in the query ("Dune 2021") must agree with
// the candidate's year; mismatches are penalised.
func Best(query string, candidates []Candidate) Match {
	best := Match{Index: -1}
	if len(candidates) == 0 {
		return best
	}

	text, year := SplitYear(query)
	want := Clean(text)

	for i, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(want, Clean(c.Title)))
		if year != "" {
			score = adjustForYear(score, year, c.Year)
		}
		if score > best.Score {
			best.Index = i
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Index = -1
	}
	return best
}

func adjustForYear(score float64, want, got string) float64 {
	if got == "" {
		return score * 0.95
	}
	if strings.HasPrefix(got, want) {
		return min(score*1.05, 1.0)
	}
	return score * 0.85
}
