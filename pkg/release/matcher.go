package release

import (
	"regexp"
	"slices"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b\d+\b`)

// Confidence grades a fuzzy title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // below 0.70
	ConfidenceLow                      // 0.70 and up
	ConfidenceMedium                   // 0.85 and up
	ConfidenceHigh                     // 0.95 and up
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

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Match is the best candidate for a title.
type Match struct {
	Title      string // empty when Confidence is ConfidenceNone
	Score      float64
	Confidence Confidence
}

// Similarity scores two titles between 0 and 1 using Jaro-Winkler over the
// cleaned titles. Shared sequence numbers ("Part 2") raise the score, differing
// or missing ones lower it.
func Similarity(a, b string) float64 {
	ca, cb := CleanTitle(a), CleanTitle(b)
	score := float64(edlib.JaroWinklerSimilarity(ca, cb))

	numsA := numberRegex.FindAllString(ca, -1)
	if len(numsA) == 0 {
		return score
	}
	numsB := numberRegex.FindAllString(cb, -1)
	switch {
	case len(numsB) == 0:
		return score * 0.85
	case slices.ContainsFunc(numsA, func(n string) bool { return slices.Contains(numsB, n) }):
		return min(score*1.05, 1.0)
	default:
		return score * 0.90
	}
}

// MatchTitle picks the candidate most similar to title.
func MatchTitle(title string, candidates []string) Match {
	var best Match
	for _, c := range candidates {
		if score := Similarity(title, c); score > best.Score {
			best = Match{Title: c, Score: score}
		}
	}
	best.Confidence = confidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Title = ""
	}
	return best
}

// SameTitle reports whether two titles match with at least the given confidence.
func SameTitle(a, b string, atLeast Confidence) bool {
	return confidenceFor(Similarity(a, b)) >= atLeast
}
