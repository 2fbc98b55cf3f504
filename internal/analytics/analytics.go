// Package analytics folds collections of graded attempts into the fixed
// score buckets and the recency-ordered summary shown on the dashboard. It
// operates on an immutable snapshot fetched once per view; a refresh
// replaces the snapshot wholesale.
package analytics

import (
	"sort"

	"github.com/mcqlab/quiz-portal/internal/model"
)

// Bucket is one fixed score range of the dashboard histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// The four ranges are closed at both ends, non-overlapping, and exhaustive
// over [0,100]. Scores are clamped into [0,100] first, so every result
// lands in exactly one bucket.
var bucketBounds = []struct {
	label string
	upper float64
}{
	{"0-25", 25},
	{"26-60", 60},
	{"61-89", 89},
	{"90-100", 100},
}

// BucketScores counts results into the four fixed score ranges. A missing
// score counts as 0.
func BucketScores(results []model.ResultSummary) []Bucket {
	buckets := make([]Bucket, len(bucketBounds))
	for i, b := range bucketBounds {
		buckets[i] = Bucket{Label: b.label}
	}

	for _, r := range results {
		score := r.ScoreOrZero()
		for i, b := range bucketBounds {
			if score <= b.upper {
				buckets[i].Count++
				break
			}
		}
	}

	return buckets
}

// Recent returns the n most recently submitted results, newest first.
// Results without a usable timestamp sort as epoch zero, after everything
// else. The input snapshot is not modified.
func Recent(results []model.ResultSummary, n int) []model.ResultSummary {
	sorted := append([]model.ResultSummary(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedTime().After(sorted[j].SubmittedTime())
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// AverageScore is the mean clamped score over the snapshot, 0 when empty.
func AverageScore(results []model.ResultSummary) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.ScoreOrZero()
	}
	return sum / float64(len(results))
}
