package analytics

import (
	"testing"

	"github.com/mcqlab/quiz-portal/internal/model"
)

func score(v float64) *float64 { return &v }

func results(scores ...*float64) []model.ResultSummary {
	out := make([]model.ResultSummary, len(scores))
	for i, s := range scores {
		out[i] = model.ResultSummary{QuizID: "q", Score: s}
	}
	return out
}

func counts(buckets []Bucket) map[string]int {
	m := make(map[string]int, len(buckets))
	for _, b := range buckets {
		m[b.Label] = b.Count
	}
	return m
}

func TestBucketScoresScenario(t *testing.T) {
	got := counts(BucketScores(results(score(10), score(30), score(65), score(95), score(90))))

	want := map[string]int{"0-25": 1, "26-60": 1, "61-89": 1, "90-100": 2}
	for label, n := range want {
		if got[label] != n {
			t.Errorf("bucket %s = %d, want %d", label, got[label], n)
		}
	}
}

// The closed upper boundaries 25, 60 and 89 belong to the lower bucket.
func TestBucketScoresBoundaries(t *testing.T) {
	tests := []struct {
		score  float64
		bucket string
	}{
		{0, "0-25"},
		{25, "0-25"},
		{26, "26-60"},
		{60, "26-60"},
		{61, "61-89"},
		{89, "61-89"},
		{90, "90-100"},
		{100, "90-100"},
	}

	for _, tt := range tests {
		buckets := BucketScores(results(score(tt.score)))
		if got := counts(buckets); got[tt.bucket] != 1 {
			t.Errorf("score %v: buckets %v, want it in %s", tt.score, got, tt.bucket)
		}
	}
}

func TestBucketScoresExactlyOneBucketPerResult(t *testing.T) {
	rs := results(score(-20), score(0), score(49.5), score(150), nil)

	buckets := BucketScores(rs)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(rs) {
		t.Fatalf("bucket counts sum to %d, want %d", total, len(rs))
	}

	// Out-of-range scores clamp; nil scores count as 0.
	got := counts(buckets)
	if got["0-25"] != 3 {
		t.Errorf("0-25 = %d, want 3 (clamped -20, 0, nil)", got["0-25"])
	}
	if got["90-100"] != 1 {
		t.Errorf("90-100 = %d, want 1 (clamped 150)", got["90-100"])
	}
}

func TestRecentOrdersBySubmittedAtDescending(t *testing.T) {
	rs := []model.ResultSummary{
		{QuizID: "old", SubmittedAt: "2026-01-05T10:00:00"},
		{QuizID: "missing"},
		{QuizID: "new", SubmittedAt: "2026-03-01T09:30:00"},
		{QuizID: "mid", SubmittedAt: "2026-02-10T18:45:00.123456"},
	}

	got := Recent(rs, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if got[i].QuizID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].QuizID, want)
		}
	}

	// A missing timestamp sorts last, and the snapshot is untouched.
	all := Recent(rs, 10)
	if all[len(all)-1].QuizID != "missing" {
		t.Errorf("missing timestamp must sort last, got %s", all[len(all)-1].QuizID)
	}
	if rs[0].QuizID != "old" {
		t.Error("input snapshot was reordered")
	}
}

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != 0 {
		t.Fatalf("empty average = %v", got)
	}
	if got := AverageScore(results(score(50), score(100), nil)); got != 50 {
		t.Fatalf("average = %v, want 50", got)
	}
}
