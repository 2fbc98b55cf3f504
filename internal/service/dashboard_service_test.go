package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/rs/zerolog"
)

func TestMyDashboardAggregates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quizzes/me/results" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "quiz_id": "a", "score": 10, "submitted_at": "2026-02-01T08:00:00"},
			{"id": 2, "quiz_id": "b", "score": 30, "submitted_at": "2026-02-03T08:00:00"},
			{"id": 3, "quiz_id": "c", "score": 65, "submitted_at": "2026-02-02T08:00:00"},
			{"id": 4, "quiz_id": "d", "score": 95, "submitted_at": "2026-02-05T08:00:00"},
			{"id": 5, "quiz_id": "e", "score": 90}
		]`))
	}))
	t.Cleanup(srv.Close)

	up := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	svc := NewDashboardService(up, 3, zerolog.Nop())

	data, err := svc.MyDashboard(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MyDashboard: %v", err)
	}

	if data.TotalAttempts != 5 {
		t.Errorf("TotalAttempts = %d", data.TotalAttempts)
	}

	wantBuckets := map[string]int{"0-25": 1, "26-60": 1, "61-89": 1, "90-100": 2}
	for _, b := range data.Buckets {
		if b.Count != wantBuckets[b.Label] {
			t.Errorf("bucket %s = %d, want %d", b.Label, b.Count, wantBuckets[b.Label])
		}
	}

	// Newest first; the timestamp-less result sorts behind everything and
	// does not make the cut.
	if len(data.Recent) != 3 {
		t.Fatalf("Recent = %d entries", len(data.Recent))
	}
	for i, want := range []string{"d", "b", "c"} {
		if data.Recent[i].QuizID != want {
			t.Errorf("Recent[%d] = %s, want %s", i, data.Recent[i].QuizID, want)
		}
	}
	if data.Recent[0].ResultID != "4" {
		t.Errorf("ResultID = %q, want 4 (list id normalized)", data.Recent[0].ResultID)
	}
}
