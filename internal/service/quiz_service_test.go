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

func TestListQuizzesAnnotatesScope(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"quiz_id": "q1", "quiz": {"quiz_title": "T1", "scope": "chapters=[\"Intro\",\"Basics\"]"}},
			{"quiz_id": "q2", "quiz": {"quiz_title": "T2", "scope": "book=algo"}},
			{"quiz_id": "q3", "quiz": {"quiz_title": "T3"}}
		]`))
	}))
	t.Cleanup(srv.Close)

	up := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	svc := NewQuizService(up, nil, time.Minute, zerolog.Nop())

	list, err := svc.ListQuizzes(context.Background(), "", false)
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}

	want := []string{"Chapters: Intro, Basics", "book=algo", "-"}
	for i, w := range want {
		if list[i].ScopeLabel != w {
			t.Errorf("ScopeLabel[%d] = %q, want %q", i, list[i].ScopeLabel, w)
		}
	}

	// Without Redis every call goes upstream; nothing is silently reused.
	if _, err := svc.ListQuizzes(context.Background(), "", false); err != nil {
		t.Fatalf("second ListQuizzes: %v", err)
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2", calls)
	}
}
