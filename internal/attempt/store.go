package attempt

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/rs/zerolog"
)

const sweepInterval = time.Minute

// Store is the registry of live attempt sessions. Sessions that go
// untouched for longer than the TTL are evicted by the background sweep;
// everything else is dropped explicitly on submit or abandon.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	log      zerolog.Logger
}

// NewStore creates an attempt session registry with the given idle TTL.
func NewStore(ttl time.Duration, log zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		log:      log.With().Str("component", "attempt_store").Logger(),
	}
}

// Start opens a new attempt session over a quiz snapshot.
func (st *Store) Start(quizID string, quiz *model.Quiz) *Session {
	sess := newSession(quizID, quiz)

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	st.log.Debug().
		Str("attempt_id", sess.ID.String()).
		Str("quiz_id", quizID).
		Int("questions", sess.QuestionCount()).
		Msg("Attempt started")

	return sess
}

// Get returns the session for id and refreshes its idle timer.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	st.mu.Unlock()

	if ok {
		sess.touch(time.Now())
	}
	return sess, ok
}

// Drop discards a session. Dropping an unknown id is a no-op.
func (st *Store) Drop(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts stale sessions until the context is canceled. Run it as a
// goroutine from main.
func (st *Store) Sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			st.evictStale(now)
		}
	}
}

func (st *Store) evictStale(now time.Time) {
	deadline := now.Add(-st.ttl)

	st.mu.Lock()
	var stale []uuid.UUID
	for id, sess := range st.sessions {
		if sess.staleSince(deadline) {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		delete(st.sessions, id)
	}
	st.mu.Unlock()

	if len(stale) > 0 {
		st.log.Info().Int("evicted", len(stale)).Msg("Stale attempts evicted")
	}
}
