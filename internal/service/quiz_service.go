package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mcqlab/quiz-portal/internal/config"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/scope"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// quizListTTL is deliberately short: new quizzes should show up on the list
// without a manual refresh taking long to converge.
const quizListTTL = 30 * time.Second

// QuizOverview is one catalog row with the scope descriptor already decoded
// for display.
type QuizOverview struct {
	model.QuizListEntry
	ScopeLabel string `json:"scope_label"`
}

// QuizService serves the quiz catalog and full quiz payloads, caching both
// in Redis when a client is configured. Quiz payloads are immutable once
// generated upstream, which is what makes the payload cache safe.
type QuizService struct {
	upstream *upstream.Client
	rdb      *redis.Client // nil disables caching
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewQuizService creates a QuizService. rdb may be nil.
func NewQuizService(up *upstream.Client, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *QuizService {
	return &QuizService{
		upstream: up,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// ListQuizzes returns the catalog annotated with scope labels. refresh
// bypasses the cached snapshot (user-initiated, never automatic).
func (s *QuizService) ListQuizzes(ctx context.Context, token string, refresh bool) ([]QuizOverview, error) {
	var entries []model.QuizListEntry

	if !refresh && s.cacheGet(ctx, config.CacheKey.QuizListKey(), &entries) {
		return s.annotate(entries), nil
	}

	entries, err := s.upstream.FetchQuizList(ctx, token)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, config.CacheKey.QuizListKey(), entries, quizListTTL)
	return s.annotate(entries), nil
}

// GetQuiz returns the full quiz payload, cache-aside.
func (s *QuizService) GetQuiz(ctx context.Context, token, quizID string) (*model.Quiz, error) {
	key := config.CacheKey.QuizPayloadKey(quizID)

	var quiz model.Quiz
	if s.cacheGet(ctx, key, &quiz) {
		return &quiz, nil
	}

	fetched, err := s.upstream.FetchQuiz(ctx, token, quizID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, fetched, s.cacheTTL)
	return fetched, nil
}

func (s *QuizService) annotate(entries []model.QuizListEntry) []QuizOverview {
	out := make([]QuizOverview, len(entries))
	for i, e := range entries {
		out[i] = QuizOverview{
			QuizListEntry: e,
			ScopeLabel:    scope.Label(e.Quiz.Scope),
		}
	}
	return out
}

// cacheGet loads key into dst. Cache problems are logged and treated as a
// miss; the upstream remains the source of truth.
func (s *QuizService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.rdb == nil {
		return false
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt")
		return false
	}
	return true
}

func (s *QuizService) cacheSet(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
