package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// QuizPayloadKey returns the cache key for a full quiz payload. Generated
// quizzes are immutable once stored upstream, so the payload is safe to
// cache.
func (r *CacheKeyStruct) QuizPayloadKey(quizID string) string {
	return fmt.Sprintf("quiz:%s:payload", quizID)
}

// QuizListKey returns the cache key for the quiz list view.
func (r *CacheKeyStruct) QuizListKey() string {
	return "quiz:list"
}

var CacheKey = NewCacheKeyStruct()
