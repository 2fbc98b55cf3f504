// Package upstream is the HTTP client for the quiz backend that owns quiz
// content, grading and authentication. The portal forwards the caller's
// bearer token opaquely and never inspects credentials; all it consumes is
// already-authorized data.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound means the upstream reported 404 for the resource.
	ErrNotFound = errors.New("upstream: resource not found")
	// ErrUnauthorized means the upstream rejected the forwarded token.
	ErrUnauthorized = errors.New("upstream: unauthorized")
)

// Client talks to the quiz backend.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewClient creates an upstream client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http: rc,
		log:  log.With().Str("component", "upstream").Logger(),
	}
}

// FetchQuizList returns the browseable quiz catalog.
func (c *Client) FetchQuizList(ctx context.Context, token string) ([]model.QuizListEntry, error) {
	var out []model.QuizListEntry
	if err := c.get(ctx, token, "/quizzes/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchQuiz returns the full quiz payload, question options included.
func (c *Client) FetchQuiz(ctx context.Context, token, quizID string) (*model.Quiz, error) {
	var out model.Quiz
	if err := c.get(ctx, token, "/quizzes/"+quizID, &out); err != nil {
		return nil, err
	}
	if out.QuizID == "" {
		out.QuizID = quizID
	}
	return &out, nil
}

// SubmitAnswers posts a position-aligned answer payload for grading. The
// write is terminal: a submission either fully succeeds, yielding a result
// id, or leaves no trace upstream and may be retried by the user.
func (c *Client) SubmitAnswers(ctx context.Context, token, quizID string, answers [][]int) (*model.SubmitResult, error) {
	var out model.SubmitResult
	path := "/quizzes/" + quizID + "/submit"

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(model.SubmissionPayload{Answers: answers}).
		SetResult(&out).
		Post(path)
	if err := c.check(resp, err, path); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("quiz_id", quizID).
		Str("result_id", out.ResultID.String()).
		Msg("Answers submitted")

	return &out, nil
}

// FetchResult returns a single graded result joined with its quiz questions.
func (c *Client) FetchResult(ctx context.Context, token, resultID string) (*model.ResultSummary, error) {
	var out model.ResultSummary
	if err := c.get(ctx, token, "/quizzes/result/"+resultID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchMyResults returns the caller's graded attempts, newest first.
func (c *Client) FetchMyResults(ctx context.Context, token string) ([]model.ResultSummary, error) {
	var out []model.ResultSummary
	if err := c.get(ctx, token, "/quizzes/me/results", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchAllResults returns every user's graded attempts. The upstream
// enforces the admin role; the portal only relays the outcome.
func (c *Client) FetchAllResults(ctx context.Context, token string) ([]model.ResultSummary, error) {
	var out []model.ResultSummary
	if err := c.get(ctx, token, "/quizzes/result/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, token, path string, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if token != "" {
		req.SetAuthToken(token)
	}
	resp, err := req.Get(path)
	return c.check(resp, err, path)
}

func (c *Client) check(resp *resty.Response, err error, path string) error {
	if err != nil {
		return fmt.Errorf("upstream %s: %w", path, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return ErrUnauthorized
	case resp.IsError():
		c.log.Warn().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("Upstream error response")
		return fmt.Errorf("upstream %s: status %d", path, resp.StatusCode())
	}

	return nil
}
