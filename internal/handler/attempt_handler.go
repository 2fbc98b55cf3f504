package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcqlab/quiz-portal/internal/middleware"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/response"
	"github.com/mcqlab/quiz-portal/internal/service"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/mcqlab/quiz-portal/internal/validator"
)

// AttemptHandler drives the quiz-taking flow: start, page, toggle, submit,
// abandon.
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// StartAttempt godoc
// POST /api/v1/quizzes/:quiz_id/attempts
// Loads the quiz and opens a fresh attempt session over it.
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	quizID := c.Param("quiz_id")
	if quizID == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	view, err := h.attemptService.Start(c.Request.Context(), middleware.Token(c), quizID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrQuizNotFound)
			return
		}
		failUpstream(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// GetQuestions godoc
// GET /api/v1/attempts/:attempt_id/questions?page=N
// Returns one page of questions with the current selections overlaid.
func (h *AttemptHandler) GetQuestions(c *gin.Context) {
	attemptID, ok := parseAttemptID(c)
	if !ok {
		return
	}

	page, err := h.attemptService.QuestionsPage(attemptID, queryInt(c, "page", 1))
	if err != nil {
		failAttempt(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, page, &response.Pagination{
		Page:       page.Page,
		PerPage:    len(page.Questions),
		TotalPages: page.TotalPages,
	})
}

// ToggleOption godoc
// POST /api/v1/attempts/:attempt_id/toggle
// Flips one option of one question and returns the updated selection.
func (h *AttemptHandler) ToggleOption(c *gin.Context) {
	attemptID, ok := parseAttemptID(c)
	if !ok {
		return
	}

	var req model.ToggleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	selected, err := h.attemptService.Toggle(attemptID, req.QuestionIndex, req.OptionIndex)
	if err != nil {
		failAttempt(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"question_index": req.QuestionIndex,
		"selected":       selected,
	})
}

// SubmitAttempt godoc
// POST /api/v1/attempts/:attempt_id/submit
// Serializes the attempt and posts it for grading. On failure the attempt
// state is preserved so the user can retry.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	attemptID, ok := parseAttemptID(c)
	if !ok {
		return
	}

	result, err := h.attemptService.Submit(c.Request.Context(), middleware.Token(c), attemptID)
	if err != nil {
		failAttempt(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// AbandonAttempt godoc
// DELETE /api/v1/attempts/:attempt_id
// Discards the attempt without submitting.
func (h *AttemptHandler) AbandonAttempt(c *gin.Context) {
	attemptID, ok := parseAttemptID(c)
	if !ok {
		return
	}

	h.attemptService.Abandon(attemptID)
	response.Success(c, http.StatusOK, gin.H{"abandoned": true})
}

func parseAttemptID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func failAttempt(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttemptNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
	case errors.Is(err, service.ErrIndexOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrIndexOutOfRange)
	default:
		failUpstream(c, err)
	}
}

// queryInt reads an integer query parameter with a fallback.
func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
