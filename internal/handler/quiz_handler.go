package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcqlab/quiz-portal/internal/middleware"
	"github.com/mcqlab/quiz-portal/internal/response"
	"github.com/mcqlab/quiz-portal/internal/service"
	"github.com/mcqlab/quiz-portal/internal/upstream"
)

// QuizHandler serves the browseable quiz catalog.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListQuizzes godoc
// GET /api/v1/quizzes
// Returns the quiz catalog with decoded scope labels. ?refresh=1 bypasses
// the cached snapshot.
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	refresh := c.Query("refresh") == "1"

	list, err := h.quizService.ListQuizzes(c.Request.Context(), middleware.Token(c), refresh)
	if err != nil {
		failUpstream(c, err)
		return
	}

	if list == nil {
		list = []service.QuizOverview{}
	}

	response.Success(c, http.StatusOK, gin.H{"quizzes": list})
}

// failUpstream maps upstream client errors onto the response taxonomy.
// Fetch failures are never fatal: the client keeps its previous view and
// the user retries by hand.
func failUpstream(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, upstream.ErrUnauthorized):
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
	default:
		response.Fail(c, http.StatusBadGateway, response.ErrUpstream)
	}
}
