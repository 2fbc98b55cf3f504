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

// ResultHandler serves the reconciled result review.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetReview godoc
// GET /api/v1/results/:result_id?page=N
// Returns one page of the reconciled per-question review for a result.
func (h *ResultHandler) GetReview(c *gin.Context) {
	resultID := c.Param("result_id")
	if resultID == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, err := h.resultService.Review(c.Request.Context(), middleware.Token(c), resultID, queryInt(c, "page", 1))
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrResultNotFound)
			return
		}
		failUpstream(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, page, &response.Pagination{
		Page:       page.Page,
		PerPage:    len(page.Rows),
		TotalItems: page.Total,
		TotalPages: page.TotalPages,
	})
}
