package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcqlab/quiz-portal/internal/middleware"
	"github.com/mcqlab/quiz-portal/internal/response"
	"github.com/mcqlab/quiz-portal/internal/service"
)

// DashboardHandler serves the score-bucket and recent-attempt aggregates.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMyDashboard godoc
// GET /api/v1/dashboard
// Aggregates the caller's own graded attempts.
func (h *DashboardHandler) GetMyDashboard(c *gin.Context) {
	data, err := h.dashboardService.MyDashboard(c.Request.Context(), middleware.Token(c))
	if err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// GetAllDashboard godoc
// GET /api/v1/dashboard/all
// Aggregates all users' attempts. The upstream backend enforces the admin
// role; its rejection is relayed as-is.
func (h *DashboardHandler) GetAllDashboard(c *gin.Context) {
	data, err := h.dashboardService.AllDashboard(c.Request.Context(), middleware.Token(c))
	if err != nil {
		failUpstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}
