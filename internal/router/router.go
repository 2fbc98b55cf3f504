package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mcqlab/quiz-portal/internal/config"
	"github.com/mcqlab/quiz-portal/internal/handler"
	"github.com/mcqlab/quiz-portal/internal/middleware"
	"github.com/mcqlab/quiz-portal/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Quiz      *handler.QuizHandler
	Attempt   *handler.AttemptHandler
	Result    *handler.ResultHandler
	Dashboard *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())
	router.Use(middleware.PassThroughAuth())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	api := router.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		// The quiz catalog is public upstream, so no token is demanded.
		api.GET("/quizzes", handlers.Quiz.ListQuizzes)

		// Everything else performs authenticated upstream calls at some
		// point of its flow.
		authed := api.Group("")
		authed.Use(middleware.RequireToken())
		{
			authed.POST("/quizzes/:quiz_id/attempts", handlers.Attempt.StartAttempt)
			authed.GET("/attempts/:attempt_id/questions", handlers.Attempt.GetQuestions)
			authed.POST("/attempts/:attempt_id/toggle", handlers.Attempt.ToggleOption)
			authed.POST("/attempts/:attempt_id/submit", handlers.Attempt.SubmitAttempt)
			authed.DELETE("/attempts/:attempt_id", handlers.Attempt.AbandonAttempt)

			authed.GET("/results/:result_id", handlers.Result.GetReview)

			authed.GET("/dashboard", handlers.Dashboard.GetMyDashboard)
			authed.GET("/dashboard/all", handlers.Dashboard.GetAllDashboard)
		}
	}

	return router
}
