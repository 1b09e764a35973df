package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/token"
	"github.com/taskdeck/taskdeck/internal/transport/http/handler"
	"github.com/taskdeck/taskdeck/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	errorLogs repository.ErrorLogRepository,
	tokens *token.Issuer,
) *gin.Engine {
	r := gin.New()

	// ErrorSink goes first so it wraps everything downstream, panics
	// included. No gin.Recovery: the sink recovers itself.
	r.Use(middleware.ErrorSink(errorLogs, logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	todos := r.Group("/api/todos", middleware.Auth(tokens))
	todos.GET("", taskHandler.List)
	todos.POST("", taskHandler.Create)
	todos.PUT("/:id", taskHandler.Update)
	todos.DELETE("/:id", taskHandler.Delete)

	return r
}
