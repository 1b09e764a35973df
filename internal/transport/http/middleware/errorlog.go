package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// ErrorSink is the outermost middleware: it recovers panics and drains
// errors attached via c.Error, persists each as an error-log record,
// and answers a generic 500 if nothing was written yet. Clients never
// see stack traces or internal messages.
func ErrorSink(repo repository.ErrorLogRepository, logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "error_sink")

	record := func(c *gin.Context, message, stack string) {
		entry := &domain.ErrorLog{
			Message: message,
			Stack:   stack,
			Route:   c.Request.URL.Path,
			Method:  c.Request.Method,
		}
		// Persist even if the client has gone away mid-request.
		ctx := context.WithoutCancel(c.Request.Context())
		if err := repo.Create(ctx, entry); err != nil {
			log.ErrorContext(ctx, "error logging failed", "error", err)
		}
	}

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				msg := fmt.Sprintf("panic: %v", rec)
				log.ErrorContext(c.Request.Context(), "request panicked",
					"panic", rec, "route", c.Request.URL.Path)
				record(c, msg, string(debug.Stack()))
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError,
						gin.H{"error": "Internal server error"})
				}
			}
		}()

		c.Next()

		for _, ginErr := range c.Errors {
			record(c, ginErr.Error(), "")
		}
		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
