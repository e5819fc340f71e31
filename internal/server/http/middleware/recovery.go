package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pawshope/internal/server/http/dto"
)

// Recovery converts panics into a JSON 500. The panic value is exposed only in development.
func Recovery(logger *slog.Logger, development bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		message := fmt.Sprint(recovered)
		logger.Error("panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", message),
		)
		if !development {
			message = "Something went wrong"
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.PanicResponse{
			Error:   "Internal Server Error",
			Message: message,
		})
	})
}
