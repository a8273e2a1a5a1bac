package middleware

import (
	"log/slog"
	"net/http"

	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the body for handlers that recorded an error on the
// context without writing a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		last := c.Errors.Last().Err
		slog.Error("unhandled error",
			"route", c.FullPath(),
			"request_id", GetRequestID(c),
			"error", last,
			"stack", errs.ExtractStackLines(last, 12))
		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(c, http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
	}
}

// CustomRecovery turns a panic into the standard 500 body. It must be the
// outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"route", c.FullPath(),
					"request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
