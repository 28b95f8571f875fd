package middleware

import (
	"fmt"
	"net/http"

	"alumninet/internal/httputil"
	"alumninet/pkg/errors"
	"alumninet/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware turns handler errors into exactly one envelope
// response. AppErrors keep their status and message; anything else degrades
// to a 500 whose message names the underlying cause for operators, with no
// stack trace leaking to the client. Log entries carry the user and trace
// IDs stored in the request context.
func ErrorHandlerMiddleware(ctxLogger *logger.ContextLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		log := ctxLogger.WithContext(c.Request.Context()).Sugar()

		appErr := errors.GetAppError(err)
		if appErr != nil {
			log.Warnw("request failed",
				"code", appErr.Code,
				"message", appErr.Message,
				"status", appErr.HTTPStatus,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)

			if appErr.Code == errors.ErrCodeInvalidInput && len(appErr.Fields) > 0 {
				httputil.Respond(c, appErr.HTTPStatus, appErr.Message, appErr.Fields)
				return
			}
			httputil.RespondMessage(c, appErr.HTTPStatus, appErr.Message)
			return
		}

		log.Errorw("unhandled error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)

		httputil.RespondMessage(c, http.StatusInternalServerError,
			fmt.Sprintf("Internal server error: %s", err.Error()))
	}
}

// RecoveryMiddleware recovers from panics and returns the 500 envelope
func RecoveryMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				httputil.Abort(c, http.StatusInternalServerError, "Internal server error")
			}
		}()

		c.Next()
	}
}
