package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/raditp/dompet/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs the stack trace
func PanicRecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					logger.WithFields(logrus.Fields{
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"stack":  string(debug.Stack()),
					}).WithError(err).Error("Panic recovered")

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
