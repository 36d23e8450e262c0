package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs them with a
// stack trace and reports them to New Relic when a transaction is present
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(err)
					}

					zapLogger.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
