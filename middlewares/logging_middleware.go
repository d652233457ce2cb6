package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

// custom echo middleware used for request logging
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			if err == nil && !isProbe(ctx.Request().URL.Path) {
				// start links carry the invite token in the path, only the route pattern is logged
				attrs := []any{"method", ctx.Request().Method, "route", ctx.Path(), "status", ctx.Response().Status, "duration", time.Since(now)}
				if sc := trace.SpanContextFromContext(ctx.Request().Context()); sc.HasTraceID() {
					attrs = append(attrs, "traceId", sc.TraceID().String())
				}
				slog.Info("handled request", attrs...)
			}
			return err
		}
	}
}

func isProbe(path string) bool {
	return path == "/api/v1/health/" || strings.HasPrefix(path, "/metrics")
}
