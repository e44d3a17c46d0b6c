package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CICEROsandbox/oversetter/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)
			remoteIP := c.RealIP()
			userAgent := req.UserAgent()

			status := res.Status
			action := "request"
			resource := "http"
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			if status >= 500 {
				logger.Error("http request",
					"module", "http",
					"action", action,
					"resource", resource,
					"result", result,
					"method", req.Method,
					"path", req.URL.Path,
					"status_code", status,
					"duration_ms", latency.Milliseconds(),
					"remote_ip", remoteIP,
					"user_agent", userAgent,
				)
			} else if status >= 400 {
				logger.Warn("http request",
					"module", "http",
					"action", action,
					"resource", resource,
					"result", result,
					"method", req.Method,
					"path", req.URL.Path,
					"status_code", status,
					"duration_ms", latency.Milliseconds(),
					"remote_ip", remoteIP,
					"user_agent", userAgent,
				)
			} else {
				logger.Debug("http request",
					"module", "http",
					"action", action,
					"resource", resource,
					"result", result,
					"method", req.Method,
					"path", req.URL.Path,
					"status_code", status,
					"duration_ms", latency.Milliseconds(),
					"remote_ip", remoteIP,
					"user_agent", userAgent,
				)
			}

			return nil
		}
	}
}
