package middleware

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

const errorPageHTML = `<!DOCTYPE html>
<html>
<head><title>Something went wrong</title></head>
<body>
<h1>Something went wrong</h1>
<p>An unexpected error interrupted your request. Please try again.</p>
<p><small>Reference: %s</small></p>
<p><a href="/">Back to home</a></p>
</body>
</html>`

// Recovery middleware recovers from panics and logs the error
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// Get request ID for tracing
				requestID := GetRequestID(c)

				// Log the panic with stack trace
				slog.Error("panic recovered",
					"error", err,
					"request_id", requestID,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				// Render a self-contained error page, the template
				// machinery may be what just failed
				body := fmt.Sprintf(errorPageHTML, html.EscapeString(requestID))
				c.Abort()
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(body))
			}
		}()

		c.Next()
	}
}
