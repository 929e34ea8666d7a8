package requestid

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
)

const (
	Header = "X-Request-ID"

	contextKey = "requestID"
	maxLength  = 64
)

// New returns a time-ordered request ID.
func New() string {
	return uuidv7.New().String()
}

// Middleware reuses a sane incoming X-Request-ID or generates one, and echoes it back.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(Header))
		if id == "" || len(id) > maxLength || strings.ContainsAny(id, " \t\r\n") {
			id = New()
		}

		c.Set(contextKey, id)
		c.Header(Header, id)

		c.Next()
	}
}

// Get returns the request ID set by Middleware, or "" outside of it.
func Get(c *gin.Context) string {
	return c.GetString(contextKey)
}
