package server

import (
	"strings"
	"time"

	"auction-web/internal/backend"
	"auction-web/internal/repository"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie names the page session cookie
	SessionCookie = "AUCTION_WEB_SID"

	ctxKeyRequestID = "request_id"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(ctxKeyRequestID),
	})
}

// RequestIDMiddleware keeps the caller's X-Request-ID or makes one, and
// passes it on to every backend call of the request.
func RequestIDMiddleware(c *gin.Context) {
	rid := c.GetHeader(backend.HeaderRequestID)
	if rid == "" {
		rid = utils.GenerateID()
	}

	c.Set(ctxKeyRequestID, rid)
	c.Writer.Header().Set(backend.HeaderRequestID, rid)
	c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), rid))

	c.Next()
}

// PageSessionMiddleware makes sure the browser has a page session id
func PageSessionMiddleware(c *gin.Context) {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || !utils.IsID(sid) {
		sid = utils.GenerateID()
		c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
	}
	c.Set(helpers.KeySessionID, sid)

	c.Next()
}

// ForwardCookiesMiddleware hands the browser's backend cookies (its login
// session) and the page session's cookie jar to the backend client. The page
// session cookie stays here. Runs after PageSessionMiddleware.
func ForwardCookiesMiddleware(store repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var parts []string
		for _, ck := range c.Request.Cookies() {
			if ck.Name == SessionCookie {
				continue
			}
			parts = append(parts, ck.Name+"="+ck.Value)
		}
		if len(parts) > 0 {
			ctx = backend.WithCookie(ctx, strings.Join(parts, "; "))
		}
		if jar := store.Jar(helpers.SessionID(c)); jar != nil {
			ctx = backend.WithJar(ctx, jar)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
