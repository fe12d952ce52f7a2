package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are never sent to PostHog.
var untrackedPrefixes = []string{"/health", "/swagger"}

// EventCapturer receives analytics events.
type EventCapturer interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

var _ EventCapturer = (*utils.PosthogClientWrapper)(nil)

// PosthogMiddleware tracks successful authenticated API calls, one event per route.
func PosthogMiddleware(capturer EventCapturer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if capturer == nil || !capturer.IsInitialized() || untracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := RouteEventName(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		// Window parameters show which dashboard ranges are actually used.
		for _, key := range []string{"range", "fromDate", "toDate"} {
			if v := c.Query(key); v != "" {
				props[key] = v
			}
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		capturer.Enqueue(userID, event, props)
	}
}

// RouteEventName turns "GET /api/v1/dashboard/metrics" into "get_dashboard_metrics".
// Path parameters are dropped so every record ID maps to one event.
func RouteEventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.Trim(fullPath, "/"), "/") {
		switch {
		case seg == "", seg == "api", seg == "v1", strings.HasPrefix(seg, ":"), strings.HasPrefix(seg, "*"):
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, ".", "_"))
	}
	return strings.Join(parts, "_")
}

func untracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
