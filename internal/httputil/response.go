// Package httputil holds the error envelope shared by handlers and
// middleware.
package httputil

import "github.com/gin-gonic/gin"

// RespondError aborts the request with the standard error body
// {code, message, request_id}, echoing the request ID the request ID
// middleware stored on the context when present.
func RespondError(c *gin.Context, status int, code, message string) {
	resp := map[string]string{
		"code":    code,
		"message": message,
	}

	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok && s != "" {
			resp["request_id"] = s
		}
	}

	c.AbortWithStatusJSON(status, resp)
}
