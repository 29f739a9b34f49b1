package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware.
const (
	CtxAccountID = "accountId"
	CtxEmail     = "email"
	CtxRole      = "role"
	CtxKind      = "kind"
)

func CurrentAccountID(c *gin.Context) uint {
	v, _ := c.Get(CtxAccountID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentKind(c *gin.Context) string {
	if v, ok := c.Get(CtxKind); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get(CtxEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
