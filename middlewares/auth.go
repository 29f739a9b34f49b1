package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PremPrakashCodes/preplate/utils"
)

// AuthMiddleware verifies the bearer token (or the token cookie the login
// endpoint sets) and stashes the identity in the context. Missing or invalid
// token rejects before any resource lookup. When kinds are given, a valid
// token of another kind gets 403.
func AuthMiddleware(secret string, kinds ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(utils.CtxAccountID, claims.AccountID)
		c.Set(utils.CtxEmail, claims.Email)
		c.Set(utils.CtxRole, claims.Role)
		c.Set(utils.CtxKind, claims.Kind)

		if len(kinds) > 0 {
			allowed := false
			for _, k := range kinds {
				if claims.Kind == k {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
