// README: Auth middleware (no-op until real identity lands).
package middleware

import "github.com/gin-gonic/gin"

// TODO: verify a bearer token once the mobile client ships sign-in.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
