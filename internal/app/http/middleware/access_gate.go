package middleware

import (
	"net/http"
	"strings"

	"portfolio-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// AccessGate enforces the area rules on every request: the dashboard
// area is admin-only, the auth area rejects signed-in users. Browser
// requests get the gate's redirect; API clients asking for JSON get a
// status code instead so fetch calls do not chase redirects.
func AccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		decision := access.Evaluate(c.Request.URL.Path, p)
		if decision.Action == access.ActionAllow {
			c.Next()
			return
		}

		if wantsJSON(c) {
			status := http.StatusForbidden
			if !p.Authenticated {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":    "Access denied",
				"location": decision.Location,
			})
			return
		}

		c.Redirect(http.StatusFound, decision.Location)
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") ||
		strings.Contains(c.ContentType(), "application/json")
}
