package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-client/stores"
)

// StaffSessionCookie gates the staff dashboard shell. It is distinct from
// the stored bearer token: the cookie decides whether the dashboard is
// served at all, the token authenticates the API calls it then makes.
const StaffSessionCookie = "rc_staff_session"

// StaffAuth guards staff-only routes. Browsers without the session cookie
// are redirected to sign-in with the original path in a redirect query
// parameter; JSON callers get a 401 in the standard envelope.
func StaffAuth(auth *stores.AuthStore, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := c.Cookie(StaffSessionCookie); err != nil {
			if wantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"status":  false,
					"message": "Authorization required",
				})
				return
			}
			c.Redirect(http.StatusFound, signInPath+"?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		// Advisory only; the backend re-checks the token on every call.
		if claims, err := auth.Claims(); err == nil {
			c.Set("userID", claims.UserID)
			c.Set("role", claims.Role)
		}

		c.Next()
	}
}

// RequireRole rejects signed-in staff lacking the needed role. Admin
// passes every check.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Authorization required",
			})
			return
		}

		if userRole != role && userRole != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  false,
				"message": role + " access required",
			})
			return
		}

		c.Next()
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		strings.HasPrefix(c.Request.URL.Path, "/api/")
}
