package middleware

import (
	"fmt"
	"strings"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const principalKey = "principal"

// Principal resolves the caller's identity from the Bearer token and
// stores it on the context. Requests without a valid token continue as
// anonymous; it is the gate's job to decide what anonymous may reach.
// The admin capability is looked up per request and never read from the
// token, so a demotion takes effect on the next request.
func Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := resolvePrincipal(c)
		c.Set(principalKey, principal)
		if principal.Authenticated {
			c.Set("user_id", principal.UserID)
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal set by the Principal middleware,
// or an anonymous one when the middleware did not run.
func PrincipalFrom(c *gin.Context) access.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Anonymous()
}

func resolvePrincipal(c *gin.Context) access.Principal {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return access.Anonymous()
	}

	jwtKey := []byte(config.JWT_SECRET)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return access.Anonymous()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Anonymous()
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return access.Anonymous()
	}

	isAdmin, err := access.IsAdmin(database.DB, userID)
	if err != nil {
		// Fail closed: an unreachable capability check means no
		// admin access, not a guess.
		log.Warn().Err(err).Str("user_id", userID).Msg("admin lookup failed")
		isAdmin = false
	}

	return access.Authenticated(userID, isAdmin)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return strings.TrimSpace(tokenString)
		}
		return ""
	}

	// Browser navigation carries the session in a cookie instead.
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie
	}
	return ""
}
