package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// AuthRequired returns a Gin middleware that admits only requests carrying a
// bearer token signed with the configured secret. The subject and email
// claims issued by GenerateToken are exposed on the request context under
// ContextUserID and ContextEmail.
func AuthRequired() gin.HandlerFunc {
	// Captured once; the router is built after configuration is loaded.
	secret := []byte(os.Getenv(EnvKeyJWTSecret))

	return func(c *gin.Context) {
		if len(secret) == 0 {
			// JWT_SECRET was never set; refusing is safer than running open
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// GenerateToken signs with HMAC; anything else is forged
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JSON numbers decode as float64
				c.Set(ContextUserID, uint(sub))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
		}
		c.Next()
	}
}
