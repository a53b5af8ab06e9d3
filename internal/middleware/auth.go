package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/VaultSyncBR/backup-console/internal/cache"
	"github.com/VaultSyncBR/backup-console/internal/config"
)

const (
	ContextUsuarioID = "usuarioID"
	ContextTokenJTI  = "tokenJTI"
	ContextTokenExp  = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, tokens cache.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		usuarioID, ok1 := claims["sub"].(float64)
		jti, ok2 := claims["jti"].(string)
		exp, _ := claims["exp"].(float64)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Request.Context(), jti)
			if err != nil {
				// redis fora do ar não derruba o console; só perde a revogação
				log.Println("token store error:", err)
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(ContextUsuarioID, uint(usuarioID))
		c.Set(ContextTokenJTI, jti)
		c.Set(ContextTokenExp, int64(exp))

		c.Next()
	}
}
