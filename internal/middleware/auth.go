package middleware

import (
	"net/http"
	"strings"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	PrincipalKey = "principal"
)

// JWTAuth validates the Bearer token on every protected route and resolves
// its subject (the user's e-mail) to the full account. A token whose subject
// no longer exists is rejected, so deleting a user revokes their sessions.
func JWTAuth(secret string, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
			return
		}

		email, err := token.Claims.GetSubject()
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
			return
		}

		usuario, err := usuarios.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
			return
		}

		c.Set(PrincipalKey, usuario)
		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved user is not an ADMIN.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal == nil || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acesso restrito a administradores"))
			return
		}
		c.Next()
	}
}

// Principal retrieves the authenticated user from the Gin context.
func Principal(c *gin.Context) *model.Usuario {
	principal, _ := c.MustGet(PrincipalKey).(*model.Usuario)
	return principal
}
