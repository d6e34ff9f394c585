package service

import (
	"time"

	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer produces the stateless HS256 bearer tokens used by the API.
// The subject is the user's e-mail; the auth middleware resolves it back to a
// full identity on every request. There is no server-side session store and
// no revocation list — logout is client-side token discard.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttlHours int) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

func (t *TokenIssuer) Issue(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          u.Email,
		"user_id":      u.ID.String(),
		"tipo_usuario": u.TipoUsuario,
		"iat":          now.Unix(),
		"exp":          now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
