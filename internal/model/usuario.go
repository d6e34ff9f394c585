package model

import (
	"time"

	"github.com/google/uuid"
)

// Perfis de usuário. COMUM users only see their own records and properties;
// ADMIN acts on everything.
const (
	TipoAdmin = "ADMIN"
	TipoComum = "COMUM"
)

// Usuario stores system users with role-based access.
// Email is the login identifier and the JWT subject.
type Usuario struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome     string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Telefone string    `gorm:"not null"`
	// Senha holds only the bcrypt hash, never the plaintext.
	Senha       string `gorm:"not null"`
	TipoUsuario string `gorm:"type:varchar(10);not null;default:'COMUM'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the user carries the ADMIN profile.
func (u *Usuario) IsAdmin() bool { return u.TipoUsuario == TipoAdmin }
