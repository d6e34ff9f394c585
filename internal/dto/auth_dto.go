package dto

import "github.com/google/uuid"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// CadastroRequest is the public self-registration payload. The profile is
// always forced to COMUM regardless of what the client sends.
type CadastroRequest struct {
	Nome     string `json:"nome"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
	Senha    string `json:"senha"    validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type JwtResponse struct {
	Token       string    `json:"token"`
	UsuarioID   uuid.UUID `json:"usuarioId"`
	TipoUsuario string    `json:"tipoUsuario"`
	Nome        string    `json:"nome"`
}
