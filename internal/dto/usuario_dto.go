package dto

import "github.com/google/uuid"

type CriarUsuarioRequest struct {
	Nome     string `json:"nome"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
	Senha    string `json:"senha"    validate:"required,min=6"`
	// TipoUsuario is optional; anything other than "ADMIN" becomes COMUM.
	TipoUsuario string `json:"tipoUsuario" validate:"omitempty,oneof=ADMIN COMUM"`
}

type AtualizarUsuarioRequest struct {
	Nome        string `json:"nome"        validate:"required,min=2,max=255"`
	Email       string `json:"email"       validate:"required,email"`
	Telefone    string `json:"telefone"    validate:"required"`
	NovaSenha   string `json:"novaSenha"   validate:"omitempty,min=6"`
	TipoUsuario string `json:"tipoUsuario" validate:"omitempty,oneof=ADMIN COMUM"`
}

type UsuarioResponse struct {
	ID          uuid.UUID `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone"`
	TipoUsuario string    `json:"tipoUsuario"`
}

// AtualizarUsuarioResponse carries a fresh JWT alongside the updated user:
// the e-mail is the token subject, so changing it invalidates the old token.
type AtualizarUsuarioResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
	Token   string          `json:"token"`
}
