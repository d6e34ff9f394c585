package service

import (
	"context"
	"errors"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.JwtResponse, error)
	// Cadastro is public self-registration; the profile is forced to COMUM.
	Cadastro(ctx context.Context, req dto.CadastroRequest) error
}

type authService struct {
	usuarios repository.UsuarioRepository
	tokens   *TokenIssuer
}

func NewAuthService(usuarios repository.UsuarioRepository, tokens *TokenIssuer) AuthService {
	return &authService{usuarios: usuarios, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.JwtResponse, error) {
	user, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same message for unknown e-mail and wrong password.
		return nil, apierror.Unauthorized("Credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Senha)); err != nil {
		return nil, apierror.Unauthorized("Credenciais inválidas")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.JwtResponse{
		Token:       token,
		UsuarioID:   user.ID,
		TipoUsuario: user.TipoUsuario,
		Nome:        user.Nome,
	}, nil
}

func (s *authService) Cadastro(ctx context.Context, req dto.CadastroRequest) error {
	if _, err := s.usuarios.FindByEmail(ctx, req.Email); err == nil {
		return apierror.Conflict("O e-mail informado já está em uso")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return err
	}
	novo := &model.Usuario{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Senha:       string(hash),
		TipoUsuario: model.TipoComum,
	}
	if err := s.usuarios.Create(ctx, novo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.Conflict("O e-mail informado já está em uso")
		}
		return err
	}
	return nil
}
