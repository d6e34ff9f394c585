package service

import (
	"context"
	"errors"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService interface {
	// ListarTodos is admin-only (enforced at the route).
	ListarTodos(ctx context.Context) ([]dto.UsuarioResponse, error)
	BuscarPorID(ctx context.Context, principal *model.Usuario, id uuid.UUID) (*dto.UsuarioResponse, error)
	// Criar is the admin-initiated variant of registration: the profile is
	// selectable.
	Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.AtualizarUsuarioResponse, error)
	Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error
}

type usuarioService struct {
	repo   repository.UsuarioRepository
	tokens *TokenIssuer
}

func NewUsuarioService(repo repository.UsuarioRepository, tokens *TokenIssuer) UsuarioService {
	return &usuarioService{repo: repo, tokens: tokens}
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:          u.ID,
		Nome:        u.Nome,
		Email:       u.Email,
		Telefone:    u.Telefone,
		TipoUsuario: u.TipoUsuario,
	}
}

func (s *usuarioService) ListarTodos(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		out[i] = usuarioToResponse(&users[i])
	}
	return out, nil
}

func (s *usuarioService) BuscarPorID(ctx context.Context, principal *model.Usuario, id uuid.UUID) (*dto.UsuarioResponse, error) {
	if !CanAccess(principal, id) {
		return nil, apierror.Forbidden("Acesso negado")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuário não encontrado")
		}
		return nil, err
	}
	resp := usuarioToResponse(u)
	return &resp, nil
}

func (s *usuarioService) Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("O e-mail informado já está em uso")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}
	tipo := model.TipoComum
	if req.TipoUsuario == model.TipoAdmin {
		tipo = model.TipoAdmin
	}
	u := &model.Usuario{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Senha:       string(hash),
		TipoUsuario: tipo,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("O e-mail informado já está em uso")
		}
		return nil, err
	}
	resp := usuarioToResponse(u)
	return &resp, nil
}

func (s *usuarioService) Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.AtualizarUsuarioResponse, error) {
	if !CanAccess(principal, id) {
		return nil, apierror.Forbidden("Acesso negado")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuário não encontrado")
		}
		return nil, err
	}

	if req.Email != u.Email {
		if existente, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existente.ID != id {
			return nil, apierror.Conflict("O e-mail informado já está em uso")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	u.Nome = req.Nome
	u.Email = req.Email
	u.Telefone = req.Telefone
	if req.NovaSenha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NovaSenha), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.Senha = string(hash)
	}
	// Only an admin may change the profile.
	if principal.IsAdmin() && req.TipoUsuario != "" {
		u.TipoUsuario = req.TipoUsuario
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("O e-mail informado já está em uso")
		}
		return nil, err
	}

	// The e-mail is the token subject; hand back a token bound to the
	// updated identity so the client keeps working after an e-mail change.
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &dto.AtualizarUsuarioResponse{Usuario: usuarioToResponse(u), Token: token}, nil
}

func (s *usuarioService) Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error {
	if !CanAccess(principal, id) {
		return apierror.Forbidden("Acesso negado")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Usuário não encontrado")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
