package service

import (
	"context"
	"errors"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"
	"github.com/Fenn3kk/smpp-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PropriedadeService interface {
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PropriedadeResponse, error)
	// ListarTodas feeds the reporting screen and ignores ownership.
	ListarTodas(ctx context.Context) ([]dto.PropriedadeResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.PropriedadeResponse, error)
	Criar(ctx context.Context, principal *model.Usuario, req dto.PropriedadeRequest) (*dto.PropriedadeResponse, error)
	Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.PropriedadeRequest) (*dto.PropriedadeResponse, error)
	Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error
}

type propriedadeService struct {
	repo             repository.PropriedadeRepository
	ocorrencias      repository.OcorrenciaRepository
	cidades          repository.LookupRepository[model.Cidade]
	atividades       repository.LookupRepository[model.Atividade]
	vulnerabilidades repository.LookupRepository[model.Vulnerabilidade]
	files            storage.FileStorage
}

func NewPropriedadeService(
	repo repository.PropriedadeRepository,
	ocorrencias repository.OcorrenciaRepository,
	cidades repository.LookupRepository[model.Cidade],
	atividades repository.LookupRepository[model.Atividade],
	vulnerabilidades repository.LookupRepository[model.Vulnerabilidade],
	files storage.FileStorage,
) PropriedadeService {
	return &propriedadeService{
		repo:             repo,
		ocorrencias:      ocorrencias,
		cidades:          cidades,
		atividades:       atividades,
		vulnerabilidades: vulnerabilidades,
		files:            files,
	}
}

func propriedadeToResponse(p *model.Propriedade) dto.PropriedadeResponse {
	atividades := make([]dto.LookupResponse, len(p.Atividades))
	for i, a := range p.Atividades {
		atividades[i] = lookupToResponse(a)
	}
	vulnerabilidades := make([]dto.LookupResponse, len(p.Vulnerabilidades))
	for i, v := range p.Vulnerabilidades {
		vulnerabilidades[i] = lookupToResponse(v)
	}
	return dto.PropriedadeResponse{
		ID:                   p.ID,
		Nome:                 p.Nome,
		Cidade:               lookupToResponse(p.Cidade),
		Coordenadas:          p.Coordenadas,
		Proprietario:         p.Proprietario,
		TelefoneProprietario: p.TelefoneProprietario,
		Atividades:           atividades,
		Vulnerabilidades:     vulnerabilidades,
		Usuario:              dto.SimpleUserResponse{ID: p.Usuario.ID, Nome: p.Usuario.Nome},
	}
}

func (s *propriedadeService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PropriedadeResponse, error) {
	props, err := s.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return mapPropriedades(props), nil
}

func (s *propriedadeService) ListarTodas(ctx context.Context) ([]dto.PropriedadeResponse, error) {
	props, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapPropriedades(props), nil
}

func mapPropriedades(props []model.Propriedade) []dto.PropriedadeResponse {
	out := make([]dto.PropriedadeResponse, len(props))
	for i := range props {
		out[i] = propriedadeToResponse(&props[i])
	}
	return out
}

func (s *propriedadeService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.PropriedadeResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Propriedade não encontrada")
		}
		return nil, err
	}
	resp := propriedadeToResponse(p)
	return &resp, nil
}

func (s *propriedadeService) Criar(ctx context.Context, principal *model.Usuario, req dto.PropriedadeRequest) (*dto.PropriedadeResponse, error) {
	cidade, atividades, vulnerabilidades, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	p := &model.Propriedade{
		Nome:                 req.Nome,
		CidadeID:             cidade.ID,
		Coordenadas:          req.Coordenadas,
		Proprietario:         req.Proprietario,
		TelefoneProprietario: req.TelefoneProprietario,
		UsuarioID:            principal.ID,
		Atividades:           atividades,
		Vulnerabilidades:     vulnerabilidades,
	}
	preencherProprietario(p, principal)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Cidade = *cidade
	p.Usuario = *principal
	resp := propriedadeToResponse(p)
	return &resp, nil
}

func (s *propriedadeService) Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.PropriedadeRequest) (*dto.PropriedadeResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Propriedade não encontrada")
		}
		return nil, err
	}
	if !CanAccess(principal, p.UsuarioID) {
		return nil, apierror.Forbidden("Acesso negado")
	}

	cidade, atividades, vulnerabilidades, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	p.Nome = req.Nome
	p.CidadeID = cidade.ID
	p.Cidade = *cidade
	p.Coordenadas = req.Coordenadas
	p.Proprietario = req.Proprietario
	p.TelefoneProprietario = req.TelefoneProprietario
	p.Atividades = atividades
	p.Vulnerabilidades = vulnerabilidades
	preencherProprietario(p, principal)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := propriedadeToResponse(p)
	return &resp, nil
}

func (s *propriedadeService) Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Propriedade não encontrada")
		}
		return err
	}
	if !CanAccess(principal, p.UsuarioID) {
		return apierror.Forbidden("Acesso negado")
	}

	// Best-effort cleanup of the photo files behind this property's
	// occurrences. The row delete below cascades over the DB side; a file
	// that refuses to go is logged and left behind.
	ocorrencias, err := s.ocorrencias.ListByPropriedade(ctx, id)
	if err == nil {
		for _, o := range ocorrencias {
			for _, foto := range o.Fotos {
				if err := s.files.Delete(foto.Caminho); err != nil {
					log.Warn().Err(err).Str("caminho", foto.Caminho).
						Msg("falha ao remover arquivo de foto na exclusão da propriedade")
				}
			}
		}
	}

	return s.repo.Delete(ctx, id)
}

// preencherProprietario defaults the owner-of-record contact to the acting
// user when both fields arrive blank.
func preencherProprietario(p *model.Propriedade, principal *model.Usuario) {
	if p.Proprietario == "" && p.TelefoneProprietario == "" {
		p.Proprietario = principal.Nome
		p.TelefoneProprietario = principal.Telefone
	}
}

func (s *propriedadeService) resolverReferencias(ctx context.Context, req dto.PropriedadeRequest) (*model.Cidade, []model.Atividade, []model.Vulnerabilidade, error) {
	cidade, err := s.cidades.FindByID(ctx, req.CidadeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apierror.ReferenceNotFound("Cidade não encontrada")
		}
		return nil, nil, nil, err
	}

	atividades := make([]model.Atividade, 0, len(req.Atividades))
	for _, id := range req.Atividades {
		a, err := s.atividades.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, nil, apierror.ReferenceNotFound("Atividade não encontrada: " + id.String())
			}
			return nil, nil, nil, err
		}
		atividades = append(atividades, *a)
	}

	vulnerabilidades := make([]model.Vulnerabilidade, 0, len(req.Vulnerabilidades))
	for _, id := range req.Vulnerabilidades {
		v, err := s.vulnerabilidades.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, nil, apierror.ReferenceNotFound("Vulnerabilidade não encontrada: " + id.String())
			}
			return nil, nil, nil, err
		}
		vulnerabilidades = append(vulnerabilidades, *v)
	}

	return cidade, atividades, vulnerabilidades, nil
}
