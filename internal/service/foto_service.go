package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"
	"github.com/Fenn3kk/smpp-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FotoService exposes the photo sub-resource of an occurrence.
type FotoService interface {
	ListarPorOcorrencia(ctx context.Context, principal *model.Usuario, ocorrenciaID uuid.UUID) ([]dto.FotoOcorrenciaResponse, error)
	Excluir(ctx context.Context, principal *model.Usuario, fotoID uuid.UUID) error
}

type fotoService struct {
	fotos       repository.FotoRepository
	ocorrencias repository.OcorrenciaRepository
	files       storage.FileStorage
	baseURL     string
}

func NewFotoService(
	fotos repository.FotoRepository,
	ocorrencias repository.OcorrenciaRepository,
	files storage.FileStorage,
	baseURL string,
) FotoService {
	return &fotoService{
		fotos:       fotos,
		ocorrencias: ocorrencias,
		files:       files,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (s *fotoService) ListarPorOcorrencia(ctx context.Context, principal *model.Usuario, ocorrenciaID uuid.UUID) ([]dto.FotoOcorrenciaResponse, error) {
	if _, err := s.ocorrenciaDoUsuario(ctx, principal, ocorrenciaID); err != nil {
		return nil, err
	}
	fotos, err := s.fotos.ListByOcorrencia(ctx, ocorrenciaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FotoOcorrenciaResponse, len(fotos))
	for i, f := range fotos {
		out[i] = dto.FotoOcorrenciaResponse{
			ID:   f.ID,
			Nome: f.Nome,
			URL:  s.baseURL + "/uploads/" + f.Caminho,
		}
	}
	return out, nil
}

func (s *fotoService) Excluir(ctx context.Context, principal *model.Usuario, fotoID uuid.UUID) error {
	foto, err := s.fotos.FindByID(ctx, fotoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Foto não encontrada")
		}
		return err
	}
	if _, err := s.ocorrenciaDoUsuario(ctx, principal, foto.OcorrenciaID); err != nil {
		return err
	}

	// File first, best-effort; the row delete is what matters.
	if err := s.files.Delete(foto.Caminho); err != nil {
		log.Warn().Err(err).Str("caminho", foto.Caminho).Msg("falha ao remover arquivo de foto")
	}
	return s.fotos.Delete(ctx, fotoID)
}

// ocorrenciaDoUsuario loads the occurrence and enforces ownership through its
// property.
func (s *fotoService) ocorrenciaDoUsuario(ctx context.Context, principal *model.Usuario, ocorrenciaID uuid.UUID) (*model.Ocorrencia, error) {
	o, err := s.ocorrencias.FindByID(ctx, ocorrenciaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Ocorrência não encontrada")
		}
		return nil, err
	}
	if !CanAccess(principal, o.Propriedade.UsuarioID) {
		return nil, apierror.Forbidden("Acesso negado")
	}
	return o, nil
}
