package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"
	"github.com/Fenn3kk/smpp-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const dataLayout = "2006-01-02"

// ArquivoUpload is one uploaded photo as handed over by the HTTP layer.
type ArquivoUpload struct {
	Nome     string
	Conteudo io.Reader
}

// OcorrenciaService coordinates the Ocorrencia aggregate: relational rows and
// the photo files behind them. Each operation keeps the documented order
// (reference resolution → file writes → DB commit, or file deletes → DB
// commit): the order decides which failure leaves which artifact orphaned.
// The database is authoritative; leftover files are a logged anomaly.
type OcorrenciaService interface {
	ListarPorPropriedade(ctx context.Context, principal *model.Usuario, propriedadeID uuid.UUID) ([]dto.OcorrenciaResponse, error)
	Criar(ctx context.Context, principal *model.Usuario, req dto.CriarOcorrenciaRequest, fotos []ArquivoUpload) (*dto.OcorrenciaResponse, error)
	Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.AtualizarOcorrenciaRequest, novasFotos []ArquivoUpload) (*dto.OcorrenciaResponse, error)
	Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error
}

type ocorrenciaService struct {
	repo         repository.OcorrenciaRepository
	propriedades repository.PropriedadeRepository
	tipos        repository.LookupRepository[model.TipoOcorrencia]
	incidentes   repository.LookupRepository[model.Incidente]
	files        storage.FileStorage
	baseURL      string
}

func NewOcorrenciaService(
	repo repository.OcorrenciaRepository,
	propriedades repository.PropriedadeRepository,
	tipos repository.LookupRepository[model.TipoOcorrencia],
	incidentes repository.LookupRepository[model.Incidente],
	files storage.FileStorage,
	baseURL string,
) OcorrenciaService {
	return &ocorrenciaService{
		repo:         repo,
		propriedades: propriedades,
		tipos:        tipos,
		incidentes:   incidentes,
		files:        files,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (s *ocorrenciaService) toResponse(o *model.Ocorrencia) dto.OcorrenciaResponse {
	incidentes := make([]dto.LookupResponse, len(o.Incidentes))
	for i, inc := range o.Incidentes {
		incidentes[i] = lookupToResponse(inc)
	}
	fotos := make([]dto.FotoOcorrenciaResponse, len(o.Fotos))
	for i, f := range o.Fotos {
		fotos[i] = dto.FotoOcorrenciaResponse{
			ID:   f.ID,
			Nome: f.Nome,
			URL:  s.baseURL + "/uploads/" + f.Caminho,
		}
	}
	return dto.OcorrenciaResponse{
		ID:             o.ID,
		Data:           o.Data.Format(dataLayout),
		Descricao:      o.Descricao,
		TipoOcorrencia: lookupToResponse(o.TipoOcorrencia),
		Incidentes:     incidentes,
		Fotos:          fotos,
	}
}

func (s *ocorrenciaService) ListarPorPropriedade(ctx context.Context, principal *model.Usuario, propriedadeID uuid.UUID) ([]dto.OcorrenciaResponse, error) {
	if _, err := s.propriedadeDoUsuario(ctx, principal, propriedadeID); err != nil {
		return nil, err
	}
	ocorrencias, err := s.repo.ListByPropriedade(ctx, propriedadeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OcorrenciaResponse, len(ocorrencias))
	for i := range ocorrencias {
		out[i] = s.toResponse(&ocorrencias[i])
	}
	return out, nil
}

func (s *ocorrenciaService) Criar(ctx context.Context, principal *model.Usuario, req dto.CriarOcorrenciaRequest, fotos []ArquivoUpload) (*dto.OcorrenciaResponse, error) {
	propriedade, err := s.propriedadeDoUsuario(ctx, principal, req.PropriedadeID)
	if err != nil {
		// Creating against a missing property is a reference failure, not a
		// missing primary entity.
		if apierror.IsKind(err, apierror.KindNotFound) {
			return nil, apierror.ReferenceNotFound("Propriedade não encontrada")
		}
		return nil, err
	}

	tipo, incidentes, err := s.resolverReferencias(ctx, req.TipoOcorrenciaID, req.Incidentes)
	if err != nil {
		return nil, err
	}
	data, err := parseData(req.Data)
	if err != nil {
		return nil, err
	}

	o := &model.Ocorrencia{
		Data:             data,
		Descricao:        strings.TrimSpace(req.Descricao),
		TipoOcorrenciaID: tipo.ID,
		PropriedadeID:    propriedade.ID,
		Incidentes:       incidentes,
	}
	if o.Descricao == "" {
		return nil, apierror.Validation("A descrição não pode ser vazia")
	}

	// Write the files before touching the database. If any write fails the
	// whole create aborts and the files stored so far are removed
	// best-effort; if the DB insert then fails the same cleanup applies.
	// Either way no committed row ever references a file that was not
	// written.
	gravadas, err := s.armazenarFotos(fotos)
	if err != nil {
		return nil, err
	}
	o.Fotos = gravadas

	if err := s.repo.Create(ctx, o); err != nil {
		s.removerArquivos(gravadas)
		return nil, err
	}

	o.TipoOcorrencia = *tipo
	resp := s.toResponse(o)
	return &resp, nil
}

func (s *ocorrenciaService) Atualizar(ctx context.Context, principal *model.Usuario, id uuid.UUID, req dto.AtualizarOcorrenciaRequest, novasFotos []ArquivoUpload) (*dto.OcorrenciaResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Ocorrência não encontrada")
		}
		return nil, err
	}
	if !CanAccess(principal, o.Propriedade.UsuarioID) {
		return nil, apierror.Forbidden("Acesso negado")
	}

	tipo, incidentes, err := s.resolverReferencias(ctx, req.TipoOcorrenciaID, req.Incidentes)
	if err != nil {
		return nil, err
	}
	data, err := parseData(req.Data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Descricao) == "" {
		return nil, apierror.Validation("A descrição não pode ser vazia")
	}

	// Photos to remove must belong to this occurrence; a stray id would
	// otherwise delete another occurrence's photo.
	remover := make([]model.FotoOcorrencia, 0, len(req.FotosParaExcluir))
	for _, fotoID := range req.FotosParaExcluir {
		foto, ok := fotoPorID(o.Fotos, fotoID)
		if !ok {
			return nil, apierror.ReferenceNotFound("Foto não encontrada nesta ocorrência: " + fotoID.String())
		}
		remover = append(remover, foto)
	}

	// New files first: a storage failure aborts before anything is deleted.
	gravadas, err := s.armazenarFotos(novasFotos)
	if err != nil {
		return nil, err
	}

	// Old files next, best-effort: a failed file removal never blocks the
	// row delete (the DB is authoritative, the leftover file is logged).
	for _, foto := range remover {
		if err := s.files.Delete(foto.Caminho); err != nil {
			log.Warn().Err(err).Str("caminho", foto.Caminho).
				Msg("falha ao remover arquivo de foto na atualização da ocorrência")
		}
	}

	o.Data = data
	o.Descricao = strings.TrimSpace(req.Descricao)
	o.TipoOcorrenciaID = tipo.ID
	o.TipoOcorrencia = *tipo
	o.Incidentes = incidentes

	removerIDs := make([]uuid.UUID, len(remover))
	for i, f := range remover {
		removerIDs[i] = f.ID
	}
	if err := s.repo.Update(ctx, o, removerIDs, gravadas); err != nil {
		s.removerArquivos(gravadas)
		return nil, err
	}

	atualizada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(atualizada)
	return &resp, nil
}

func (s *ocorrenciaService) Excluir(ctx context.Context, principal *model.Usuario, id uuid.UUID) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Ocorrência não encontrada")
		}
		return err
	}
	if !CanAccess(principal, o.Propriedade.UsuarioID) {
		return apierror.Forbidden("Acesso negado")
	}

	// Files first, best-effort: an individual failure is logged and the
	// batch continues — the row delete below must happen regardless.
	for _, foto := range o.Fotos {
		if err := s.files.Delete(foto.Caminho); err != nil {
			log.Warn().Err(err).Str("caminho", foto.Caminho).
				Msg("falha ao remover arquivo de foto na exclusão da ocorrência")
		}
	}

	return s.repo.Delete(ctx, id)
}

// propriedadeDoUsuario loads the property and enforces ownership.
func (s *ocorrenciaService) propriedadeDoUsuario(ctx context.Context, principal *model.Usuario, propriedadeID uuid.UUID) (*model.Propriedade, error) {
	p, err := s.propriedades.FindByID(ctx, propriedadeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Propriedade não encontrada")
		}
		return nil, err
	}
	if !CanAccess(principal, p.UsuarioID) {
		return nil, apierror.Forbidden("Acesso negado")
	}
	return p, nil
}

func (s *ocorrenciaService) resolverReferencias(ctx context.Context, tipoID uuid.UUID, incidenteIDs []uuid.UUID) (*model.TipoOcorrencia, []model.Incidente, error) {
	tipo, err := s.tipos.FindByID(ctx, tipoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apierror.ReferenceNotFound("Tipo de ocorrência não encontrado")
		}
		return nil, nil, err
	}

	incidentes := make([]model.Incidente, 0, len(incidenteIDs))
	for _, id := range incidenteIDs {
		inc, err := s.incidentes.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apierror.ReferenceNotFound("Incidente não encontrado: " + id.String())
			}
			return nil, nil, err
		}
		incidentes = append(incidentes, *inc)
	}
	return tipo, incidentes, nil
}

// armazenarFotos writes every upload to storage. On a partial failure the
// files already written are removed best-effort and the whole batch fails —
// the caller never persists a row for a file that is not on disk.
func (s *ocorrenciaService) armazenarFotos(fotos []ArquivoUpload) ([]model.FotoOcorrencia, error) {
	gravadas := make([]model.FotoOcorrencia, 0, len(fotos))
	for _, f := range fotos {
		caminho, err := s.files.Store(f.Conteudo, f.Nome)
		if err != nil {
			s.removerArquivos(gravadas)
			return nil, apierror.Storage("Falha ao armazenar a foto "+f.Nome, err)
		}
		gravadas = append(gravadas, model.FotoOcorrencia{Nome: f.Nome, Caminho: caminho})
	}
	return gravadas, nil
}

func (s *ocorrenciaService) removerArquivos(fotos []model.FotoOcorrencia) {
	for _, f := range fotos {
		if err := s.files.Delete(f.Caminho); err != nil {
			log.Warn().Err(err).Str("caminho", f.Caminho).Msg("falha ao limpar arquivo órfão")
		}
	}
}

func fotoPorID(fotos []model.FotoOcorrencia, id uuid.UUID) (model.FotoOcorrencia, bool) {
	for _, f := range fotos {
		if f.ID == id {
			return f, true
		}
	}
	return model.FotoOcorrencia{}, false
}

// parseData parses the "2006-01-02" event date and rejects future dates.
// Today is accepted; tomorrow is not.
func parseData(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dataLayout, s, time.Local)
	if err != nil {
		return time.Time{}, apierror.Validation("Data inválida, use o formato AAAA-MM-DD")
	}
	if d.After(time.Now()) {
		return time.Time{}, apierror.Validation("A data da ocorrência não pode ser no futuro")
	}
	return d, nil
}
