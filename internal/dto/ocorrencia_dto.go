package dto

import "github.com/google/uuid"

// CriarOcorrenciaRequest arrives as the "ocorrenciaDto" JSON part of a
// multipart/form-data request; photo files travel in the "fotos" parts.
// Data uses the "2006-01-02" layout and must not be in the future.
type CriarOcorrenciaRequest struct {
	TipoOcorrenciaID uuid.UUID   `json:"tipoOcorrenciaId" validate:"required"`
	Data             string      `json:"data"             validate:"required"`
	Descricao        string      `json:"descricao"        validate:"required"`
	PropriedadeID    uuid.UUID   `json:"propriedadeId"    validate:"required"`
	Incidentes       []uuid.UUID `json:"incidentes"`
}

// AtualizarOcorrenciaRequest replaces the scalar and reference fields and
// names the photos to detach and delete. Newly uploaded files come as
// "novasFotos" parts in the same request, under the "ocorrenciaUpdateDto"
// JSON part.
type AtualizarOcorrenciaRequest struct {
	TipoOcorrenciaID uuid.UUID   `json:"tipoOcorrenciaId" validate:"required"`
	Data             string      `json:"data"             validate:"required"`
	Descricao        string      `json:"descricao"        validate:"required"`
	Incidentes       []uuid.UUID `json:"incidentes"`
	FotosParaExcluir []uuid.UUID `json:"fotosParaExcluir"`
}

type FotoOcorrenciaResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
	URL  string    `json:"url"`
}

type OcorrenciaResponse struct {
	ID             uuid.UUID                `json:"id"`
	Data           string                   `json:"data"`
	Descricao      string                   `json:"descricao"`
	TipoOcorrencia LookupResponse           `json:"tipoOcorrencia"`
	Incidentes     []LookupResponse         `json:"incidentes"`
	Fotos          []FotoOcorrenciaResponse `json:"fotos"`
}
