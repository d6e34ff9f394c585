package dto

import "github.com/google/uuid"

// LookupResponse is the generic {id, nome} representation used for every
// reference entity (cidade, atividade, vulnerabilidade, tipo de ocorrência,
// incidente) and for embedding references in aggregate responses.
type LookupResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

type CriarLookupRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=255"`
}
