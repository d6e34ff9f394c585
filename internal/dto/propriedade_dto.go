package dto

import "github.com/google/uuid"

// PropriedadeRequest is used for both create and update.
type PropriedadeRequest struct {
	Nome        string    `json:"nome"        validate:"required,min=2,max=255"`
	CidadeID    uuid.UUID `json:"cidadeId"    validate:"required"`
	Coordenadas string    `json:"coordenadas" validate:"required"`
	// When both are blank the acting user's nome/telefone are used.
	Proprietario         string      `json:"proprietario"`
	TelefoneProprietario string      `json:"telefoneProprietario"`
	Atividades           []uuid.UUID `json:"atividades"       validate:"required,min=1"`
	Vulnerabilidades     []uuid.UUID `json:"vulnerabilidades"`
}

type SimpleUserResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

type PropriedadeResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Nome                 string             `json:"nome"`
	Cidade               LookupResponse     `json:"cidade"`
	Coordenadas          string             `json:"coordenadas"`
	Proprietario         string             `json:"proprietario"`
	TelefoneProprietario string             `json:"telefoneProprietario"`
	Atividades           []LookupResponse   `json:"atividades"`
	Vulnerabilidades     []LookupResponse   `json:"vulnerabilidades"`
	Usuario              SimpleUserResponse `json:"usuario"`
}
