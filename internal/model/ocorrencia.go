package model

import (
	"time"

	"github.com/google/uuid"
)

// Ocorrencia records an adverse event (alagamento, seca, ...) against one
// Propriedade on a given date. Fotos are an owned collection: deleting the
// Ocorrencia row cascades to the foto rows at the database level, and the
// service layer removes the backing files.
type Ocorrencia struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Data is the event date (no time component). Must not be in the future.
	Data      time.Time `gorm:"type:date;not null"`
	Descricao string    `gorm:"not null"`

	TipoOcorrenciaID uuid.UUID      `gorm:"type:uuid;not null"`
	TipoOcorrencia   TipoOcorrencia `gorm:"foreignKey:TipoOcorrenciaID"`

	PropriedadeID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Propriedade   Propriedade `gorm:"foreignKey:PropriedadeID;constraint:OnDelete:CASCADE"`

	Incidentes []Incidente      `gorm:"many2many:ocorrencia_incidentes;constraint:OnDelete:CASCADE"`
	Fotos      []FotoOcorrencia `gorm:"foreignKey:OcorrenciaID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FotoOcorrencia is the metadata for one uploaded image. Nome is the original
// filename (display only); Caminho is the server-generated stored name,
// unique across the upload root.
type FotoOcorrencia struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string    `gorm:"not null"`
	Caminho      string    `gorm:"uniqueIndex;not null"`
	OcorrenciaID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
}
