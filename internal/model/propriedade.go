package model

import (
	"time"

	"github.com/google/uuid"
)

// Propriedade is a rural parcel. UsuarioID is the access-control anchor:
// every ownership check on properties and their occurrences resolves to it.
type Propriedade struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string    `gorm:"not null"`
	CidadeID    uuid.UUID `gorm:"type:uuid;not null"`
	Cidade      Cidade    `gorm:"foreignKey:CidadeID"`
	Coordenadas string    `gorm:"not null"`
	// Proprietario/TelefoneProprietario default to the creating user's
	// nome/telefone when both arrive blank.
	Proprietario         string
	TelefoneProprietario string
	UsuarioID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Usuario              Usuario   `gorm:"foreignKey:UsuarioID"`

	Atividades       []Atividade       `gorm:"many2many:propriedade_atividades;constraint:OnDelete:CASCADE"`
	Vulnerabilidades []Vulnerabilidade `gorm:"many2many:propriedade_vulnerabilidades;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
