package model

import "github.com/google/uuid"

// Lookup entities are flat {id, unique nome} reference tables consumed by
// the Propriedade and Ocorrencia aggregates. They share one generic
// repository (see repository.LookupRepository).

type Cidade struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"uniqueIndex;not null"`
}

type Atividade struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"uniqueIndex;not null"`
}

type Vulnerabilidade struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"uniqueIndex;not null"`
}

type TipoOcorrencia struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"uniqueIndex;not null"`
}

type Incidente struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"uniqueIndex;not null"`
}

func (c Cidade) Lookup() (uuid.UUID, string)          { return c.ID, c.Nome }
func (a Atividade) Lookup() (uuid.UUID, string)       { return a.ID, a.Nome }
func (v Vulnerabilidade) Lookup() (uuid.UUID, string) { return v.ID, v.Nome }
func (t TipoOcorrencia) Lookup() (uuid.UUID, string)  { return t.ID, t.Nome }
func (i Incidente) Lookup() (uuid.UUID, string)       { return i.ID, i.Nome }
