package repository

import (
	"context"

	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OcorrenciaRepository interface {
	// Create persists the occurrence together with its fotos and incidente
	// join rows in a single transaction (cascade insert).
	Create(ctx context.Context, o *model.Ocorrencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ocorrencia, error)
	ListByPropriedade(ctx context.Context, propriedadeID uuid.UUID) ([]model.Ocorrencia, error)
	// Update applies scalar fields, replaces the incidente association,
	// deletes the named foto rows and inserts the new ones — one transaction.
	Update(ctx context.Context, o *model.Ocorrencia, removerFotos []uuid.UUID, novasFotos []model.FotoOcorrencia) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ocorrenciaRepo struct{ db *gorm.DB }

func NewOcorrenciaRepository(db *gorm.DB) OcorrenciaRepository { return &ocorrenciaRepo{db: db} }

func (r *ocorrenciaRepo) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("TipoOcorrencia").
		Preload("Incidentes").
		Preload("Fotos").
		Preload("Propriedade")
}

func (r *ocorrenciaRepo) Create(ctx context.Context, o *model.Ocorrencia) error {
	return r.db.WithContext(ctx).
		Omit("Incidentes.*", "TipoOcorrencia", "Propriedade").
		Create(o).Error
}

func (r *ocorrenciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ocorrencia, error) {
	var o model.Ocorrencia
	err := r.preload(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ocorrenciaRepo) ListByPropriedade(ctx context.Context, propriedadeID uuid.UUID) ([]model.Ocorrencia, error) {
	var out []model.Ocorrencia
	err := r.preload(ctx).
		Where("propriedade_id = ?", propriedadeID).
		Order("data DESC").
		Find(&out).Error
	return out, err
}

func (r *ocorrenciaRepo) Update(ctx context.Context, o *model.Ocorrencia, removerFotos []uuid.UUID, novasFotos []model.FotoOcorrencia) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(removerFotos) > 0 {
			if err := tx.Where("ocorrencia_id = ? AND id IN ?", o.ID, removerFotos).
				Delete(&model.FotoOcorrencia{}).Error; err != nil {
				return err
			}
		}
		for i := range novasFotos {
			novasFotos[i].OcorrenciaID = o.ID
		}
		if len(novasFotos) > 0 {
			if err := tx.Create(&novasFotos).Error; err != nil {
				return err
			}
		}
		if err := tx.Omit("Incidentes", "Fotos", "TipoOcorrencia", "Propriedade").Save(o).Error; err != nil {
			return err
		}
		return tx.Model(o).Association("Incidentes").Replace(o.Incidentes)
	})
}

func (r *ocorrenciaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// DB cascade removes foto rows and incidente join rows.
	return r.db.WithContext(ctx).Delete(&model.Ocorrencia{}, "id = ?", id).Error
}
