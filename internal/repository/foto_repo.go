package repository

import (
	"context"

	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FotoRepository interface {
	ListByOcorrencia(ctx context.Context, ocorrenciaID uuid.UUID) ([]model.FotoOcorrencia, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FotoOcorrencia, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fotoRepo struct{ db *gorm.DB }

func NewFotoRepository(db *gorm.DB) FotoRepository { return &fotoRepo{db: db} }

func (r *fotoRepo) ListByOcorrencia(ctx context.Context, ocorrenciaID uuid.UUID) ([]model.FotoOcorrencia, error) {
	var fotos []model.FotoOcorrencia
	err := r.db.WithContext(ctx).
		Where("ocorrencia_id = ?", ocorrenciaID).
		Order("created_at ASC").
		Find(&fotos).Error
	return fotos, err
}

func (r *fotoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FotoOcorrencia, error) {
	var f model.FotoOcorrencia
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *fotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FotoOcorrencia{}, "id = ?", id).Error
}
