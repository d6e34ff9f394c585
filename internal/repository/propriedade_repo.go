package repository

import (
	"context"

	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropriedadeRepository interface {
	Create(ctx context.Context, p *model.Propriedade) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Propriedade, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Propriedade, error)
	ListAll(ctx context.Context) ([]model.Propriedade, error)
	// Update persists scalar fields and replaces the atividade and
	// vulnerabilidade associations in one transaction.
	Update(ctx context.Context, p *model.Propriedade) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propriedadeRepo struct{ db *gorm.DB }

func NewPropriedadeRepository(db *gorm.DB) PropriedadeRepository { return &propriedadeRepo{db: db} }

func (r *propriedadeRepo) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Cidade").
		Preload("Usuario").
		Preload("Atividades").
		Preload("Vulnerabilidades")
}

func (r *propriedadeRepo) Create(ctx context.Context, p *model.Propriedade) error {
	// Omit associated lookup rows so that gorm only inserts join rows for the
	// already-resolved atividades/vulnerabilidades instead of upserting them.
	return r.db.WithContext(ctx).
		Omit("Atividades.*", "Vulnerabilidades.*", "Cidade", "Usuario").
		Create(p).Error
}

func (r *propriedadeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Propriedade, error) {
	var p model.Propriedade
	err := r.preload(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *propriedadeRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Propriedade, error) {
	var props []model.Propriedade
	err := r.preload(ctx).Where("usuario_id = ?", usuarioID).Order("nome ASC").Find(&props).Error
	return props, err
}

func (r *propriedadeRepo) ListAll(ctx context.Context) ([]model.Propriedade, error) {
	var props []model.Propriedade
	err := r.preload(ctx).Order("nome ASC").Find(&props).Error
	return props, err
}

func (r *propriedadeRepo) Update(ctx context.Context, p *model.Propriedade) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Atividades", "Vulnerabilidades", "Cidade", "Usuario").Save(p).Error; err != nil {
			return err
		}
		if err := tx.Model(p).Association("Atividades").Replace(p.Atividades); err != nil {
			return err
		}
		return tx.Model(p).Association("Vulnerabilidades").Replace(p.Vulnerabilidades)
	})
}

func (r *propriedadeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Foreign keys carry ON DELETE CASCADE: ocorrências, fotos and the
	// many2many join rows go with the property row.
	return r.db.WithContext(ctx).Delete(&model.Propriedade{}, "id = ?", id).Error
}
