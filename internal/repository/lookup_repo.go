package repository

import (
	"context"

	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupEntity constrains the generic lookup repository to the five flat
// {id, nome} reference tables.
type LookupEntity interface {
	model.Cidade | model.Atividade | model.Vulnerabilidade | model.TipoOcorrencia | model.Incidente
	Lookup() (uuid.UUID, string)
}

// LookupRepository is the single generic data access contract shared by all
// reference tables. The table is inferred by GORM from the type parameter.
type LookupRepository[T LookupEntity] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type lookupRepo[T LookupEntity] struct{ db *gorm.DB }

func NewLookupRepository[T LookupEntity](db *gorm.DB) LookupRepository[T] {
	return &lookupRepo[T]{db: db}
}

func (r *lookupRepo[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&out).Error
	return out, err
}

func (r *lookupRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *lookupRepo[T]) Create(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *lookupRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var e T
	res := r.db.WithContext(ctx).Delete(&e, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lookupRepo[T]) Count(ctx context.Context) (int64, error) {
	var e T
	var n int64
	err := r.db.WithContext(ctx).Model(&e).Count(&n).Error
	return n, err
}
