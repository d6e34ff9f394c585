package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const lookupCacheTTL = 1 * time.Hour

// LookupService is the shared read (and, for incidentes, admin write) surface
// of the five reference tables. List results are cached in Redis: the tables
// are near-immutable and every form in the client loads them.
type LookupService[T repository.LookupEntity] interface {
	Listar(ctx context.Context) ([]dto.LookupResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.LookupResponse, error)
	Criar(ctx context.Context, req dto.CriarLookupRequest) (*dto.LookupResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type lookupService[T repository.LookupEntity] struct {
	repo repository.LookupRepository[T]
	rdb  *redis.Client
	// cacheKey is per entity ("lookup:cidades", "lookup:incidentes", ...).
	cacheKey    string
	notFoundMsg string
	// novo builds a fresh entity for Criar; only wired where creation is
	// exposed (incidentes).
	novo func(nome string) T
}

func NewLookupService[T repository.LookupEntity](
	repo repository.LookupRepository[T],
	rdb *redis.Client,
	cacheKey, notFoundMsg string,
	novo func(nome string) T,
) LookupService[T] {
	return &lookupService[T]{repo: repo, rdb: rdb, cacheKey: cacheKey, notFoundMsg: notFoundMsg, novo: novo}
}

func lookupToResponse[T repository.LookupEntity](e T) dto.LookupResponse {
	id, nome := e.Lookup()
	return dto.LookupResponse{ID: id, Nome: nome}
}

func (s *lookupService[T]) Listar(ctx context.Context) ([]dto.LookupResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, s.cacheKey).Bytes(); err == nil {
			var out []dto.LookupResponse
			if jsonErr := json.Unmarshal(cached, &out); jsonErr == nil {
				return out, nil
			}
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupResponse, len(list))
	for i, e := range list {
		out[i] = lookupToResponse(e)
	}

	// Populate cache — best effort, ignore errors.
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(out); jsonErr == nil {
			_ = s.rdb.Set(ctx, s.cacheKey, b, lookupCacheTTL).Err()
		}
	}
	return out, nil
}

func (s *lookupService[T]) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.LookupResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(s.notFoundMsg)
		}
		return nil, err
	}
	resp := lookupToResponse(*e)
	return &resp, nil
}

func (s *lookupService[T]) Criar(ctx context.Context, req dto.CriarLookupRequest) (*dto.LookupResponse, error) {
	e := s.novo(req.Nome)
	if err := s.repo.Create(ctx, &e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Já existe um registro com esse nome")
		}
		return nil, err
	}
	s.invalidate(ctx)
	resp := lookupToResponse(e)
	return &resp, nil
}

func (s *lookupService[T]) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound(s.notFoundMsg)
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *lookupService[T]) invalidate(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, s.cacheKey).Err()
	}
}
