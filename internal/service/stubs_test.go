package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	for _, e := range r.users {
		if e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// stubLookupRepo serves any of the five reference tables in tests.
type stubLookupRepo[T repository.LookupEntity] struct {
	items map[uuid.UUID]T
}

func newStubLookupRepo[T repository.LookupEntity](items ...T) *stubLookupRepo[T] {
	r := &stubLookupRepo[T]{items: make(map[uuid.UUID]T)}
	for _, e := range items {
		id, _ := e.Lookup()
		r.items[id] = e
	}
	return r
}

func (r *stubLookupRepo[T]) List(_ context.Context) ([]T, error) {
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		_, a := out[i].Lookup()
		_, b := out[j].Lookup()
		return a < b
	})
	return out, nil
}

func (r *stubLookupRepo[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *stubLookupRepo[T]) Create(_ context.Context, e *T) error {
	id, nome := (*e).Lookup()
	for _, existing := range r.items {
		_, n := existing.Lookup()
		if n == nome {
			return gorm.ErrDuplicatedKey
		}
	}
	if id == uuid.Nil {
		return errors.New("stub requires pre-assigned ids")
	}
	r.items[id] = *e
	return nil
}

func (r *stubLookupRepo[T]) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubLookupRepo[T]) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type stubPropriedadeRepo struct {
	props map[uuid.UUID]*model.Propriedade
}

func newStubPropriedadeRepo() *stubPropriedadeRepo {
	return &stubPropriedadeRepo{props: make(map[uuid.UUID]*model.Propriedade)}
}

func (r *stubPropriedadeRepo) Create(_ context.Context, p *model.Propriedade) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.props[p.ID] = p
	return nil
}

func (r *stubPropriedadeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Propriedade, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPropriedadeRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Propriedade, error) {
	var out []model.Propriedade
	for _, p := range r.props {
		if p.UsuarioID == usuarioID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPropriedadeRepo) ListAll(_ context.Context) ([]model.Propriedade, error) {
	out := make([]model.Propriedade, 0, len(r.props))
	for _, p := range r.props {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPropriedadeRepo) Update(_ context.Context, p *model.Propriedade) error {
	if _, ok := r.props[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.props[p.ID] = &cp
	return nil
}

func (r *stubPropriedadeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.props, id)
	return nil
}

type stubOcorrenciaRepo struct {
	ocorrencias map[uuid.UUID]*model.Ocorrencia
	props       *stubPropriedadeRepo
	createErr   error
	updateErr   error
}

func newStubOcorrenciaRepo(props *stubPropriedadeRepo) *stubOcorrenciaRepo {
	return &stubOcorrenciaRepo{ocorrencias: make(map[uuid.UUID]*model.Ocorrencia), props: props}
}

func (r *stubOcorrenciaRepo) Create(_ context.Context, o *model.Ocorrencia) error {
	if r.createErr != nil {
		return r.createErr
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Fotos {
		if o.Fotos[i].ID == uuid.Nil {
			o.Fotos[i].ID = uuid.New()
		}
		o.Fotos[i].OcorrenciaID = o.ID
	}
	cp := *o
	r.ocorrencias[o.ID] = &cp
	return nil
}

func (r *stubOcorrenciaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ocorrencia, error) {
	o, ok := r.ocorrencias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	if r.props != nil {
		if p, ok := r.props.props[o.PropriedadeID]; ok {
			cp.Propriedade = *p
		}
	}
	return &cp, nil
}

func (r *stubOcorrenciaRepo) ListByPropriedade(_ context.Context, propriedadeID uuid.UUID) ([]model.Ocorrencia, error) {
	var out []model.Ocorrencia
	for _, o := range r.ocorrencias {
		if o.PropriedadeID == propriedadeID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOcorrenciaRepo) Update(_ context.Context, o *model.Ocorrencia, removerFotos []uuid.UUID, novasFotos []model.FotoOcorrencia) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	atual, ok := r.ocorrencias[o.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	kept := atual.Fotos[:0]
	for _, f := range atual.Fotos {
		remove := false
		for _, id := range removerFotos {
			if f.ID == id {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, f)
		}
	}
	for i := range novasFotos {
		if novasFotos[i].ID == uuid.Nil {
			novasFotos[i].ID = uuid.New()
		}
		novasFotos[i].OcorrenciaID = o.ID
		kept = append(kept, novasFotos[i])
	}
	cp := *o
	cp.Fotos = kept
	r.ocorrencias[o.ID] = &cp
	return nil
}

func (r *stubOcorrenciaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.ocorrencias, id)
	return nil
}

type stubFotoRepo struct {
	ocorrencias *stubOcorrenciaRepo
}

func (r *stubFotoRepo) ListByOcorrencia(_ context.Context, ocorrenciaID uuid.UUID) ([]model.FotoOcorrencia, error) {
	o, ok := r.ocorrencias.ocorrencias[ocorrenciaID]
	if !ok {
		return nil, nil
	}
	return append([]model.FotoOcorrencia(nil), o.Fotos...), nil
}

func (r *stubFotoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FotoOcorrencia, error) {
	for _, o := range r.ocorrencias.ocorrencias {
		for _, f := range o.Fotos {
			if f.ID == id {
				cp := f
				return &cp, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFotoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for _, o := range r.ocorrencias.ocorrencias {
		for i, f := range o.Fotos {
			if f.ID == id {
				o.Fotos = append(o.Fotos[:i], o.Fotos[i+1:]...)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

// ── In-memory file storage ───────────────────────────────────────────────────

// memStorage records stored files and can be told to fail after a number of
// successful writes, exercising the partial-upload cleanup paths.
type memStorage struct {
	files     map[string][]byte
	stored    int
	failAfter int // 0 means never fail
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Store(conteudo io.Reader, nomeOriginal string) (string, error) {
	if s.failAfter > 0 && s.stored >= s.failAfter {
		return "", errors.New("disco cheio")
	}
	b, err := io.ReadAll(conteudo)
	if err != nil {
		return "", err
	}
	s.stored++
	caminho := fmt.Sprintf("%d_%s", s.stored, nomeOriginal)
	s.files[caminho] = b
	return caminho, nil
}

func (s *memStorage) Open(caminho string) (io.ReadCloser, error) {
	b, ok := s.files[caminho]
	if !ok {
		return nil, errors.New("não encontrado")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memStorage) Delete(caminho string) error {
	delete(s.files, caminho)
	return nil
}

func (s *memStorage) ContentType(string) string { return "image/jpeg" }
