package service

import (
	"context"
	"testing"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type propriedadeFixture struct {
	svc      PropriedadeService
	repo     *stubPropriedadeRepo
	oRepo    *stubOcorrenciaRepo
	files    *memStorage
	cidade   model.Cidade
	lavoura  model.Atividade
	alagavel model.Vulnerabilidade
}

func newPropriedadeFixture() *propriedadeFixture {
	f := &propriedadeFixture{
		repo:     newStubPropriedadeRepo(),
		files:    newMemStorage(),
		cidade:   model.Cidade{ID: uuid.New(), Nome: "Santa Maria"},
		lavoura:  model.Atividade{ID: uuid.New(), Nome: "Lavoura Temporária"},
		alagavel: model.Vulnerabilidade{ID: uuid.New(), Nome: "Área sujeitas a alagamento"},
	}
	f.oRepo = newStubOcorrenciaRepo(f.repo)
	f.svc = NewPropriedadeService(
		f.repo,
		f.oRepo,
		newStubLookupRepo(f.cidade),
		newStubLookupRepo(f.lavoura),
		newStubLookupRepo(f.alagavel),
		f.files,
	)
	return f
}

func comum(nome, telefone string) *model.Usuario {
	return &model.Usuario{ID: uuid.New(), Nome: nome, Telefone: telefone, TipoUsuario: model.TipoComum}
}

func (f *propriedadeFixture) request() dto.PropriedadeRequest {
	return dto.PropriedadeRequest{
		Nome:             "Sítio Boa Vista",
		CidadeID:         f.cidade.ID,
		Coordenadas:      "-29.68,-53.80",
		Atividades:       []uuid.UUID{f.lavoura.ID},
		Vulnerabilidades: []uuid.UUID{f.alagavel.ID},
	}
}

func TestCriarPropriedade(t *testing.T) {
	f := newPropriedadeFixture()
	dona := comum("Helena", "55999991111")

	t.Run("proprietário em branco herda do usuário", func(t *testing.T) {
		resp, err := f.svc.Criar(context.Background(), dona, f.request())
		require.NoError(t, err)
		assert.Equal(t, "Helena", resp.Proprietario)
		assert.Equal(t, "55999991111", resp.TelefoneProprietario)
		assert.Equal(t, "Santa Maria", resp.Cidade.Nome)
		require.Len(t, resp.Atividades, 1)
		assert.Equal(t, "Lavoura Temporária", resp.Atividades[0].Nome)
	})

	t.Run("proprietário informado é mantido", func(t *testing.T) {
		req := f.request()
		req.Proprietario = "Arrendatário"
		req.TelefoneProprietario = "55955554444"
		resp, err := f.svc.Criar(context.Background(), dona, req)
		require.NoError(t, err)
		assert.Equal(t, "Arrendatário", resp.Proprietario)
	})

	t.Run("cidade inexistente", func(t *testing.T) {
		req := f.request()
		req.CidadeID = uuid.New()
		_, err := f.svc.Criar(context.Background(), dona, req)
		assert.True(t, apierror.IsKind(err, apierror.KindReferenceNotFound))
	})

	t.Run("atividade inexistente", func(t *testing.T) {
		req := f.request()
		req.Atividades = []uuid.UUID{uuid.New()}
		_, err := f.svc.Criar(context.Background(), dona, req)
		assert.True(t, apierror.IsKind(err, apierror.KindReferenceNotFound))
	})
}

func TestAtualizarPropriedadeAcesso(t *testing.T) {
	f := newPropriedadeFixture()
	dona := comum("Helena", "55999991111")
	intruso := comum("Visitante", "55900000000")

	criada, err := f.svc.Criar(context.Background(), dona, f.request())
	require.NoError(t, err)

	_, err = f.svc.Atualizar(context.Background(), intruso, criada.ID, f.request())
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))

	req := f.request()
	req.Nome = "Sítio Renomeado"
	resp, err := f.svc.Atualizar(context.Background(), dona, criada.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Sítio Renomeado", resp.Nome)
}

func TestExcluirPropriedadeRemoveArquivos(t *testing.T) {
	f := newPropriedadeFixture()
	dona := comum("Helena", "55999991111")

	criada, err := f.svc.Criar(context.Background(), dona, f.request())
	require.NoError(t, err)

	f.files.files["x_foto.jpg"] = []byte("jpg")
	f.oRepo.ocorrencias[uuid.New()] = &model.Ocorrencia{
		ID:            uuid.New(),
		PropriedadeID: criada.ID,
		Fotos:         []model.FotoOcorrencia{{ID: uuid.New(), Nome: "foto.jpg", Caminho: "x_foto.jpg"}},
	}

	require.NoError(t, f.svc.Excluir(context.Background(), dona, criada.ID))
	_, existe := f.files.files["x_foto.jpg"]
	assert.False(t, existe)
	_, err = f.repo.FindByID(context.Background(), criada.ID)
	assert.Error(t, err)
}

func TestExcluirPropriedadeAcesso(t *testing.T) {
	f := newPropriedadeFixture()
	dona := comum("Helena", "55999991111")
	intruso := comum("Visitante", "55900000000")
	admin := &model.Usuario{ID: uuid.New(), Nome: "Root", TipoUsuario: model.TipoAdmin}

	criada, err := f.svc.Criar(context.Background(), dona, f.request())
	require.NoError(t, err)

	assert.True(t, apierror.IsKind(
		f.svc.Excluir(context.Background(), intruso, criada.ID), apierror.KindForbidden))
	require.NoError(t, f.svc.Excluir(context.Background(), admin, criada.ID))
}
