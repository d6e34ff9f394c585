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

func newIncidenteService(repo *stubLookupRepo[model.Incidente]) LookupService[model.Incidente] {
	// rdb nil: o cache é contornado e tudo vai direto ao repositório.
	return NewLookupService[model.Incidente](repo, nil, "lookup:incidentes", "Incidente não encontrado",
		func(nome string) model.Incidente { return model.Incidente{ID: uuid.New(), Nome: nome} })
}

func TestLookupListar(t *testing.T) {
	repo := newStubLookupRepo(
		model.Incidente{ID: uuid.New(), Nome: "Perda de lavoura"},
		model.Incidente{ID: uuid.New(), Nome: "Dano estrutural"},
	)
	svc := newIncidenteService(repo)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	// Ordenado por nome.
	assert.Equal(t, "Dano estrutural", lista[0].Nome)
}

func TestLookupCriar(t *testing.T) {
	repo := newStubLookupRepo[model.Incidente]()
	svc := newIncidenteService(repo)

	criado, err := svc.Criar(context.Background(), dto.CriarLookupRequest{Nome: "Perda de animais"})
	require.NoError(t, err)
	assert.Equal(t, "Perda de animais", criado.Nome)
	assert.NotEqual(t, uuid.Nil, criado.ID)

	_, err = svc.Criar(context.Background(), dto.CriarLookupRequest{Nome: "Perda de animais"})
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestLookupExcluir(t *testing.T) {
	inc := model.Incidente{ID: uuid.New(), Nome: "Perda de equipamentos"}
	repo := newStubLookupRepo(inc)
	svc := newIncidenteService(repo)

	require.NoError(t, svc.Excluir(context.Background(), inc.ID))

	err := svc.Excluir(context.Background(), inc.ID)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.EqualError(t, err, "Incidente não encontrado")
}

func TestLookupBuscarPorID(t *testing.T) {
	cidade := model.Cidade{ID: uuid.New(), Nome: "Agudo"}
	repo := newStubLookupRepo(cidade)
	svc := NewLookupService[model.Cidade](repo, nil, "lookup:cidades", "Cidade não encontrada", nil)

	resp, err := svc.BuscarPorID(context.Background(), cidade.ID)
	require.NoError(t, err)
	assert.Equal(t, "Agudo", resp.Nome)

	_, err = svc.BuscarPorID(context.Background(), uuid.New())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
