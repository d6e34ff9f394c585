package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/middleware"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOcorrenciaService captures what the handler hands over.
type fakeOcorrenciaService struct {
	gotReq       dto.CriarOcorrenciaRequest
	gotUpdateReq dto.AtualizarOcorrenciaRequest
	gotFotos     []string
	err          error
}

func (s *fakeOcorrenciaService) registraFotos(fotos []service.ArquivoUpload) {
	for _, f := range fotos {
		b, _ := io.ReadAll(f.Conteudo)
		s.gotFotos = append(s.gotFotos, f.Nome+":"+string(b))
	}
}

func (s *fakeOcorrenciaService) ListarPorPropriedade(context.Context, *model.Usuario, uuid.UUID) ([]dto.OcorrenciaResponse, error) {
	return nil, nil
}

func (s *fakeOcorrenciaService) Criar(_ context.Context, _ *model.Usuario, req dto.CriarOcorrenciaRequest, fotos []service.ArquivoUpload) (*dto.OcorrenciaResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.gotReq = req
	s.registraFotos(fotos)
	return &dto.OcorrenciaResponse{ID: uuid.New(), Descricao: req.Descricao}, nil
}

func (s *fakeOcorrenciaService) Atualizar(_ context.Context, _ *model.Usuario, id uuid.UUID, req dto.AtualizarOcorrenciaRequest, fotos []service.ArquivoUpload) (*dto.OcorrenciaResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.gotUpdateReq = req
	s.registraFotos(fotos)
	return &dto.OcorrenciaResponse{ID: id, Descricao: req.Descricao}, nil
}

func (s *fakeOcorrenciaService) Excluir(context.Context, *model.Usuario, uuid.UUID) error {
	return s.err
}

func newOcorrenciaRouter(svc service.OcorrenciaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, &model.Usuario{ID: uuid.New(), TipoUsuario: model.TipoComum})
	})
	h := NewOcorrenciasHandler(svc)
	r.POST("/ocorrencias", h.Criar)
	r.PUT("/ocorrencias/:id", h.Atualizar)
	return r
}

func multipartBody(t *testing.T, jsonField, ocorrencia, fileField string, fotos map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if ocorrencia != "" {
		require.NoError(t, w.WriteField(jsonField, ocorrencia))
	}
	for nome, conteudo := range fotos {
		fw, err := w.CreateFormFile(fileField, nome)
		require.NoError(t, err)
		_, err = fw.Write([]byte(conteudo))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCriarOcorrenciaMultipart(t *testing.T) {
	svc := &fakeOcorrenciaService{}
	r := newOcorrenciaRouter(svc)

	payload := `{
		"tipoOcorrenciaId": "` + uuid.NewString() + `",
		"data": "` + time.Now().Format("2006-01-02") + `",
		"descricao": "Teste de criação",
		"propriedadeId": "` + uuid.NewString() + `"
	}`
	body, ct := multipartBody(t, "ocorrenciaDto", payload, "fotos", map[string]string{"foto.jpg": "binário"})

	req := httptest.NewRequest(http.MethodPost, "/ocorrencias", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Teste de criação", svc.gotReq.Descricao)
	require.Len(t, svc.gotFotos, 1)
	assert.Equal(t, "foto.jpg:binário", svc.gotFotos[0])
}

func TestAtualizarOcorrenciaMultipart(t *testing.T) {
	svc := &fakeOcorrenciaService{}
	r := newOcorrenciaRouter(svc)

	fotoID := uuid.NewString()
	payload := `{
		"tipoOcorrenciaId": "` + uuid.NewString() + `",
		"data": "2024-01-01",
		"descricao": "Teste de atualização",
		"fotosParaExcluir": ["` + fotoID + `"]
	}`
	body, ct := multipartBody(t, "ocorrenciaUpdateDto", payload, "novasFotos", map[string]string{"nova.jpg": "conteúdo"})

	req := httptest.NewRequest(http.MethodPut, "/ocorrencias/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Teste de atualização", svc.gotUpdateReq.Descricao)
	require.Len(t, svc.gotUpdateReq.FotosParaExcluir, 1)
	assert.Equal(t, fotoID, svc.gotUpdateReq.FotosParaExcluir[0].String())
	require.Len(t, svc.gotFotos, 1)
	assert.Equal(t, "nova.jpg:conteúdo", svc.gotFotos[0])
}

func TestCriarOcorrenciaSemCampoJSON(t *testing.T) {
	r := newOcorrenciaRouter(&fakeOcorrenciaService{})

	body, ct := multipartBody(t, "ocorrenciaDto", "", "fotos", map[string]string{"foto.jpg": "x"})
	req := httptest.NewRequest(http.MethodPost, "/ocorrencias", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriarOcorrenciaCamposObrigatorios(t *testing.T) {
	r := newOcorrenciaRouter(&fakeOcorrenciaService{})

	// descrição ausente
	body, ct := multipartBody(t, "ocorrenciaDto", `{"tipoOcorrenciaId":"`+uuid.NewString()+`","data":"2024-01-01","propriedadeId":"`+uuid.NewString()+`"}`, "fotos", nil)
	req := httptest.NewRequest(http.MethodPost, "/ocorrencias", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Descricao")
}

func TestCriarOcorrenciaErroDoServico(t *testing.T) {
	svc := &fakeOcorrenciaService{err: apierror.Forbidden("Acesso negado")}
	r := newOcorrenciaRouter(svc)

	payload := `{
		"tipoOcorrenciaId": "` + uuid.NewString() + `",
		"data": "2024-01-01",
		"descricao": "x",
		"propriedadeId": "` + uuid.NewString() + `"
	}`
	body, ct := multipartBody(t, "ocorrenciaDto", payload, "fotos", nil)
	req := httptest.NewRequest(http.MethodPost, "/ocorrencias", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso negado")
}
