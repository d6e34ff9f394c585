package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/middleware"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type OcorrenciasHandler struct{ svc service.OcorrenciaService }

func NewOcorrenciasHandler(svc service.OcorrenciaService) *OcorrenciasHandler {
	return &OcorrenciasHandler{svc: svc}
}

// ListarPorPropriedade GET /ocorrencias/propriedade/:propriedadeId
func (h *OcorrenciasHandler) ListarPorPropriedade(c *gin.Context) {
	id, ok := parseID(c, "propriedadeId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorPropriedade(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /ocorrencias (multipart: "ocorrenciaDto" JSON + "fotos" files)
func (h *OcorrenciasHandler) Criar(c *gin.Context) {
	var req dto.CriarOcorrenciaRequest
	if !bindMultipartJSON(c, "ocorrenciaDto", &req) {
		return
	}
	fotos, closeAll, ok := abrirFotos(c, "fotos")
	if !ok {
		return
	}
	defer closeAll()

	resp, err := h.svc.Criar(c.Request.Context(), middleware.Principal(c), req, fotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /ocorrencias/:id (multipart: "ocorrenciaUpdateDto" JSON +
// "novasFotos" files)
func (h *OcorrenciasHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarOcorrenciaRequest
	if !bindMultipartJSON(c, "ocorrenciaUpdateDto", &req) {
		return
	}
	fotos, closeAll, ok := abrirFotos(c, "novasFotos")
	if !ok {
		return
	}
	defer closeAll()

	resp, err := h.svc.Atualizar(c.Request.Context(), middleware.Principal(c), id, req, fotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /ocorrencias/:id
func (h *OcorrenciasHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abrirFotos opens every file part under the given form field. The returned
// closer releases all opened files; call it after the service returns.
func abrirFotos(c *gin.Context, field string) ([]service.ArquivoUpload, func(), bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all was already caught by bindMultipartJSON;
		// here it means the form exists but is unreadable.
		c.JSON(http.StatusBadRequest, apierror.New("Formulário multipart inválido"))
		return nil, nil, false
	}

	files := form.File[field]
	uploads := make([]service.ArquivoUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			c.JSON(http.StatusBadRequest, apierror.New("Falha ao ler o arquivo "+fh.Filename))
			return nil, nil, false
		}
		opened = append(opened, f)
		uploads = append(uploads, service.ArquivoUpload{Nome: fh.Filename, Conteudo: f})
	}
	return uploads, closeAll, true
}
