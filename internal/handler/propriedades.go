package handler

import (
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/middleware"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PropriedadesHandler struct{ svc service.PropriedadeService }

func NewPropriedadesHandler(svc service.PropriedadeService) *PropriedadesHandler {
	return &PropriedadesHandler{svc: svc}
}

// Listar GET /propriedades lista as propriedades do usuário autenticado.
func (h *PropriedadesHandler) Listar(c *gin.Context) {
	principal := middleware.Principal(c)
	resp, err := h.svc.ListarPorUsuario(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarTodas GET /propriedades/todas
func (h *PropriedadesHandler) ListarTodas(c *gin.Context) {
	resp, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar GET /propriedades/:id
func (h *PropriedadesHandler) Buscar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /propriedades
func (h *PropriedadesHandler) Criar(c *gin.Context) {
	var req dto.PropriedadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), middleware.Principal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /propriedades/:id
func (h *PropriedadesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PropriedadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), middleware.Principal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /propriedades/:id
func (h *PropriedadesHandler) Excluir(c *gin.Context) {
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
