package handler

import (
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/middleware"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type FotosHandler struct{ svc service.FotoService }

func NewFotosHandler(svc service.FotoService) *FotosHandler {
	return &FotosHandler{svc: svc}
}

// ListarPorOcorrencia GET /fotos/ocorrencia/:ocorrenciaId
func (h *FotosHandler) ListarPorOcorrencia(c *gin.Context) {
	id, ok := parseID(c, "ocorrenciaId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorOcorrencia(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /fotos/:id
func (h *FotosHandler) Excluir(c *gin.Context) {
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
