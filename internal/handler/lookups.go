package handler

import (
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/repository"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves one lookup table (cidades, atividades, vulnerabilidades,
// tipos de ocorrência, incidentes). All five share the same shape, so a single
// generic handler covers them.
type LookupHandler[T repository.LookupEntity] struct {
	svc service.LookupService[T]
}

func NewLookupHandler[T repository.LookupEntity](svc service.LookupService[T]) *LookupHandler[T] {
	return &LookupHandler[T]{svc: svc}
}

// Listar GET /<recurso>
func (h *LookupHandler[T]) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar GET /<recurso>/:id
func (h *LookupHandler[T]) Buscar(c *gin.Context) {
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

// Criar POST /<recurso> (admin)
func (h *LookupHandler[T]) Criar(c *gin.Context) {
	var req dto.CriarLookupRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Excluir DELETE /<recurso>/:id (admin)
func (h *LookupHandler[T]) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
