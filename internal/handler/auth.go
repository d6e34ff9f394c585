package handler

import (
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/dto"
	"github.com/Fenn3kk/smpp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cadastro POST /auth/cadastro registra um usuário COMUM.
func (h *AuthHandler) Cadastro(c *gin.Context) {
	var req dto.CadastroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cadastro(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Usuário cadastrado com sucesso"})
}
