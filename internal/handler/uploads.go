package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"
	"github.com/Fenn3kk/smpp-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UploadsHandler struct{ files storage.FileStorage }

func NewUploadsHandler(files storage.FileStorage) *UploadsHandler {
	return &UploadsHandler{files: files}
}

// Servir GET /uploads/:arquivo streams a stored photo. The route is public:
// file names carry a random uuid prefix and are only discoverable through
// authenticated occurrence endpoints.
func (h *UploadsHandler) Servir(c *gin.Context) {
	arquivo := c.Param("arquivo")

	f, err := h.files.Open(arquivo)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Arquivo não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("Nome de arquivo inválido"))
		return
	}
	defer f.Close()

	c.Header("Content-Type", h.files.ContentType(arquivo))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		log.Warn().Err(err).Str("arquivo", arquivo).Msg("falha ao transmitir arquivo")
	}
}
