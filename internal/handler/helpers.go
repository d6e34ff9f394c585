package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fenn3kk/smpp-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindMultipartJSON decodes the named multipart form field as JSON and runs
// the same validation as bindAndValidate. Used by the occurrence endpoints,
// where the payload travels next to photo files.
func bindMultipartJSON(c *gin.Context, field string, req interface{}) bool {
	raw := c.PostForm(field)
	if raw == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Campo '"+field+"' ausente no formulário"))
		return false
	}
	if err := json.Unmarshal([]byte(raw), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			for _, fe := range verr {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service error onto the HTTP response. Classified errors
// carry a client-safe message; anything else becomes an opaque 500 through
// the error middleware.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, apierror.New("Erro interno do servidor"))
		return
	}
	var ae *apierror.Error
	errors.As(err, &ae)
	c.JSON(status, apierror.New(ae.Msg))
}

// parseID parses the named uuid path parameter, writing the 400 itself.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
