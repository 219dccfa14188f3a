package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/franciscosanchezn/pizzaria-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Report JSON field names in validation messages instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError maps a service error to its HTTP status. Only the client-facing message
// leaves the process; the cause is logged.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrConnectivity):
		status = http.StatusServiceUnavailable
	}

	entry := log.WithFields(log.Fields{
		"status":     status,
		"path":       ctx.FullPath(),
		"request_id": ctx.GetString("request_id"),
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Debug("Request rejected")
	}

	ctx.JSON(status, models.NewErrorResponse(services.Message(err, "Erro interno do servidor")))
}

// respondBindingError answers 400 for a body that could not be decoded or validated
func respondBindingError(ctx *gin.Context, err error) {
	log.WithFields(log.Fields{
		"path":       ctx.FullPath(),
		"request_id": ctx.GetString("request_id"),
		"error":      err.Error(),
	}).Debug("Invalid request body")
	ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(bindingMessage(err)))
}

func bindingMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return fieldMessage(validationErrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s deve ser do tipo %s", typeErr.Field, jsonTypeName(typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "JSON inválido"
	}

	return "Corpo da requisição inválido"
}

// fieldMessage renders one validator failure, e.g. "itens[0].quantidade deve ser maior que 0"
func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " é obrigatório"
	case "email":
		return field + " deve ser um email válido"
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s deve ter ao menos %s elemento(s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
	}
	return field + " é inválido"
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "inteiro"
	case reflect.String:
		return "texto"
	case reflect.Slice, reflect.Array:
		return "lista"
	}
	return t.String()
}

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse("ID inválido"))
		return 0, false
	}
	return uint(id), true
}
