package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From traduz um BusinessError para o status HTTP correspondente.
func From(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, "Recurso não encontrado.")
	case KindForbidden:
		Forbidden(c, be.Code, "Acesso negado.")
	case KindInvalidState:
		BadRequest(c, be.Code, "Operação não permitida no estado atual.")
	case KindConflict:
		Conflict(c, be.Code, "Conflito de dados.")
	case KindTxAborted:
		Write(c, http.StatusServiceUnavailable, be.Code, "Transação abortada, tente novamente.")
	default:
		Internal(c, be.Code, "Erro interno.")
	}
}
