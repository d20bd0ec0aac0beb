package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"

	"scholar-catalog/models"
)

const (
	textError           = `error`
	codeBadRequestError = 400
	codeNotFound        = 404
	codeInternalError   = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper(v *Validator) *HTTPHelper {
	return &HTTPHelper{Validate: v.Validate, Translator: v.Translator}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var notFound models.ErrorNotFound
	var badRequest models.ErrorBadRequest
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest), errors.As(err, &validationErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) {
	u.SendResponse(u.SetResponse(c, textError, message, data, code, codeType))
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeBadRequestError, `badRequest`)
}

// SendNotFoundError ...
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendInternalError ...
func (u *HTTPHelper) SendInternalError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeInternalError, `internalError`)
}

// SendValidationError ...
// Send validation error response to consumers, one entry per json field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := (&Validator{Validate: u.Validate, Translator: u.Translator}).FieldErrors(validationErrors)

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeBadRequestError,
		"code_type":    "validationError",
		"code_message": "validation failed",
		"data":         errorResponse,
	})
}

// SendServiceError picks the response matching err.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
		return
	}

	switch u.GetStatusCode(err) {
	case http.StatusNotFound:
		u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusBadRequest:
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	default:
		_ = c.Error(err)
		u.SendInternalError(c, "internal server error", u.EmptyJsonMap())
	}
}

// SendResponse ...
// The HTTP status mirrors the envelope code.
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	resCode := res.Code
	if http.StatusText(resCode) == "" {
		resCode = http.StatusInternalServerError
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
