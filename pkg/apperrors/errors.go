package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error kind independently of its message.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP boundary. HTTPCode and Err are never serialized to clients.
type AppError struct {
	Code     ErrorCode   `json:"error"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap builds an AppError around an underlying cause.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is and As wrap the stdlib so callers only import this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. Status codes are part of the HTTP contract.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Senha incorreta", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Não autorizado", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	ErrUserNotFound    = New(CodeUserNotFound, "Usuário não encontrado", http.StatusNotFound)
	ErrProfileNotFound = New(CodeProfileNotFound, "Perfil não encontrado", http.StatusNotFound)
	ErrDuplicateEmail  = New(CodeDuplicateEmail, "Este email já está em uso", http.StatusConflict)

	ErrNoPlansAvailable   = New(CodeNoPlansAvailable, "Nenhum plano disponível no momento", http.StatusNotFound)
	ErrServiceUnavailable = New(CodeServiceUnavailable, "Serviço temporariamente indisponível", http.StatusServiceUnavailable)
)

// MissingField reports an absent required input field.
func MissingField(field string) *AppError {
	return New(CodeMissingField, fmt.Sprintf("Campo obrigatório ausente: %s", field), http.StatusBadRequest)
}

// ValidationError reports request body validation failures. Required-field
// violations share the MISSING_FIELD code with query-parameter checks.
func ValidationError(details interface{}) *AppError {
	return New(CodeMissingField, "Dados obrigatórios ausentes ou inválidos", http.StatusBadRequest).WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Erro interno do servidor", http.StatusInternalServerError)
}

func ServiceUnavailable(err error) *AppError {
	return Wrap(err, CodeServiceUnavailable, ErrServiceUnavailable.Message, http.StatusServiceUnavailable)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
