package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre tanto "no existe" como "fuera del alcance del caller": por
// diseño ambos casos son indistinguibles para no filtrar existencia de recursos.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidStatus   = errors.New("transición de estado inválida")
)

// FieldViolation una violación de validación sobre un campo concreto.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones de una petición.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación fallida en %d campo(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con una sola violación.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldViolation{{Field: field, Message: message}}}
}

// ConflictError indica una violación de unicidad nombrando el campo en conflicto.
// Envuelve ErrConflict.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ya existe un registro con ese %s", e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
