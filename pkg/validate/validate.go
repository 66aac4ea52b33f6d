// Package validate envuelve go-playground/validator para producir fallas de
// validación estructuradas: cada campo violado se reporta con su mensaje, no
// solo el primero.
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describe una violación de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	once sync.Once
	v    *validator.Validate
)

// instance devuelve el validador compartido con los tags JSON como nombre de campo.
func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return v
}

// Struct valida in contra sus tags `validate` y devuelve todas las violaciones.
// Un slice vacío significa entrada válida.
func Struct(in any) []FieldError {
	err := instance().Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

// UUID verifica el formato de un identificador. Devuelve la falla o nil.
func UUID(field, value string) *FieldError {
	if _, err := uuid.Parse(value); err != nil {
		return &FieldError{Field: field, Message: "debe ser un UUID válido"}
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser como mínimo %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("debe tener a lo sumo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}
