package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/pkg/validate"
)

// Códigos de error del API.
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeConflict         = "CONFLICT"
	CodeUnexpected       = "UNEXPECTED"
)

// respondError traduce un error de dominio a la respuesta HTTP correspondiente.
// El detalle de errores inesperados no se expone al caller; queda en el log.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "validación fallida",
			Fields:  verr.Fields,
		})
	}
	var cerr *domain.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    CodeConflict,
			Message: cerr.Error(),
			Fields:  []domain.FieldViolation{{Field: cerr.Field, Message: "ya está en uso"}},
		})
	}
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthenticated, Message: "no autenticado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidationFailed, Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeUnexpected, Message: "error interno"})
}

// parseBody decodifica el cuerpo JSON en modo estricto (campos desconocidos se
// rechazan) y valida los tags del DTO. El error devuelto ya es de dominio:
// pasarlo a respondError.
func parseBody(c *fiber.Ctx, out any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return domain.NewValidationError("_", "cuerpo JSON inválido")
	}
	if fails := validate.Struct(out); len(fails) > 0 {
		fields := make([]domain.FieldViolation, 0, len(fails))
		for _, f := range fails {
			fields = append(fields, domain.FieldViolation{Field: f.Field, Message: f.Message})
		}
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// parsePage lee page y limit del query string. Un page explícito menor a 1 se
// rechaza, no se corrige; el limit fuera de rango se recorta en Normalize.
func parsePage(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, domain.NewValidationError("page", "debe ser un entero mayor o igual a 1")
		}
		p.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, domain.NewValidationError("limit", "debe ser un entero")
		}
		p.Limit = n
	}
	p.Normalize()
	return p, nil
}

// pathID valida el :id de la ruta antes de tocar el storage.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if f := validate.UUID("id", id); f != nil {
		return "", domain.NewValidationError(f.Field, f.Message)
	}
	return id, nil
}

// queryUUID lee un query param de identificador opcional. El formato se valida
// antes de tocar el storage; cadena vacía si el param no viene.
func queryUUID(c *fiber.Ctx, key string) (string, error) {
	raw := c.Query(key)
	if raw == "" {
		return "", nil
	}
	if f := validate.UUID(key, raw); f != nil {
		return "", domain.NewValidationError(f.Field, f.Message)
	}
	return raw, nil
}

// queryDate lee un query param de fecha opcional con formato 2006-01-02.
func queryDate(c *fiber.Ctx, key string) (string, error) {
	raw := c.Query(key)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", domain.NewValidationError(key, "debe tener formato YYYY-MM-DD")
	}
	return raw, nil
}

// queryBoolPtr interpreta un query bool opcional ("true"/"false"); nil si ausente.
func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
