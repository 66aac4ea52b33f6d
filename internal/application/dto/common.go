package dto

import "github.com/jhoicas/correduria-api/internal/domain"

// Límites de paginación. El limit se recorta en servidor; un page < 1 explícito
// se rechaza, no se corrige.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest paginación para listados. Cero significa "ausente" (se aplica default).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica defaults y recorta limit a [1,MaxLimit]. Un page negativo o
// cero enviado explícitamente debe rechazarse antes, en el parseo del handler;
// aquí cero se trata como ausente.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset calcula el desplazamiento de la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// NewPagination arma los metadatos: totalPages = ceil(total/limit); con cero
// filas totalPages es 0 y hasMore false.
func NewPagination(total int, p PageRequest) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasMore:    p.Page*p.Limit < total,
	}
}

// ErrorResponse cuerpo de error HTTP. Fields solo viene en fallas de validación.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []domain.FieldViolation `json:"fields,omitempty"`
}
