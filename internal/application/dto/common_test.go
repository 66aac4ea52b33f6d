package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/correduria-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalize: defaults y recorte de limit
// ──────────────────────────────────────────────────────────────────────────────

func TestPageRequest_Normalize_Defaults(t *testing.T) {
	var p dto.PageRequest
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestPageRequest_Normalize_RecortaLimit(t *testing.T) {
	p := dto.PageRequest{Page: 2, Limit: 500}
	p.Normalize()
	assert.Equal(t, 2, p.Page, "page válido no se toca")
	assert.Equal(t, dto.MaxLimit, p.Limit, "limit por encima del máximo se recorta, no se rechaza")

	p = dto.PageRequest{Page: 1, Limit: -3}
	p.Normalize()
	assert.Equal(t, dto.DefaultLimit, p.Limit)
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())

	p = dto.PageRequest{Page: 1, Limit: 50}
	assert.Equal(t, 0, p.Offset())
}

// ──────────────────────────────────────────────────────────────────────────────
// Metadatos de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestNewPagination_TotalPagesEsCeil(t *testing.T) {
	pg := dto.NewPagination(45, dto.PageRequest{Page: 2, Limit: 20})
	assert.Equal(t, 45, pg.Total)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 20, pg.Limit)
	assert.Equal(t, 3, pg.TotalPages, "45 filas / 20 por página = 3 páginas")
	assert.True(t, pg.HasMore, "en la página 2 de 3 quedan filas")
}

func TestNewPagination_UltimaPagina(t *testing.T) {
	pg := dto.NewPagination(45, dto.PageRequest{Page: 3, Limit: 20})
	assert.Equal(t, 3, pg.TotalPages)
	assert.False(t, pg.HasMore, "3*20 >= 45: no hay más")
}

func TestNewPagination_TotalExactoMultiplo(t *testing.T) {
	pg := dto.NewPagination(40, dto.PageRequest{Page: 2, Limit: 20})
	assert.Equal(t, 2, pg.TotalPages)
	assert.False(t, pg.HasMore)
}

func TestNewPagination_SinFilas(t *testing.T) {
	pg := dto.NewPagination(0, dto.PageRequest{Page: 1, Limit: 20})
	assert.Equal(t, 0, pg.TotalPages, "con cero filas totalPages es 0")
	assert.False(t, pg.HasMore)
}

// Página más allá del final: responde vacío con metadatos correctos, no error.
func TestNewPagination_PaginaMasAllaDelFinal(t *testing.T) {
	pg := dto.NewPagination(45, dto.PageRequest{Page: 9, Limit: 20})
	assert.Equal(t, 3, pg.TotalPages)
	assert.False(t, pg.HasMore)
}
