package usecase

import (
	"time"

	"github.com/jhoicas/correduria-api/internal/application/access"
)

const dateLayout = "2006-01-02"

// scopedClientIDs combina (AND) el alcance resuelto con el clientId pedido por
// el caller. nil = sin restricción; slice vacío = alcance vacío (cero filas).
// Un clientId fuera de alcance produce alcance vacío, nunca un error: el
// listado responde vacío sin revelar si la empresa existe.
func scopedClientIDs(scope access.Scope, requested string) []string {
	if scope.All {
		if requested == "" {
			return nil
		}
		return []string{requested}
	}
	ids := scope.ClientIDs
	if ids == nil {
		ids = []string{}
	}
	if requested == "" {
		return ids
	}
	if scope.AllowsClient(requested) {
		return []string{requested}
	}
	return []string{}
}

// parseDate convierte una fecha ya validada con formato 2006-01-02.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

// parseDatePtr variante para filtros opcionales; cadena vacía devuelve nil.
func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseDate(s)
	return &t
}
