package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/correduria-api/internal/domain"
)

// Campos en conflicto por nombre de constraint único. Los nombres siguen las
// migraciones de internal/db.
var uniqueConstraintFields = map[string]string{
	"clients_tax_id_key":             "taxId",
	"affiliates_client_document_key": "documentId",
	"agents_code_key":                "code",
	"employees_code_key":             "code",
	"employees_email_key":            "email",
	"policies_policy_number_key":     "policyNumber",
	"invoices_number_key":            "number",
	"tickets_number_key":             "number",
	"users_email_key":                "email",
	"invitations_token_key":          "token",
	"access_grants_user_client_key":  "clientId",
}

// translateError traduce errores de pgx a errores de dominio. Una violación de
// unicidad se convierte en ConflictError nombrando el campo; cualquier otro
// error se envuelve con la operación para dar contexto.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if field, ok := uniqueConstraintFields[pgErr.ConstraintName]; ok {
			return &domain.ConflictError{Field: field}
		}
		return &domain.ConflictError{Field: pgErr.ConstraintName}
	}
	if strings.Contains(err.Error(), "23505") {
		return &domain.ConflictError{Field: op}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// whereBuilder acumula condiciones y argumentos para armar cláusulas WHERE
// dinámicas con placeholders posicionales.
type whereBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición con un argumento; el %d del expr se sustituye por
// la posición del placeholder.
func (b *whereBuilder) add(expr string, val any) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// addIn restringe col a un conjunto de IDs. nil = sin restricción;
// slice vacío = conjunto vacío (ninguna fila califica).
func (b *whereBuilder) addIn(col string, ids []string) {
	if ids == nil {
		return
	}
	if len(ids) == 0 {
		b.conds = append(b.conds, "FALSE")
		return
	}
	b.add(col+" = ANY($%d)", ids)
}

// clause devuelve la cláusula WHERE completa (vacía si no hay condiciones).
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
