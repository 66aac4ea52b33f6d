package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `i.id, i.client_id, i.policy_id, i.number, i.amount, i.status,
		i.issued_at, i.due_date, i.paid_at, i.created_at, i.updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.ClientID, &inv.PolicyID, &inv.Number, &inv.Amount,
		&inv.Status, &inv.IssuedAt, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func scanInvoiceRow(row pgx.Row) (*repository.InvoiceRow, error) {
	var r repository.InvoiceRow
	err := row.Scan(&r.ID, &r.ClientID, &r.PolicyID, &r.Number, &r.Amount,
		&r.Status, &r.IssuedAt, &r.DueDate, &r.PaidAt, &r.CreatedAt, &r.UpdatedAt,
		&r.ClientName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func invoiceWhere(f repository.InvoiceFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("i.client_id", f.ClientIDs)
	if f.PolicyID != "" {
		b.add("i.policy_id = $%d", f.PolicyID)
	}
	if f.Status != "" {
		b.add("i.status = $%d", f.Status)
	}
	if f.DueFrom != nil {
		b.add("i.due_date >= $%d", *f.DueFrom)
	}
	if f.DueTo != nil {
		b.add("i.due_date <= $%d", *f.DueTo)
	}
	return b
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, client_id, policy_id, number, amount, status,
			issued_at, due_date, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.ClientID, inv.PolicyID, inv.Number, inv.Amount, inv.Status,
		inv.IssuedAt, inv.DueDate, inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return translateError("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (nil si no existe).
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetRowByID obtiene una factura con el nombre del cliente (nil si no existe).
func (r *InvoiceRepo) GetRowByID(ctx context.Context, id string) (*repository.InvoiceRow, error) {
	query := `
		SELECT ` + invoiceColumns + `, c.name
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.id = $1`
	row, err := scanInvoiceRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice row: %w", err)
	}
	return row, nil
}

// GetByNumber obtiene una factura por número (nil si no existe).
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.number = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return inv, nil
}

// List lista facturas con filtros y paginación.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter, limit, offset int) ([]*repository.InvoiceRow, error) {
	b := invoiceWhere(f)
	query := `
		SELECT ` + invoiceColumns + `, c.name
		FROM invoices i
		JOIN clients c ON c.id = i.client_id` + b.clause() +
		fmt.Sprintf(` ORDER BY i.issued_at DESC, i.id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*repository.InvoiceRow
	for rows.Next() {
		row, err := scanInvoiceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta facturas con los mismos filtros del listado.
func (r *InvoiceRepo) Count(ctx context.Context, f repository.InvoiceFilter) (int, error) {
	b := invoiceWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices i`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET amount = $2, status = $3, due_date = $4, paid_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Amount, inv.Status, inv.DueDate, inv.PaidAt, inv.UpdatedAt,
	)
	if err != nil {
		return translateError("update invoice", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// MarkOverdue marca como vencidas las facturas pendientes con due_date pasado.
func (r *InvoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE invoices SET status = $1, updated_at = $2
		WHERE status = $3 AND due_date < $2`,
		entity.InvoiceStatusOverdue, now, entity.InvoiceStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("mark invoices overdue: %w", err)
	}
	return tag.RowsAffected(), nil
}
