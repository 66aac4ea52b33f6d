package repository

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// InvoiceFilter filtros de listado de facturas.
type InvoiceFilter struct {
	ClientIDs []string
	PolicyID  string
	Status    string
	DueFrom   *time.Time
	DueTo     *time.Time
}

// InvoiceRow factura con el nombre del cliente resuelto por JOIN.
type InvoiceRow struct {
	entity.Invoice
	ClientName string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetRowByID como GetByID pero con el nombre del cliente denormalizado.
	GetRowByID(ctx context.Context, id string) (*InvoiceRow, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	List(ctx context.Context, f InvoiceFilter, limit, offset int) ([]*InvoiceRow, error)
	Count(ctx context.Context, f InvoiceFilter) (int, error)
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	// MarkOverdue marca como vencidas las facturas pendientes con due_date pasado.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
