package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusPending = "pendiente"
	InvoiceStatusPaid    = "pagada"
	InvoiceStatusOverdue = "vencida"
	InvoiceStatusVoided  = "anulada"
)

// Invoice representa una factura de prima emitida a una empresa cliente.
type Invoice struct {
	ID        string
	ClientID  string
	PolicyID  *string
	Number    string // único en el sistema
	Amount    decimal.Decimal
	Status    string // ver constantes InvoiceStatus*
	IssuedAt  time.Time
	DueDate   time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
