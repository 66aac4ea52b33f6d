package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest alta de factura de prima.
type CreateInvoiceRequest struct {
	ClientID string          `json:"clientId" validate:"required,uuid"`
	PolicyID *string         `json:"policyId" validate:"omitempty,uuid"`
	Number   string          `json:"number" validate:"required,min=3,max=40"`
	Amount   decimal.Decimal `json:"amount"`
	IssuedAt string          `json:"issuedAt" validate:"required,datetime=2006-01-02"`
	DueDate  string          `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

// UpdateInvoiceRequest edición parcial de factura.
type UpdateInvoiceRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Status  *string          `json:"status" validate:"omitempty,oneof=pendiente pagada vencida anulada"`
	DueDate *string          `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	PaidAt  Optional[string] `json:"paidAt"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateInvoiceRequest) HasChanges() bool {
	return r.Amount != nil || r.Status != nil || r.DueDate != nil || r.PaidAt.Set
}

// InvoiceResponse DTO plano de factura con el nombre del cliente denormalizado.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId"`
	ClientName string          `json:"clientName"`
	PolicyID   *string         `json:"policyId,omitempty"`
	Number     string          `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	IssuedAt   time.Time       `json:"issuedAt"`
	DueDate    time.Time       `json:"dueDate"`
	PaidAt     *time.Time      `json:"paidAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Pagination Pagination        `json:"pagination"`
}
