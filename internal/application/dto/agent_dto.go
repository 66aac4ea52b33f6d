package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAgentRequest alta de agente comercial.
type CreateAgentRequest struct {
	Code           string          `json:"code" validate:"required,min=2,max=20"`
	FirstName      string          `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string          `json:"lastName" validate:"required,min=2,max=100"`
	Email          string          `json:"email" validate:"required,email"`
	Phone          string          `json:"phone" validate:"max=30"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// UpdateAgentRequest edición parcial de agente.
type UpdateAgentRequest struct {
	FirstName      *string          `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName       *string          `json:"lastName" validate:"omitempty,min=2,max=100"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Phone          Optional[string] `json:"phone"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
	Active         *bool            `json:"active"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateAgentRequest) HasChanges() bool {
	return r.FirstName != nil || r.LastName != nil || r.Email != nil ||
		r.Phone.Set || r.CommissionRate != nil || r.Active != nil
}

// AgentResponse DTO plano de agente.
type AgentResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AgentListResponse listado paginado.
type AgentListResponse struct {
	Agents     []AgentResponse `json:"agents"`
	Pagination Pagination      `json:"pagination"`
}
