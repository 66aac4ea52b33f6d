package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePolicyRequest alta de póliza.
type CreatePolicyRequest struct {
	ClientID     string          `json:"clientId" validate:"required,uuid"`
	AffiliateID  *string         `json:"affiliateId" validate:"omitempty,uuid"`
	AgentID      *string         `json:"agentId" validate:"omitempty,uuid"`
	PolicyNumber string          `json:"policyNumber" validate:"required,min=3,max=40"`
	Product      string          `json:"product" validate:"required,oneof=salud vida auto hogar"`
	Insurer      string          `json:"insurer" validate:"required,min=2,max=150"`
	Premium      decimal.Decimal `json:"premium"`
	StartDate    string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string          `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// UpdatePolicyRequest edición parcial de póliza.
type UpdatePolicyRequest struct {
	AffiliateID Optional[string] `json:"affiliateId"`
	AgentID     Optional[string] `json:"agentId"`
	Insurer     *string          `json:"insurer" validate:"omitempty,min=2,max=150"`
	Premium     *decimal.Decimal `json:"premium"`
	Status      *string          `json:"status" validate:"omitempty,oneof=activa suspendida vencida cancelada"`
	StartDate   *string          `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdatePolicyRequest) HasChanges() bool {
	return r.AffiliateID.Set || r.AgentID.Set || r.Insurer != nil ||
		r.Premium != nil || r.Status != nil || r.StartDate != nil || r.EndDate != nil
}

// PolicyResponse DTO plano de póliza con nombres denormalizados.
type PolicyResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	AffiliateID   *string         `json:"affiliateId,omitempty"`
	AffiliateName string          `json:"affiliateName,omitempty"`
	AgentID       *string         `json:"agentId,omitempty"`
	PolicyNumber  string          `json:"policyNumber"`
	Product       string          `json:"product"`
	Insurer       string          `json:"insurer"`
	Premium       decimal.Decimal `json:"premium"`
	Status        string          `json:"status"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PolicyListResponse listado paginado.
type PolicyListResponse struct {
	Policies   []PolicyResponse `json:"policies"`
	Pagination Pagination       `json:"pagination"`
}
