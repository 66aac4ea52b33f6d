package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClaimRequest radicación de siniestro.
type CreateClaimRequest struct {
	PolicyID    string          `json:"policyId" validate:"required,uuid"`
	AffiliateID *string         `json:"affiliateId" validate:"omitempty,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,min=10,max=2000"`
	IncidentAt  string          `json:"incidentAt" validate:"required,datetime=2006-01-02"`
}

// UpdateClaimRequest edición parcial de siniestro (sin cambiar resolución).
type UpdateClaimRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" validate:"omitempty,min=10,max=2000"`
	IncidentAt  *string          `json:"incidentAt" validate:"omitempty,datetime=2006-01-02"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateClaimRequest) HasChanges() bool {
	return r.Amount != nil || r.Description != nil || r.IncidentAt != nil
}

// ReviewClaimRequest resolución de siniestro (grupo senior de siniestros).
type ReviewClaimRequest struct {
	Status string `json:"status" validate:"required,oneof=en_revision aprobado rechazado pagado"`
	Note   string `json:"note" validate:"max=2000"`
}

// ClaimResponse DTO plano de siniestro con nombres denormalizados.
type ClaimResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	AffiliateID   *string         `json:"affiliateId,omitempty"`
	AffiliateName string          `json:"affiliateName,omitempty"`
	PolicyID      string          `json:"policyId"`
	PolicyNumber  string          `json:"policyNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	IncidentAt    time.Time       `json:"incidentAt"`
	ReviewedBy    *string         `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
	ReviewNote    string          `json:"reviewNote,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ClaimListResponse listado paginado.
type ClaimListResponse struct {
	Claims     []ClaimResponse `json:"claims"`
	Pagination Pagination      `json:"pagination"`
}
