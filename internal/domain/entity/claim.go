package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de siniestro.
const (
	ClaimStatusFiled    = "radicado"
	ClaimStatusInReview = "en_revision"
	ClaimStatusApproved = "aprobado"
	ClaimStatusRejected = "rechazado"
	ClaimStatusPaid     = "pagado"
)

// Claim representa un siniestro reportado sobre una póliza.
// La resolución (aprobar/rechazar) queda restringida al grupo senior de siniestros.
type Claim struct {
	ID          string
	ClientID    string
	AffiliateID *string
	PolicyID    string
	Amount      decimal.Decimal
	Status      string // ver constantes ClaimStatus*
	Description string
	IncidentAt  time.Time
	ReviewedBy  *string // user id del revisor
	ReviewedAt  *time.Time
	ReviewNote  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
