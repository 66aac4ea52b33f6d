package repository

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// ClaimFilter filtros de listado de siniestros.
type ClaimFilter struct {
	ClientIDs    []string
	AffiliateIDs []string
	PolicyID     string
	Status       string
	IncidentFrom *time.Time
	IncidentTo   *time.Time
}

// ClaimRow siniestro con nombres y número de póliza resueltos por JOIN.
type ClaimRow struct {
	entity.Claim
	ClientName    string
	AffiliateName string
	PolicyNumber  string
}

// ClaimRepository define el puerto de persistencia para Claim.
type ClaimRepository interface {
	Create(ctx context.Context, c *entity.Claim) error
	GetByID(ctx context.Context, id string) (*entity.Claim, error)
	// GetRowByID como GetByID pero con nombres denormalizados.
	GetRowByID(ctx context.Context, id string) (*ClaimRow, error)
	List(ctx context.Context, f ClaimFilter, limit, offset int) ([]*ClaimRow, error)
	Count(ctx context.Context, f ClaimFilter) (int, error)
	Update(ctx context.Context, c *entity.Claim) error
	Delete(ctx context.Context, id string) error
}
