package repository

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// PolicyFilter filtros de listado de pólizas. Los campos de alcance (ClientIDs,
// AffiliateIDs) se combinan con AND con los filtros del caller.
type PolicyFilter struct {
	ClientIDs    []string
	AffiliateIDs []string
	Status       string
	Product      string
	StartFrom    *time.Time
	StartTo      *time.Time
}

// PolicyRow póliza con nombres de cliente y afiliado resueltos por JOIN.
type PolicyRow struct {
	entity.Policy
	ClientName    string
	AffiliateName string
}

// PolicyRepository define el puerto de persistencia para Policy.
type PolicyRepository interface {
	Create(ctx context.Context, p *entity.Policy) error
	GetByID(ctx context.Context, id string) (*entity.Policy, error)
	// GetRowByID como GetByID pero con nombres denormalizados.
	GetRowByID(ctx context.Context, id string) (*PolicyRow, error)
	GetByNumber(ctx context.Context, number string) (*entity.Policy, error)
	List(ctx context.Context, f PolicyFilter, limit, offset int) ([]*PolicyRow, error)
	Count(ctx context.Context, f PolicyFilter) (int, error)
	Update(ctx context.Context, p *entity.Policy) error
	Delete(ctx context.Context, id string) error
	// MarkExpired marca como vencidas las pólizas activas cuyo end_date ya pasó.
	// Devuelve la cantidad de filas afectadas (job de cron).
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
