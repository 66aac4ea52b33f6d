package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// AffiliateFilter filtros de listado de afiliados. ClientIDs/AffiliateIDs nil =
// sin restricción; vacíos = alcance vacío (cero filas).
type AffiliateFilter struct {
	ClientIDs    []string
	AffiliateIDs []string
	Kind         string // titular, dependiente
	Active       *bool
	Search       string // sobre nombre y documento
}

// AffiliateRow afiliado con el nombre del cliente resuelto por JOIN.
type AffiliateRow struct {
	entity.Affiliate
	ClientName string
}

// AffiliateRepository define el puerto de persistencia para Affiliate.
type AffiliateRepository interface {
	Create(ctx context.Context, a *entity.Affiliate) error
	GetByID(ctx context.Context, id string) (*entity.Affiliate, error)
	// GetRowByID como GetByID pero con el nombre del cliente denormalizado.
	GetRowByID(ctx context.Context, id string) (*AffiliateRow, error)
	GetByClientAndDocument(ctx context.Context, clientID, documentID string) (*entity.Affiliate, error)
	// ListDependents devuelve los dependientes de un titular.
	ListDependents(ctx context.Context, primaryAffiliateID string) ([]*entity.Affiliate, error)
	List(ctx context.Context, f AffiliateFilter, limit, offset int) ([]*AffiliateRow, error)
	Count(ctx context.Context, f AffiliateFilter) (int, error)
	Update(ctx context.Context, a *entity.Affiliate) error
	Delete(ctx context.Context, id string) error
}
