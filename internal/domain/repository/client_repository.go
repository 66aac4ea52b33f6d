package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// ClientFilter filtros de listado de empresas cliente.
// ClientIDs nil = sin restricción de alcance; vacío = alcance vacío (cero filas).
type ClientFilter struct {
	ClientIDs []string
	Active    *bool
	Search    string // sobre name y tax_id
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Client, error)
	List(ctx context.Context, f ClientFilter, limit, offset int) ([]*entity.Client, error)
	Count(ctx context.Context, f ClientFilter) (int, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
