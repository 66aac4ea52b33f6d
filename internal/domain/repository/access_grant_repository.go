package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// AccessGrantRepository define el puerto de persistencia para AccessGrant.
type AccessGrantRepository interface {
	Create(ctx context.Context, g *entity.AccessGrant) error
	// ListClientIDsByUser devuelve los IDs de empresas cliente con grant para el usuario.
	ListClientIDsByUser(ctx context.Context, userID string) ([]string, error)
	DeleteByUserAndClient(ctx context.Context, userID, clientID string) error
}
