package repository

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// InvitationFilter filtros de listado de invitaciones.
type InvitationFilter struct {
	ClientIDs []string
	Status    string
	Email     string
}

// InvitationRepository define el puerto de persistencia para Invitation.
type InvitationRepository interface {
	Create(ctx context.Context, inv *entity.Invitation) error
	GetByID(ctx context.Context, id string) (*entity.Invitation, error)
	GetByToken(ctx context.Context, token string) (*entity.Invitation, error)
	GetPendingByEmail(ctx context.Context, email string) (*entity.Invitation, error)
	List(ctx context.Context, f InvitationFilter, limit, offset int) ([]*entity.Invitation, error)
	Count(ctx context.Context, f InvitationFilter) (int, error)
	Update(ctx context.Context, inv *entity.Invitation) error
	// ExpirePending marca como expiradas las invitaciones pendientes vencidas.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}
