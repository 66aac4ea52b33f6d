package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	Role   entity.Role
	Status string
	Search string // sobre nombre y email
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, f UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, f UserFilter) (int, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
