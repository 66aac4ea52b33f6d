package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// AgentFilter filtros de listado de agentes.
type AgentFilter struct {
	Active *bool
	Search string // sobre nombre y código
}

// AgentRepository define el puerto de persistencia para Agent.
type AgentRepository interface {
	Create(ctx context.Context, a *entity.Agent) error
	GetByID(ctx context.Context, id string) (*entity.Agent, error)
	GetByCode(ctx context.Context, code string) (*entity.Agent, error)
	List(ctx context.Context, f AgentFilter, limit, offset int) ([]*entity.Agent, error)
	Count(ctx context.Context, f AgentFilter) (int, error)
	Update(ctx context.Context, a *entity.Agent) error
	Delete(ctx context.Context, id string) error
}
