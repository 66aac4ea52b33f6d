package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// ListAgentsQuery filtros del listado de agentes.
type ListAgentsQuery struct {
	Active *bool
	Search string
}

// AgentUseCase casos de uso de agentes comerciales (solo empleados).
type AgentUseCase struct {
	agents repository.AgentRepository
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(agents repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{agents: agents}
}

// List lista agentes. Funcionalidad exclusiva de empleados (gate por rol).
func (uc *AgentUseCase) List(ctx context.Context, caller access.Caller, q ListAgentsQuery, page dto.PageRequest) (*dto.AgentListResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	f := repository.AgentFilter{Active: q.Active, Search: q.Search}
	total, err := uc.agents.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.agents.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAgentResponse(a))
	}
	return &dto.AgentListResponse{Agents: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene un agente.
func (uc *AgentUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.AgentResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	a, err := uc.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAgentResponse(a)
	return &resp, nil
}

// Create crea un agente. La unicidad del código la garantiza el constraint.
func (uc *AgentUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	a := &entity.Agent{
		ID:             uuid.New().String(),
		Code:           in.Code,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		CommissionRate: in.CommissionRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.agents.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := toAgentResponse(a)
	return &resp, nil
}

// Update edición parcial de agente.
func (uc *AgentUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	a, err := uc.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		a.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		a.LastName = *in.LastName
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.Phone.Set {
		if in.Phone.Null {
			a.Phone = ""
		} else {
			a.Phone = in.Phone.Value
		}
	}
	if in.CommissionRate != nil {
		a.CommissionRate = *in.CommissionRate
	}
	if in.Active != nil {
		a.Active = *in.Active
	}
	a.UpdatedAt = time.Now()
	if err := uc.agents.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := toAgentResponse(a)
	return &resp, nil
}

// Delete elimina un agente.
func (uc *AgentUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	a, err := uc.agents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.agents.Delete(ctx, id)
}

func toAgentResponse(a *entity.Agent) dto.AgentResponse {
	return dto.AgentResponse{
		ID:             a.ID,
		Code:           a.Code,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		CommissionRate: a.CommissionRate,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
