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

// ListPoliciesQuery filtros del listado de pólizas.
type ListPoliciesQuery struct {
	ClientID  string
	Status    string
	Product   string
	StartFrom string
	StartTo   string
}

// PolicyUseCase casos de uso de pólizas.
type PolicyUseCase struct {
	policies   repository.PolicyRepository
	affiliates repository.AffiliateRepository
	agents     repository.AgentRepository
	resolver   *access.Resolver
}

// NewPolicyUseCase construye el caso de uso.
func NewPolicyUseCase(policies repository.PolicyRepository, affiliates repository.AffiliateRepository, agents repository.AgentRepository, resolver *access.Resolver) *PolicyUseCase {
	return &PolicyUseCase{policies: policies, affiliates: affiliates, agents: agents, resolver: resolver}
}

// List lista pólizas dentro del alcance del caller.
func (uc *PolicyUseCase) List(ctx context.Context, caller access.Caller, q ListPoliciesQuery, page dto.PageRequest) (*dto.PolicyListResponse, error) {
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.PolicyFilter{
		ClientIDs:    scopedClientIDs(scope, q.ClientID),
		AffiliateIDs: scope.AffiliateIDs,
		Status:       q.Status,
		Product:      q.Product,
		StartFrom:    parseDatePtr(q.StartFrom),
		StartTo:      parseDatePtr(q.StartTo),
	}
	total, err := uc.policies.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.policies.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.PolicyResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPolicyResponse(r))
	}
	return &dto.PolicyListResponse{Policies: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene una póliza. Fuera de alcance responde NotFound.
func (uc *PolicyUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.PolicyResponse, error) {
	row, err := uc.policies.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, row.ClientID, row.AffiliateID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	resp := toPolicyResponse(row)
	return &resp, nil
}

// Create emite una póliza (solo empleados de la correduría). Si trae titular,
// este debe pertenecer a la misma empresa cliente.
func (uc *PolicyUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreatePolicyRequest) (*dto.PolicyResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	if in.AffiliateID != nil {
		a, err := uc.affiliates.GetByID(ctx, *in.AffiliateID)
		if err != nil {
			return nil, err
		}
		if a == nil || a.ClientID != in.ClientID {
			return nil, domain.NewValidationError("affiliateId", "debe referir a un afiliado de la misma empresa cliente")
		}
	}
	if in.AgentID != nil {
		ag, err := uc.agents.GetByID(ctx, *in.AgentID)
		if err != nil {
			return nil, err
		}
		if ag == nil {
			return nil, domain.NewValidationError("agentId", "no existe")
		}
	}
	start := parseDate(in.StartDate)
	end := parseDate(in.EndDate)
	if !end.After(start) {
		return nil, domain.NewValidationError("endDate", "debe ser posterior a startDate")
	}

	now := time.Now()
	p := &entity.Policy{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		AffiliateID:  in.AffiliateID,
		AgentID:      in.AgentID,
		PolicyNumber: in.PolicyNumber,
		Product:      in.Product,
		Insurer:      in.Insurer,
		Premium:      in.Premium,
		Status:       entity.PolicyStatusActive,
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.policies.Create(ctx, p); err != nil {
		return nil, err
	}
	row, err := uc.policies.GetRowByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := toPolicyResponse(row)
	return &resp, nil
}

// Update edición parcial de póliza (solo empleados). null explícito en
// affiliateId o agentId desvincula la póliza.
func (uc *PolicyUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdatePolicyRequest) (*dto.PolicyResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	p, err := uc.policies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.AffiliateID.Set {
		if in.AffiliateID.Null {
			p.AffiliateID = nil
		} else {
			a, err := uc.affiliates.GetByID(ctx, in.AffiliateID.Value)
			if err != nil {
				return nil, err
			}
			if a == nil || a.ClientID != p.ClientID {
				return nil, domain.NewValidationError("affiliateId", "debe referir a un afiliado de la misma empresa cliente")
			}
			v := in.AffiliateID.Value
			p.AffiliateID = &v
		}
	}
	if in.AgentID.Set {
		if in.AgentID.Null {
			p.AgentID = nil
		} else {
			ag, err := uc.agents.GetByID(ctx, in.AgentID.Value)
			if err != nil {
				return nil, err
			}
			if ag == nil {
				return nil, domain.NewValidationError("agentId", "no existe")
			}
			v := in.AgentID.Value
			p.AgentID = &v
		}
	}
	if in.Insurer != nil {
		p.Insurer = *in.Insurer
	}
	if in.Premium != nil {
		p.Premium = *in.Premium
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		p.StartDate = parseDate(*in.StartDate)
	}
	if in.EndDate != nil {
		p.EndDate = parseDate(*in.EndDate)
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, domain.NewValidationError("endDate", "debe ser posterior a startDate")
	}
	p.UpdatedAt = time.Now()
	if err := uc.policies.Update(ctx, p); err != nil {
		return nil, err
	}
	row, err := uc.policies.GetRowByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := toPolicyResponse(row)
	return &resp, nil
}

// Delete elimina una póliza (solo empleados).
func (uc *PolicyUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	p, err := uc.policies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.policies.Delete(ctx, id)
}

func toPolicyResponse(r *repository.PolicyRow) dto.PolicyResponse {
	return dto.PolicyResponse{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		AffiliateID:   r.AffiliateID,
		AffiliateName: r.AffiliateName,
		AgentID:       r.AgentID,
		PolicyNumber:  r.PolicyNumber,
		Product:       r.Product,
		Insurer:       r.Insurer,
		Premium:       r.Premium,
		Status:        r.Status,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
