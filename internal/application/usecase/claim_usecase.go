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

// ListClaimsQuery filtros del listado de siniestros.
type ListClaimsQuery struct {
	ClientID     string
	PolicyID     string
	Status       string
	IncidentFrom string
	IncidentTo   string
}

// Transiciones válidas de estado de siniestro.
var claimTransitions = map[string][]string{
	entity.ClaimStatusFiled:    {entity.ClaimStatusInReview},
	entity.ClaimStatusInReview: {entity.ClaimStatusApproved, entity.ClaimStatusRejected},
	entity.ClaimStatusApproved: {entity.ClaimStatusPaid},
}

func claimTransitionAllowed(from, to string) bool {
	for _, s := range claimTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ClaimUseCase casos de uso de siniestros.
type ClaimUseCase struct {
	claims     repository.ClaimRepository
	policies   repository.PolicyRepository
	affiliates repository.AffiliateRepository
	resolver   *access.Resolver
}

// NewClaimUseCase construye el caso de uso.
func NewClaimUseCase(claims repository.ClaimRepository, policies repository.PolicyRepository, affiliates repository.AffiliateRepository, resolver *access.Resolver) *ClaimUseCase {
	return &ClaimUseCase{claims: claims, policies: policies, affiliates: affiliates, resolver: resolver}
}

// List lista siniestros dentro del alcance del caller.
func (uc *ClaimUseCase) List(ctx context.Context, caller access.Caller, q ListClaimsQuery, page dto.PageRequest) (*dto.ClaimListResponse, error) {
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.ClaimFilter{
		ClientIDs:    scopedClientIDs(scope, q.ClientID),
		AffiliateIDs: scope.AffiliateIDs,
		PolicyID:     q.PolicyID,
		Status:       q.Status,
		IncidentFrom: parseDatePtr(q.IncidentFrom),
		IncidentTo:   parseDatePtr(q.IncidentTo),
	}
	total, err := uc.claims.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.claims.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClaimResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toClaimResponse(r))
	}
	return &dto.ClaimListResponse{Claims: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene un siniestro. Fuera de alcance responde NotFound.
func (uc *ClaimUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.ClaimResponse, error) {
	row, err := uc.claims.GetRowByID(ctx, id)
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
	resp := toClaimResponse(row)
	return &resp, nil
}

// Create radica un siniestro sobre una póliza dentro del alcance del caller.
// La empresa cliente se deriva de la póliza. Un afiliado radica siempre a su
// propio nombre; el afiliado indicado debe pertenecer a la misma empresa.
func (uc *ClaimUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateClaimRequest) (*dto.ClaimResponse, error) {
	p, err := uc.policies.GetByID(ctx, in.PolicyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	// La titularidad se verifica contra el afiliado de la póliza: un afiliado
	// puede radicar sobre sus propias pólizas y las de sus dependientes.
	if d, err := uc.resolver.CheckOwnership(ctx, caller, p.ClientID, p.AffiliateID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}

	affiliateID := in.AffiliateID
	if caller.Role.IsAffiliate() {
		own := caller.AffiliateID
		affiliateID = &own
	} else if affiliateID != nil {
		a, err := uc.affiliates.GetByID(ctx, *affiliateID)
		if err != nil {
			return nil, err
		}
		if a == nil || a.ClientID != p.ClientID {
			return nil, domain.NewValidationError("affiliateId", "debe referir a un afiliado de la misma empresa cliente")
		}
	}

	now := time.Now()
	c := &entity.Claim{
		ID:          uuid.New().String(),
		ClientID:    p.ClientID,
		AffiliateID: affiliateID,
		PolicyID:    p.ID,
		Amount:      in.Amount,
		Status:      entity.ClaimStatusFiled,
		Description: in.Description,
		IncidentAt:  parseDate(in.IncidentAt),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.claims.Create(ctx, c); err != nil {
		return nil, err
	}
	row, err := uc.claims.GetRowByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toClaimResponse(row)
	return &resp, nil
}

// Update edición parcial de los datos del siniestro. Solo mientras no esté
// resuelto; la resolución se cambia únicamente vía Review.
func (uc *ClaimUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateClaimRequest) (*dto.ClaimResponse, error) {
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	c, err := uc.claims.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, c.ClientID, c.AffiliateID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	if c.Status != entity.ClaimStatusFiled && c.Status != entity.ClaimStatusInReview {
		return nil, domain.ErrInvalidStatus
	}
	if in.Amount != nil {
		c.Amount = *in.Amount
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.IncidentAt != nil {
		c.IncidentAt = parseDate(*in.IncidentAt)
	}
	c.UpdatedAt = time.Now()
	if err := uc.claims.Update(ctx, c); err != nil {
		return nil, err
	}
	row, err := uc.claims.GetRowByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toClaimResponse(row)
	return &resp, nil
}

// Review resuelve un siniestro. Restringido al grupo senior de siniestros;
// las transiciones fuera del flujo radicado→en_revision→aprobado/rechazado→pagado
// se rechazan.
func (uc *ClaimUseCase) Review(ctx context.Context, caller access.Caller, id string, in dto.ReviewClaimRequest) (*dto.ClaimResponse, error) {
	if !caller.Role.IsSeniorClaims() {
		return nil, domain.ErrForbidden
	}
	c, err := uc.claims.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !claimTransitionAllowed(c.Status, in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	now := time.Now()
	c.Status = in.Status
	c.ReviewedBy = &caller.UserID
	c.ReviewedAt = &now
	if in.Note != "" {
		c.ReviewNote = in.Note
	}
	c.UpdatedAt = now
	if err := uc.claims.Update(ctx, c); err != nil {
		return nil, err
	}
	row, err := uc.claims.GetRowByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toClaimResponse(row)
	return &resp, nil
}

// Delete elimina un siniestro (solo empleados de la correduría).
func (uc *ClaimUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	c, err := uc.claims.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.claims.Delete(ctx, id)
}

func toClaimResponse(r *repository.ClaimRow) dto.ClaimResponse {
	return dto.ClaimResponse{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		AffiliateID:   r.AffiliateID,
		AffiliateName: r.AffiliateName,
		PolicyID:      r.PolicyID,
		PolicyNumber:  r.PolicyNumber,
		Amount:        r.Amount,
		Status:        r.Status,
		Description:   r.Description,
		IncidentAt:    r.IncidentAt,
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		ReviewNote:    r.ReviewNote,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
