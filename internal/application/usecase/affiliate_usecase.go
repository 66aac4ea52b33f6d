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

// ListAffiliatesQuery filtros del listado de afiliados.
type ListAffiliatesQuery struct {
	ClientID string
	Kind     string
	Active   *bool
	Search   string
}

// AffiliateUseCase casos de uso de afiliados.
type AffiliateUseCase struct {
	affiliates repository.AffiliateRepository
	clients    repository.ClientRepository
	resolver   *access.Resolver
}

// NewAffiliateUseCase construye el caso de uso.
func NewAffiliateUseCase(affiliates repository.AffiliateRepository, clients repository.ClientRepository, resolver *access.Resolver) *AffiliateUseCase {
	return &AffiliateUseCase{affiliates: affiliates, clients: clients, resolver: resolver}
}

// List lista afiliados dentro del alcance del caller. El alcance se combina
// con AND con los filtros pedidos; nunca amplía lo que el caller puede ver.
func (uc *AffiliateUseCase) List(ctx context.Context, caller access.Caller, q ListAffiliatesQuery, page dto.PageRequest) (*dto.AffiliateListResponse, error) {
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.AffiliateFilter{
		ClientIDs:    scopedClientIDs(scope, q.ClientID),
		AffiliateIDs: scope.AffiliateIDs,
		Kind:         q.Kind,
		Active:       q.Active,
		Search:       q.Search,
	}
	total, err := uc.affiliates.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.affiliates.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.AffiliateResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAffiliateResponse(r))
	}
	return &dto.AffiliateListResponse{Affiliates: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene un afiliado. Fuera de alcance responde NotFound.
func (uc *AffiliateUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.AffiliateResponse, error) {
	row, err := uc.affiliates.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, row.ClientID, &row.ID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	resp := toAffiliateResponse(row)
	return &resp, nil
}

// Create crea un afiliado. Reglas:
//   - un dependiente exige primaryAffiliateId que resuelva a un titular del mismo cliente;
//   - un titular no lleva primaryAffiliateId;
//   - la unicidad (cliente, documento) la garantiza el constraint de la tabla.
func (uc *AffiliateUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateAffiliateRequest) (*dto.AffiliateResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, in.ClientID, nil); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	switch in.Kind {
	case entity.AffiliateKindDependent:
		if in.PrimaryAffiliateID == nil {
			return nil, domain.NewValidationError("primaryAffiliateId", "es requerido para dependientes")
		}
		primary, err := uc.affiliates.GetByID(ctx, *in.PrimaryAffiliateID)
		if err != nil {
			return nil, err
		}
		if primary == nil || primary.ClientID != in.ClientID || primary.Kind != entity.AffiliateKindOwner {
			return nil, domain.NewValidationError("primaryAffiliateId", "debe referir a un titular del mismo cliente")
		}
	case entity.AffiliateKindOwner:
		if in.PrimaryAffiliateID != nil {
			return nil, domain.NewValidationError("primaryAffiliateId", "no aplica para titulares")
		}
	}

	now := time.Now()
	a := &entity.Affiliate{
		ID:                 uuid.New().String(),
		ClientID:           in.ClientID,
		Kind:               in.Kind,
		PrimaryAffiliateID: in.PrimaryAffiliateID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		DocumentID:         in.DocumentID,
		Email:              in.Email,
		Phone:              in.Phone,
		BirthDate:          parseDatePtr(in.BirthDate),
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.affiliates.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := toAffiliateResponse(&repository.AffiliateRow{Affiliate: *a, ClientName: client.Name})
	return &resp, nil
}

// Update edición parcial: campos ausentes no se tocan; null explícito limpia
// los campos anulables.
func (uc *AffiliateUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateAffiliateRequest) (*dto.AffiliateResponse, error) {
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	row, err := uc.affiliates.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, row.ClientID, &row.ID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	// Los afiliados solo editan datos de contacto propios, nunca el flag active.
	if caller.Role.IsAffiliate() && in.Active != nil {
		return nil, domain.ErrForbidden
	}

	a := row.Affiliate
	if in.FirstName != nil {
		a.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		a.LastName = *in.LastName
	}
	if in.Email.Set {
		if in.Email.Null {
			a.Email = ""
		} else {
			a.Email = in.Email.Value
		}
	}
	if in.Phone.Set {
		if in.Phone.Null {
			a.Phone = ""
		} else {
			a.Phone = in.Phone.Value
		}
	}
	if in.BirthDate.Set {
		if in.BirthDate.Null {
			a.BirthDate = nil
		} else {
			if _, err := time.Parse(dateLayout, in.BirthDate.Value); err != nil {
				return nil, domain.NewValidationError("birthDate", "debe tener formato YYYY-MM-DD")
			}
			a.BirthDate = parseDatePtr(in.BirthDate.Value)
		}
	}
	if in.Active != nil {
		a.Active = *in.Active
	}
	a.UpdatedAt = time.Now()
	if err := uc.affiliates.Update(ctx, &a); err != nil {
		return nil, err
	}
	resp := toAffiliateResponse(&repository.AffiliateRow{Affiliate: a, ClientName: row.ClientName})
	return &resp, nil
}

// Delete elimina un afiliado (solo empleados de la correduría).
func (uc *AffiliateUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	a, err := uc.affiliates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.affiliates.Delete(ctx, id)
}

func toAffiliateResponse(r *repository.AffiliateRow) dto.AffiliateResponse {
	return dto.AffiliateResponse{
		ID:                 r.ID,
		ClientID:           r.ClientID,
		ClientName:         r.ClientName,
		Kind:               r.Kind,
		PrimaryAffiliateID: r.PrimaryAffiliateID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		DocumentID:         r.DocumentID,
		Email:              r.Email,
		Phone:              r.Phone,
		BirthDate:          r.BirthDate,
		Active:             r.Active,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
