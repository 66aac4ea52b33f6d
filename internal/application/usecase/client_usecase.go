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

// ListClientsQuery filtros del listado de empresas cliente.
type ListClientsQuery struct {
	Active *bool
	Search string
}

// ClientUseCase casos de uso de empresas cliente.
type ClientUseCase struct {
	clients  repository.ClientRepository
	resolver *access.Resolver
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, resolver *access.Resolver) *ClientUseCase {
	return &ClientUseCase{clients: clients, resolver: resolver}
}

// List lista empresas cliente dentro del alcance del caller.
// Los afiliados no tienen esta funcionalidad (gate por rol, 403).
func (uc *ClientUseCase) List(ctx context.Context, caller access.Caller, q ListClientsQuery, page dto.PageRequest) (*dto.ClientListResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.ClientFilter{
		ClientIDs: scopedClientIDs(scope, ""),
		Active:    q.Active,
		Search:    q.Search,
	}
	total, err := uc.clients.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.clients.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toClientResponse(c))
	}
	return &dto.ClientListResponse{Clients: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene una empresa cliente. Fuera de alcance responde NotFound.
func (uc *ClientUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.ClientResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, c.ID, nil); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	resp := toClientResponse(c)
	return &resp, nil
}

// Create crea una empresa cliente (solo empleados de la correduría).
// La unicidad del NIT la garantiza el constraint de la tabla.
func (uc *ClientUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toClientResponse(c)
	return &resp, nil
}

// Update edición parcial: solo toca los campos presentes en el body.
func (uc *ClientUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, c.ID, nil); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = time.Now()
	if err := uc.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toClientResponse(c)
	return &resp, nil
}

// Delete elimina una empresa cliente (solo admin).
func (uc *ClientUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
