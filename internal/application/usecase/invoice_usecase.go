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

// ListInvoicesQuery filtros del listado de facturas.
type ListInvoicesQuery struct {
	ClientID string
	PolicyID string
	Status   string
	DueFrom  string
	DueTo    string
}

// InvoiceUseCase casos de uso de facturación de primas.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	policies repository.PolicyRepository
	resolver *access.Resolver
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, clients repository.ClientRepository, policies repository.PolicyRepository, resolver *access.Resolver) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, clients: clients, policies: policies, resolver: resolver}
}

// List lista facturas dentro del alcance del caller. Los afiliados no ven
// facturación (gate por rol).
func (uc *InvoiceUseCase) List(ctx context.Context, caller access.Caller, q ListInvoicesQuery, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.InvoiceFilter{
		ClientIDs: scopedClientIDs(scope, q.ClientID),
		PolicyID:  q.PolicyID,
		Status:    q.Status,
		DueFrom:   parseDatePtr(q.DueFrom),
		DueTo:     parseDatePtr(q.DueTo),
	}
	total, err := uc.invoices.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.invoices.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInvoiceResponse(r))
	}
	return &dto.InvoiceListResponse{Invoices: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene una factura. Fuera de alcance responde NotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.InvoiceResponse, error) {
	if caller.Role.IsAffiliate() {
		return nil, domain.ErrForbidden
	}
	row, err := uc.invoices.GetRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, row.ClientID, nil); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	resp := toInvoiceResponse(row)
	return &resp, nil
}

// Create emite una factura (solo empleados de la correduría). Si referencia
// póliza, debe pertenecer a la misma empresa cliente.
func (uc *InvoiceUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.PolicyID != nil {
		p, err := uc.policies.GetByID(ctx, *in.PolicyID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.ClientID != in.ClientID {
			return nil, domain.NewValidationError("policyId", "debe referir a una póliza de la misma empresa cliente")
		}
	}
	now := time.Now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		PolicyID:  in.PolicyID,
		Number:    in.Number,
		Amount:    in.Amount,
		Status:    entity.InvoiceStatusPending,
		IssuedAt:  parseDate(in.IssuedAt),
		DueDate:   parseDate(in.DueDate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	row, err := uc.invoices.GetRowByID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(row)
	return &resp, nil
}

// Update edición parcial de factura (solo empleados). Marcar status=pagada sin
// paidAt explícito estampa la fecha actual; null explícito en paidAt la limpia.
func (uc *InvoiceUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !caller.Role.IsBrokerEmployee() {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount != nil {
		inv.Amount = *in.Amount
	}
	if in.DueDate != nil {
		inv.DueDate = parseDate(*in.DueDate)
	}
	if in.PaidAt.Set {
		if in.PaidAt.Null {
			inv.PaidAt = nil
		} else {
			if _, err := time.Parse(dateLayout, in.PaidAt.Value); err != nil {
				return nil, domain.NewValidationError("paidAt", "debe tener formato YYYY-MM-DD")
			}
			inv.PaidAt = parseDatePtr(in.PaidAt.Value)
		}
	}
	if in.Status != nil {
		inv.Status = *in.Status
		if inv.Status == entity.InvoiceStatusPaid && inv.PaidAt == nil {
			now := time.Now()
			inv.PaidAt = &now
		}
	}
	inv.UpdatedAt = time.Now()
	if err := uc.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	row, err := uc.invoices.GetRowByID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(row)
	return &resp, nil
}

// Delete elimina una factura (solo empleados).
func (uc *InvoiceUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoices.Delete(ctx, id)
}

func toInvoiceResponse(r *repository.InvoiceRow) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:         r.ID,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		PolicyID:   r.PolicyID,
		Number:     r.Number,
		Amount:     r.Amount,
		Status:     r.Status,
		IssuedAt:   r.IssuedAt,
		DueDate:    r.DueDate,
		PaidAt:     r.PaidAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
