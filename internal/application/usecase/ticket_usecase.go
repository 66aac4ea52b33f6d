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
	"github.com/jhoicas/correduria-api/pkg/ticketref"
)

// ListTicketsQuery filtros del listado de tickets.
type ListTicketsQuery struct {
	ClientID   string
	Status     string
	Priority   string
	AssignedTo string
}

// TicketUseCase casos de uso de tickets de soporte.
type TicketUseCase struct {
	tickets    repository.TicketRepository
	clients    repository.ClientRepository
	affiliates repository.AffiliateRepository
	resolver   *access.Resolver
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(tickets repository.TicketRepository, clients repository.ClientRepository, affiliates repository.AffiliateRepository, resolver *access.Resolver) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, clients: clients, affiliates: affiliates, resolver: resolver}
}

// List lista tickets dentro del alcance del caller.
func (uc *TicketUseCase) List(ctx context.Context, caller access.Caller, q ListTicketsQuery, page dto.PageRequest) (*dto.TicketListResponse, error) {
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.TicketFilter{
		ClientIDs:    scopedClientIDs(scope, q.ClientID),
		AffiliateIDs: scope.AffiliateIDs,
		Status:       q.Status,
		Priority:     q.Priority,
		AssignedTo:   q.AssignedTo,
	}
	total, err := uc.tickets.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.tickets.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTicketResponse(r))
	}
	return &dto.TicketListResponse{Tickets: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene un ticket. Fuera de alcance responde NotFound.
func (uc *TicketUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.TicketResponse, error) {
	row, err := uc.tickets.GetRowByID(ctx, id)
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
	resp := toTicketResponse(row)
	return &resp, nil
}

// Create abre un ticket. El número visible se deriva de la secuencia interna.
// Los roles restringidos con una sola empresa en alcance pueden omitir clientId.
func (uc *TicketUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	clientID := in.ClientID
	if clientID == "" {
		if len(scope.ClientIDs) == 1 {
			clientID = scope.ClientIDs[0]
		} else {
			return nil, domain.NewValidationError("clientId", "es requerido")
		}
	} else if !scope.AllowsClient(clientID) {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
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
		if a == nil || a.ClientID != clientID {
			return nil, domain.NewValidationError("affiliateId", "debe referir a un afiliado de la misma empresa cliente")
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}

	seq, err := uc.tickets.NextSeq(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	t := &entity.Ticket{
		ID:          uuid.New().String(),
		Number:      ticketref.Encode(uint64(seq)),
		Seq:         seq,
		ClientID:    clientID,
		AffiliateID: affiliateID,
		CreatedBy:   caller.UserID,
		Subject:     in.Subject,
		Body:        in.Body,
		Status:      entity.TicketStatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	row, err := uc.tickets.GetRowByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	resp := toTicketResponse(row)
	return &resp, nil
}

// Update edición parcial de ticket. Los roles restringidos solo editan asunto
// y cuerpo; estado, prioridad y asignación son operación de la correduría.
func (uc *TicketUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if d, err := uc.resolver.CheckOwnership(ctx, caller, t.ClientID, t.AffiliateID); err != nil {
		return nil, err
	} else if derr := d.Err(); derr != nil {
		return nil, derr
	}
	if !caller.Role.IsBrokerEmployee() {
		if in.Status != nil || in.Priority != nil || in.AssignedTo.Set {
			return nil, domain.ErrForbidden
		}
	}
	if in.Subject != nil {
		t.Subject = *in.Subject
	}
	if in.Body != nil {
		t.Body = *in.Body
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssignedTo.Set {
		if in.AssignedTo.Null {
			t.AssignedTo = nil
		} else {
			v := in.AssignedTo.Value
			t.AssignedTo = &v
		}
	}
	t.UpdatedAt = time.Now()
	if err := uc.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	row, err := uc.tickets.GetRowByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	resp := toTicketResponse(row)
	return &resp, nil
}

// Delete elimina un ticket (solo empleados de la correduría).
func (uc *TicketUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if !caller.Role.IsBrokerEmployee() {
		return domain.ErrForbidden
	}
	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.tickets.Delete(ctx, id)
}

func toTicketResponse(r *repository.TicketRow) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          r.ID,
		Number:      r.Number,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		AffiliateID: r.AffiliateID,
		CreatedBy:   r.CreatedBy,
		AssignedTo:  r.AssignedTo,
		Subject:     r.Subject,
		Body:        r.Body,
		Status:      r.Status,
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
