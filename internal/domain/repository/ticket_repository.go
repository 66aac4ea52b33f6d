package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// TicketFilter filtros de listado de tickets.
type TicketFilter struct {
	ClientIDs    []string
	AffiliateIDs []string
	Status       string
	Priority     string
	AssignedTo   string
}

// TicketRow ticket con el nombre del cliente resuelto por JOIN.
type TicketRow struct {
	entity.Ticket
	ClientName string
}

// TicketRepository define el puerto de persistencia para Ticket.
type TicketRepository interface {
	// NextSeq obtiene el siguiente valor de la secuencia de tickets.
	NextSeq(ctx context.Context) (int64, error)
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// GetRowByID como GetByID pero con el nombre del cliente denormalizado.
	GetRowByID(ctx context.Context, id string) (*TicketRow, error)
	GetByNumber(ctx context.Context, number string) (*entity.Ticket, error)
	List(ctx context.Context, f TicketFilter, limit, offset int) ([]*TicketRow, error)
	Count(ctx context.Context, f TicketFilter) (int, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id string) error
}
