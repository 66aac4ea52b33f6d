package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `t.id, t.number, t.seq, t.client_id, t.affiliate_id, t.created_by,
		t.assigned_to, t.subject, t.body, t.status, t.priority, t.created_at, t.updated_at`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.Number, &t.Seq, &t.ClientID, &t.AffiliateID, &t.CreatedBy,
		&t.AssignedTo, &t.Subject, &t.Body, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTicketRow(row pgx.Row) (*repository.TicketRow, error) {
	var r repository.TicketRow
	err := row.Scan(&r.ID, &r.Number, &r.Seq, &r.ClientID, &r.AffiliateID, &r.CreatedBy,
		&r.AssignedTo, &r.Subject, &r.Body, &r.Status, &r.Priority, &r.CreatedAt, &r.UpdatedAt,
		&r.ClientName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func ticketWhere(f repository.TicketFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("t.client_id", f.ClientIDs)
	b.addIn("t.affiliate_id", f.AffiliateIDs)
	if f.Status != "" {
		b.add("t.status = $%d", f.Status)
	}
	if f.Priority != "" {
		b.add("t.priority = $%d", f.Priority)
	}
	if f.AssignedTo != "" {
		b.add("t.assigned_to = $%d", f.AssignedTo)
	}
	return b
}

// NextSeq obtiene el siguiente valor de la secuencia de tickets.
func (r *TicketRepo) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('tickets_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next ticket seq: %w", err)
	}
	return seq, nil
}

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, number, seq, client_id, affiliate_id, created_by,
			assigned_to, subject, body, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Number, t.Seq, t.ClientID, t.AffiliateID, t.CreatedBy,
		t.AssignedTo, t.Subject, t.Body, t.Status, t.Priority, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return translateError("insert ticket", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID (nil si no existe).
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.id = $1`
	t, err := scanTicket(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// GetRowByID obtiene un ticket con el nombre del cliente (nil si no existe).
func (r *TicketRepo) GetRowByID(ctx context.Context, id string) (*repository.TicketRow, error) {
	query := `
		SELECT ` + ticketColumns + `, c.name
		FROM tickets t
		JOIN clients c ON c.id = t.client_id
		WHERE t.id = $1`
	row, err := scanTicketRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket row: %w", err)
	}
	return row, nil
}

// GetByNumber obtiene un ticket por su número visible (nil si no existe).
func (r *TicketRepo) GetByNumber(ctx context.Context, number string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.number = $1`
	t, err := scanTicket(r.q.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket by number: %w", err)
	}
	return t, nil
}

// List lista tickets con filtros y paginación.
func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter, limit, offset int) ([]*repository.TicketRow, error) {
	b := ticketWhere(f)
	query := `
		SELECT ` + ticketColumns + `, c.name
		FROM tickets t
		JOIN clients c ON c.id = t.client_id` + b.clause() +
		fmt.Sprintf(` ORDER BY t.created_at DESC, t.id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*repository.TicketRow
	for rows.Next() {
		row, err := scanTicketRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta tickets con los mismos filtros del listado.
func (r *TicketRepo) Count(ctx context.Context, f repository.TicketFilter) (int, error) {
	b := ticketWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets t`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return total, nil
}

// Update actualiza un ticket.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET subject = $2, body = $3, status = $4, priority = $5,
			assigned_to = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Subject, t.Body, t.Status, t.Priority, t.AssignedTo, t.UpdatedAt,
	)
	if err != nil {
		return translateError("update ticket", err)
	}
	return nil
}

// Delete elimina un ticket por ID.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
