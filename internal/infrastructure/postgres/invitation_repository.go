package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación de InvitationRepository (usable con pool o tx).
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

const invitationColumns = `id, email, role, client_id, affiliate_id, token, status,
		invited_by, expires_at, accepted_at, created_at, updated_at`

func scanInvitation(row pgx.Row) (*entity.Invitation, error) {
	var inv entity.Invitation
	var role string
	err := row.Scan(&inv.ID, &inv.Email, &role, &inv.ClientID, &inv.AffiliateID,
		&inv.Token, &inv.Status, &inv.InvitedBy, &inv.ExpiresAt, &inv.AcceptedAt,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Role = entity.Role(role)
	return &inv, nil
}

func invitationWhere(f repository.InvitationFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("client_id", f.ClientIDs)
	if f.Status != "" {
		b.add("status = $%d", f.Status)
	}
	if f.Email != "" {
		b.add("lower(email) = lower($%d)", f.Email)
	}
	return b
}

// Create persiste una nueva invitación.
func (r *InvitationRepo) Create(ctx context.Context, inv *entity.Invitation) error {
	query := `
		INSERT INTO invitations (` + invitationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Email, string(inv.Role), inv.ClientID, inv.AffiliateID,
		inv.Token, inv.Status, inv.InvitedBy, inv.ExpiresAt, inv.AcceptedAt,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return translateError("insert invitation", err)
	}
	return nil
}

// GetByID obtiene una invitación por ID (nil si no existe).
func (r *InvitationRepo) GetByID(ctx context.Context, id string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	inv, err := scanInvitation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// GetByToken obtiene una invitación por su token (nil si no existe).
func (r *InvitationRepo) GetByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	inv, err := scanInvitation(r.q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation by token: %w", err)
	}
	return inv, nil
}

// GetPendingByEmail obtiene la invitación pendiente para un email (nil si no hay).
func (r *InvitationRepo) GetPendingByEmail(ctx context.Context, email string) (*entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE lower(email) = lower($1) AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`
	inv, err := scanInvitation(r.q.QueryRow(ctx, query, email, entity.InvitationStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending invitation: %w", err)
	}
	return inv, nil
}

// List lista invitaciones con filtros y paginación.
func (r *InvitationRepo) List(ctx context.Context, f repository.InvitationFilter, limit, offset int) ([]*entity.Invitation, error) {
	b := invitationWhere(f)
	query := `SELECT ` + invitationColumns + ` FROM invitations` + b.clause() +
		fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Count cuenta invitaciones con los mismos filtros del listado.
func (r *InvitationRepo) Count(ctx context.Context, f repository.InvitationFilter) (int, error) {
	b := invitationWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invitations`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count invitations: %w", err)
	}
	return total, nil
}

// Update actualiza una invitación.
func (r *InvitationRepo) Update(ctx context.Context, inv *entity.Invitation) error {
	query := `
		UPDATE invitations
		SET token = $2, status = $3, expires_at = $4, accepted_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Token, inv.Status, inv.ExpiresAt, inv.AcceptedAt, inv.UpdatedAt,
	)
	if err != nil {
		return translateError("update invitation", err)
	}
	return nil
}

// ExpirePending marca como expiradas las invitaciones pendientes vencidas.
func (r *InvitationRepo) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE invitations SET status = $1, updated_at = $2
		WHERE status = $3 AND expires_at < $2`,
		entity.InvitationStatusExpired, now, entity.InvitationStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("expire invitations: %w", err)
	}
	return tag.RowsAffected(), nil
}
