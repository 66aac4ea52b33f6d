package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.ClaimRepository = (*ClaimRepo)(nil)

// ClaimRepo implementación de ClaimRepository (usable con pool o tx).
type ClaimRepo struct {
	q Querier
}

// NewClaimRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClaimRepository(q Querier) *ClaimRepo {
	return &ClaimRepo{q: q}
}

const claimColumns = `cl.id, cl.client_id, cl.affiliate_id, cl.policy_id, cl.amount,
		cl.status, cl.description, cl.incident_at, cl.reviewed_by, cl.reviewed_at,
		cl.review_note, cl.created_at, cl.updated_at`

func scanClaim(row pgx.Row) (*entity.Claim, error) {
	var c entity.Claim
	err := row.Scan(&c.ID, &c.ClientID, &c.AffiliateID, &c.PolicyID, &c.Amount,
		&c.Status, &c.Description, &c.IncidentAt, &c.ReviewedBy, &c.ReviewedAt,
		&c.ReviewNote, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClaimRow(row pgx.Row) (*repository.ClaimRow, error) {
	var r repository.ClaimRow
	var affiliateName *string
	err := row.Scan(&r.ID, &r.ClientID, &r.AffiliateID, &r.PolicyID, &r.Amount,
		&r.Status, &r.Description, &r.IncidentAt, &r.ReviewedBy, &r.ReviewedAt,
		&r.ReviewNote, &r.CreatedAt, &r.UpdatedAt,
		&r.ClientName, &affiliateName, &r.PolicyNumber)
	if err != nil {
		return nil, err
	}
	if affiliateName != nil {
		r.AffiliateName = *affiliateName
	}
	return &r, nil
}

func claimWhere(f repository.ClaimFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("cl.client_id", f.ClientIDs)
	b.addIn("cl.affiliate_id", f.AffiliateIDs)
	if f.PolicyID != "" {
		b.add("cl.policy_id = $%d", f.PolicyID)
	}
	if f.Status != "" {
		b.add("cl.status = $%d", f.Status)
	}
	if f.IncidentFrom != nil {
		b.add("cl.incident_at >= $%d", *f.IncidentFrom)
	}
	if f.IncidentTo != nil {
		b.add("cl.incident_at <= $%d", *f.IncidentTo)
	}
	return b
}

const claimJoin = `
		FROM claims cl
		JOIN clients c ON c.id = cl.client_id
		JOIN policies p ON p.id = cl.policy_id
		LEFT JOIN affiliates a ON a.id = cl.affiliate_id`

// Create persiste un nuevo siniestro.
func (r *ClaimRepo) Create(ctx context.Context, c *entity.Claim) error {
	query := `
		INSERT INTO claims (id, client_id, affiliate_id, policy_id, amount, status,
			description, incident_at, reviewed_by, reviewed_at, review_note,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ClientID, c.AffiliateID, c.PolicyID, c.Amount, c.Status,
		c.Description, c.IncidentAt, c.ReviewedBy, c.ReviewedAt, c.ReviewNote,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return translateError("insert claim", err)
	}
	return nil
}

// GetByID obtiene un siniestro por ID (nil si no existe).
func (r *ClaimRepo) GetByID(ctx context.Context, id string) (*entity.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims cl WHERE cl.id = $1`
	c, err := scanClaim(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

// GetRowByID obtiene un siniestro con nombres denormalizados (nil si no existe).
func (r *ClaimRepo) GetRowByID(ctx context.Context, id string) (*repository.ClaimRow, error) {
	query := `
		SELECT ` + claimColumns + `, c.name, a.first_name || ' ' || a.last_name, p.policy_number` +
		claimJoin + `
		WHERE cl.id = $1`
	row, err := scanClaimRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim row: %w", err)
	}
	return row, nil
}

// List lista siniestros con filtros y paginación.
func (r *ClaimRepo) List(ctx context.Context, f repository.ClaimFilter, limit, offset int) ([]*repository.ClaimRow, error) {
	b := claimWhere(f)
	query := `
		SELECT ` + claimColumns + `, c.name, a.first_name || ' ' || a.last_name, p.policy_number` +
		claimJoin + b.clause() +
		fmt.Sprintf(` ORDER BY cl.incident_at DESC, cl.id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()
	var list []*repository.ClaimRow
	for rows.Next() {
		row, err := scanClaimRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta siniestros con los mismos filtros del listado.
func (r *ClaimRepo) Count(ctx context.Context, f repository.ClaimFilter) (int, error) {
	b := claimWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM claims cl`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return total, nil
}

// Update actualiza un siniestro.
func (r *ClaimRepo) Update(ctx context.Context, c *entity.Claim) error {
	query := `
		UPDATE claims
		SET amount = $2, status = $3, description = $4, incident_at = $5,
			reviewed_by = $6, reviewed_at = $7, review_note = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Amount, c.Status, c.Description, c.IncidentAt,
		c.ReviewedBy, c.ReviewedAt, c.ReviewNote, c.UpdatedAt,
	)
	if err != nil {
		return translateError("update claim", err)
	}
	return nil
}

// Delete elimina un siniestro por ID.
func (r *ClaimRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	return nil
}
