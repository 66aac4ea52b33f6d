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

var _ repository.PolicyRepository = (*PolicyRepo)(nil)

// PolicyRepo implementación de PolicyRepository (usable con pool o tx).
type PolicyRepo struct {
	q Querier
}

// NewPolicyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPolicyRepository(q Querier) *PolicyRepo {
	return &PolicyRepo{q: q}
}

const policyColumns = `p.id, p.client_id, p.affiliate_id, p.agent_id, p.policy_number,
		p.product, p.insurer, p.premium, p.status, p.start_date, p.end_date,
		p.created_at, p.updated_at`

func scanPolicy(row pgx.Row) (*entity.Policy, error) {
	var p entity.Policy
	err := row.Scan(&p.ID, &p.ClientID, &p.AffiliateID, &p.AgentID, &p.PolicyNumber,
		&p.Product, &p.Insurer, &p.Premium, &p.Status, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPolicyRow(row pgx.Row) (*repository.PolicyRow, error) {
	var r repository.PolicyRow
	var affiliateName *string
	err := row.Scan(&r.ID, &r.ClientID, &r.AffiliateID, &r.AgentID, &r.PolicyNumber,
		&r.Product, &r.Insurer, &r.Premium, &r.Status, &r.StartDate, &r.EndDate,
		&r.CreatedAt, &r.UpdatedAt, &r.ClientName, &affiliateName)
	if err != nil {
		return nil, err
	}
	if affiliateName != nil {
		r.AffiliateName = *affiliateName
	}
	return &r, nil
}

func policyWhere(f repository.PolicyFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("p.client_id", f.ClientIDs)
	b.addIn("p.affiliate_id", f.AffiliateIDs)
	if f.Status != "" {
		b.add("p.status = $%d", f.Status)
	}
	if f.Product != "" {
		b.add("p.product = $%d", f.Product)
	}
	if f.StartFrom != nil {
		b.add("p.start_date >= $%d", *f.StartFrom)
	}
	if f.StartTo != nil {
		b.add("p.start_date <= $%d", *f.StartTo)
	}
	return b
}

const policyJoin = `
		FROM policies p
		JOIN clients c ON c.id = p.client_id
		LEFT JOIN affiliates a ON a.id = p.affiliate_id`

// Create persiste una nueva póliza.
func (r *PolicyRepo) Create(ctx context.Context, p *entity.Policy) error {
	query := `
		INSERT INTO policies (id, client_id, affiliate_id, agent_id, policy_number,
			product, insurer, premium, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ClientID, p.AffiliateID, p.AgentID, p.PolicyNumber,
		p.Product, p.Insurer, p.Premium, p.Status, p.StartDate, p.EndDate,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translateError("insert policy", err)
	}
	return nil
}

// GetByID obtiene una póliza por ID (nil si no existe).
func (r *PolicyRepo) GetByID(ctx context.Context, id string) (*entity.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies p WHERE p.id = $1`
	p, err := scanPolicy(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return p, nil
}

// GetRowByID obtiene una póliza con nombres denormalizados (nil si no existe).
func (r *PolicyRepo) GetRowByID(ctx context.Context, id string) (*repository.PolicyRow, error) {
	query := `
		SELECT ` + policyColumns + `, c.name, a.first_name || ' ' || a.last_name` + policyJoin + `
		WHERE p.id = $1`
	row, err := scanPolicyRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get policy row: %w", err)
	}
	return row, nil
}

// GetByNumber obtiene una póliza por número (nil si no existe).
func (r *PolicyRepo) GetByNumber(ctx context.Context, number string) (*entity.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies p WHERE p.policy_number = $1`
	p, err := scanPolicy(r.q.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get policy by number: %w", err)
	}
	return p, nil
}

// List lista pólizas con filtros y paginación.
func (r *PolicyRepo) List(ctx context.Context, f repository.PolicyFilter, limit, offset int) ([]*repository.PolicyRow, error) {
	b := policyWhere(f)
	query := `
		SELECT ` + policyColumns + `, c.name, a.first_name || ' ' || a.last_name` + policyJoin +
		b.clause() +
		fmt.Sprintf(` ORDER BY p.start_date DESC, p.id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()
	var list []*repository.PolicyRow
	for rows.Next() {
		row, err := scanPolicyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan policy row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta pólizas con los mismos filtros del listado.
func (r *PolicyRepo) Count(ctx context.Context, f repository.PolicyFilter) (int, error) {
	b := policyWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM policies p`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count policies: %w", err)
	}
	return total, nil
}

// Update actualiza una póliza.
func (r *PolicyRepo) Update(ctx context.Context, p *entity.Policy) error {
	query := `
		UPDATE policies
		SET affiliate_id = $2, agent_id = $3, insurer = $4, premium = $5,
			status = $6, start_date = $7, end_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.AffiliateID, p.AgentID, p.Insurer, p.Premium,
		p.Status, p.StartDate, p.EndDate, p.UpdatedAt,
	)
	if err != nil {
		return translateError("update policy", err)
	}
	return nil
}

// Delete elimina una póliza por ID.
func (r *PolicyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	return nil
}

// MarkExpired marca como vencidas las pólizas activas con end_date ya pasado.
func (r *PolicyRepo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE policies SET status = $1, updated_at = $2
		WHERE status = $3 AND end_date < $2`,
		entity.PolicyStatusExpired, now, entity.PolicyStatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("mark policies expired: %w", err)
	}
	return tag.RowsAffected(), nil
}
