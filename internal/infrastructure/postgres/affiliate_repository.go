package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.AffiliateRepository = (*AffiliateRepo)(nil)

// AffiliateRepo implementación de AffiliateRepository (usable con pool o tx).
type AffiliateRepo struct {
	q Querier
}

// NewAffiliateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAffiliateRepository(q Querier) *AffiliateRepo {
	return &AffiliateRepo{q: q}
}

const affiliateColumns = `a.id, a.client_id, a.kind, a.primary_affiliate_id, a.user_id,
		a.first_name, a.last_name, a.document_id, a.email, a.phone, a.birth_date,
		a.active, a.created_at, a.updated_at`

func scanAffiliate(row pgx.Row) (*entity.Affiliate, error) {
	var a entity.Affiliate
	err := row.Scan(&a.ID, &a.ClientID, &a.Kind, &a.PrimaryAffiliateID, &a.UserID,
		&a.FirstName, &a.LastName, &a.DocumentID, &a.Email, &a.Phone, &a.BirthDate,
		&a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAffiliateRow(row pgx.Row) (*repository.AffiliateRow, error) {
	var r repository.AffiliateRow
	err := row.Scan(&r.ID, &r.ClientID, &r.Kind, &r.PrimaryAffiliateID, &r.UserID,
		&r.FirstName, &r.LastName, &r.DocumentID, &r.Email, &r.Phone, &r.BirthDate,
		&r.Active, &r.CreatedAt, &r.UpdatedAt, &r.ClientName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func affiliateWhere(f repository.AffiliateFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("a.client_id", f.ClientIDs)
	b.addIn("a.id", f.AffiliateIDs)
	if f.Kind != "" {
		b.add("a.kind = $%d", f.Kind)
	}
	if f.Active != nil {
		b.add("a.active = $%d", *f.Active)
	}
	if f.Search != "" {
		b.add("(a.first_name ILIKE '%%' || $%[1]d || '%%' OR a.last_name ILIKE '%%' || $%[1]d || '%%' OR a.document_id ILIKE '%%' || $%[1]d || '%%')", f.Search)
	}
	return b
}

// Create persiste un nuevo afiliado.
func (r *AffiliateRepo) Create(ctx context.Context, a *entity.Affiliate) error {
	query := `
		INSERT INTO affiliates (id, client_id, kind, primary_affiliate_id, user_id,
			first_name, last_name, document_id, email, phone, birth_date,
			active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ClientID, a.Kind, a.PrimaryAffiliateID, a.UserID,
		a.FirstName, a.LastName, a.DocumentID, a.Email, a.Phone, a.BirthDate,
		a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return translateError("insert affiliate", err)
	}
	return nil
}

// GetByID obtiene un afiliado por ID (nil si no existe).
func (r *AffiliateRepo) GetByID(ctx context.Context, id string) (*entity.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates a WHERE a.id = $1`
	a, err := scanAffiliate(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get affiliate: %w", err)
	}
	return a, nil
}

// GetRowByID obtiene un afiliado con el nombre del cliente (nil si no existe).
func (r *AffiliateRepo) GetRowByID(ctx context.Context, id string) (*repository.AffiliateRow, error) {
	query := `
		SELECT ` + affiliateColumns + `, c.name
		FROM affiliates a
		JOIN clients c ON c.id = a.client_id
		WHERE a.id = $1`
	row, err := scanAffiliateRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get affiliate row: %w", err)
	}
	return row, nil
}

// GetByClientAndDocument obtiene un afiliado por cliente y documento.
func (r *AffiliateRepo) GetByClientAndDocument(ctx context.Context, clientID, documentID string) (*entity.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates a WHERE a.client_id = $1 AND a.document_id = $2`
	a, err := scanAffiliate(r.q.QueryRow(ctx, query, clientID, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get affiliate by document: %w", err)
	}
	return a, nil
}

// ListDependents devuelve los dependientes de un titular.
func (r *AffiliateRepo) ListDependents(ctx context.Context, primaryAffiliateID string) ([]*entity.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates a WHERE a.primary_affiliate_id = $1 ORDER BY a.first_name, a.id`
	rows, err := r.q.Query(ctx, query, primaryAffiliateID)
	if err != nil {
		return nil, fmt.Errorf("list dependents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Affiliate
	for rows.Next() {
		a, err := scanAffiliate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan affiliate: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// List lista afiliados con filtros y paginación.
func (r *AffiliateRepo) List(ctx context.Context, f repository.AffiliateFilter, limit, offset int) ([]*repository.AffiliateRow, error) {
	b := affiliateWhere(f)
	query := `
		SELECT ` + affiliateColumns + `, c.name
		FROM affiliates a
		JOIN clients c ON c.id = a.client_id` + b.clause() +
		fmt.Sprintf(` ORDER BY a.last_name, a.first_name, a.id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list affiliates: %w", err)
	}
	defer rows.Close()
	var list []*repository.AffiliateRow
	for rows.Next() {
		row, err := scanAffiliateRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan affiliate row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta afiliados con los mismos filtros del listado.
func (r *AffiliateRepo) Count(ctx context.Context, f repository.AffiliateFilter) (int, error) {
	b := affiliateWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM affiliates a`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count affiliates: %w", err)
	}
	return total, nil
}

// Update actualiza un afiliado.
func (r *AffiliateRepo) Update(ctx context.Context, a *entity.Affiliate) error {
	query := `
		UPDATE affiliates
		SET first_name = $2, last_name = $3, email = $4, phone = $5, birth_date = $6,
			user_id = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.BirthDate,
		a.UserID, a.Active, a.UpdatedAt,
	)
	if err != nil {
		return translateError("update affiliate", err)
	}
	return nil
}

// Delete elimina un afiliado por ID.
func (r *AffiliateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM affiliates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete affiliate: %w", err)
	}
	return nil
}
