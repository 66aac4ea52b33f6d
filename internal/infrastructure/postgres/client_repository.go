package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, tax_id, address, phone, email, active, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func clientWhere(f repository.ClientFilter) *whereBuilder {
	b := &whereBuilder{}
	b.addIn("id", f.ClientIDs)
	if f.Active != nil {
		b.add("active = $%d", *f.Active)
	}
	if f.Search != "" {
		b.add("(name ILIKE '%%' || $%[1]d || '%%' OR tax_id ILIKE '%%' || $%[1]d || '%%')", f.Search)
	}
	return b
}

// Create persiste una nueva empresa cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.TaxID, c.Address, c.Phone, c.Email, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return translateError("insert client", err)
	}
	return nil
}

// GetByID obtiene una empresa cliente por ID (nil si no existe).
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByTaxID obtiene una empresa cliente por NIT (nil si no existe).
func (r *ClientRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tax_id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by tax_id: %w", err)
	}
	return c, nil
}

// List lista empresas cliente con filtros y paginación.
func (r *ClientRepo) List(ctx context.Context, f repository.ClientFilter, limit, offset int) ([]*entity.Client, error) {
	b := clientWhere(f)
	query := `SELECT ` + clientColumns + ` FROM clients` + b.clause() +
		fmt.Sprintf(` ORDER BY name, id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta empresas cliente con los mismos filtros del listado.
func (r *ClientRepo) Count(ctx context.Context, f repository.ClientFilter) (int, error) {
	b := clientWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return total, nil
}

// Update actualiza una empresa cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, address = $3, phone = $4, email = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Address, c.Phone, c.Email, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return translateError("update client", err)
	}
	return nil
}

// Delete elimina una empresa cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
