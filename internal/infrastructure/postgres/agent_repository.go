package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implementación de AgentRepository (usable con pool o tx).
type AgentRepo struct {
	q Querier
}

// NewAgentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgentRepository(q Querier) *AgentRepo {
	return &AgentRepo{q: q}
}

const agentColumns = `id, code, first_name, last_name, email, phone, commission_rate, active, created_at, updated_at`

func scanAgent(row pgx.Row) (*entity.Agent, error) {
	var a entity.Agent
	err := row.Scan(&a.ID, &a.Code, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.CommissionRate, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func agentWhere(f repository.AgentFilter) *whereBuilder {
	b := &whereBuilder{}
	if f.Active != nil {
		b.add("active = $%d", *f.Active)
	}
	if f.Search != "" {
		b.add("(first_name ILIKE '%%' || $%[1]d || '%%' OR last_name ILIKE '%%' || $%[1]d || '%%' OR code ILIKE '%%' || $%[1]d || '%%')", f.Search)
	}
	return b
}

// Create persiste un nuevo agente.
func (r *AgentRepo) Create(ctx context.Context, a *entity.Agent) error {
	query := `
		INSERT INTO agents (` + agentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Code, a.FirstName, a.LastName, a.Email, a.Phone,
		a.CommissionRate, a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return translateError("insert agent", err)
	}
	return nil
}

// GetByID obtiene un agente por ID (nil si no existe).
func (r *AgentRepo) GetByID(ctx context.Context, id string) (*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`
	a, err := scanAgent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}

// GetByCode obtiene un agente por código (nil si no existe).
func (r *AgentRepo) GetByCode(ctx context.Context, code string) (*entity.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE code = $1`
	a, err := scanAgent(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent by code: %w", err)
	}
	return a, nil
}

// List lista agentes con filtros y paginación.
func (r *AgentRepo) List(ctx context.Context, f repository.AgentFilter, limit, offset int) ([]*entity.Agent, error) {
	b := agentWhere(f)
	query := `SELECT ` + agentColumns + ` FROM agents` + b.clause() +
		fmt.Sprintf(` ORDER BY code, id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Count cuenta agentes con los mismos filtros del listado.
func (r *AgentRepo) Count(ctx context.Context, f repository.AgentFilter) (int, error) {
	b := agentWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM agents`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count agents: %w", err)
	}
	return total, nil
}

// Update actualiza un agente.
func (r *AgentRepo) Update(ctx context.Context, a *entity.Agent) error {
	query := `
		UPDATE agents
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
			commission_rate = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone,
		a.CommissionRate, a.Active, a.UpdatedAt,
	)
	if err != nil {
		return translateError("update agent", err)
	}
	return nil
}

// Delete elimina un agente por ID.
func (r *AgentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}
