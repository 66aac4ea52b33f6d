package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.AccessGrantRepository = (*AccessGrantRepo)(nil)

// AccessGrantRepo implementación de AccessGrantRepository (usable con pool o tx).
type AccessGrantRepo struct {
	q Querier
}

// NewAccessGrantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccessGrantRepository(q Querier) *AccessGrantRepo {
	return &AccessGrantRepo{q: q}
}

// Create persiste un nuevo grant de acceso.
func (r *AccessGrantRepo) Create(ctx context.Context, g *entity.AccessGrant) error {
	query := `
		INSERT INTO access_grants (id, user_id, client_id, granted_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, g.ID, g.UserID, g.ClientID, g.GrantedBy, g.CreatedAt)
	if err != nil {
		return translateError("insert access grant", err)
	}
	return nil
}

// ListClientIDsByUser devuelve los IDs de empresas cliente con grant para el usuario.
func (r *AccessGrantRepo) ListClientIDsByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT client_id FROM access_grants WHERE user_id = $1 ORDER BY client_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByUserAndClient revoca el grant de un usuario sobre una empresa cliente.
func (r *AccessGrantRepo) DeleteByUserAndClient(ctx context.Context, userID, clientID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM access_grants WHERE user_id = $1 AND client_id = $2`, userID, clientID)
	if err != nil {
		return fmt.Errorf("delete access grant: %w", err)
	}
	return nil
}
