package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, code, first_name, last_name, email, phone, position, user_id, active, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Position, &e.UserID, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func employeeWhere(f repository.EmployeeFilter) *whereBuilder {
	b := &whereBuilder{}
	if f.Active != nil {
		b.add("active = $%d", *f.Active)
	}
	if f.Search != "" {
		b.add("(first_name ILIKE '%%' || $%[1]d || '%%' OR last_name ILIKE '%%' || $%[1]d || '%%' OR code ILIKE '%%' || $%[1]d || '%%' OR email ILIKE '%%' || $%[1]d || '%%')", f.Search)
	}
	return b
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Code, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Position, e.UserID, e.Active, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translateError("insert employee", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID (nil si no existe).
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByCode obtiene un empleado por código (nil si no existe).
func (r *EmployeeRepo) GetByCode(ctx context.Context, code string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE code = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by code: %w", err)
	}
	return e, nil
}

// List lista empleados con filtros y paginación.
func (r *EmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, error) {
	b := employeeWhere(f)
	query := `SELECT ` + employeeColumns + ` FROM employees` + b.clause() +
		fmt.Sprintf(` ORDER BY code, id LIMIT $%d OFFSET $%d`, len(b.args)+1, len(b.args)+2)
	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Count cuenta empleados con los mismos filtros del listado.
func (r *EmployeeRepo) Count(ctx context.Context, f repository.EmployeeFilter) (int, error) {
	b := employeeWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+b.clause(), b.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return total, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, position = $6,
			user_id = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position,
		e.UserID, e.Active, e.UpdatedAt,
	)
	if err != nil {
		return translateError("update employee", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
