package repository

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

// EmployeeFilter filtros de listado de empleados.
type EmployeeFilter struct {
	Active *bool
	Search string // sobre nombre, código y email
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByCode(ctx context.Context, code string) (*entity.Employee, error)
	List(ctx context.Context, f EmployeeFilter, limit, offset int) ([]*entity.Employee, error)
	Count(ctx context.Context, f EmployeeFilter) (int, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
