package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// ListEmployeesQuery filtros del listado de empleados.
type ListEmployeesQuery struct {
	Active *bool
	Search string
}

// EmployeeUseCase casos de uso de empleados de la correduría.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// canReadEmployees lectura de empleados: admin y gestor.
func canReadEmployees(caller access.Caller) bool {
	return caller.Role == entity.RoleAdmin || caller.Role == entity.RoleGestor
}

// List lista empleados. Lectura para admin y gestor.
func (uc *EmployeeUseCase) List(ctx context.Context, caller access.Caller, q ListEmployeesQuery, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	if !canReadEmployees(caller) {
		return nil, domain.ErrForbidden
	}
	f := repository.EmployeeFilter{Active: q.Active, Search: q.Search}
	total, err := uc.employees.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.employees.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Employees: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Get obtiene un empleado.
func (uc *EmployeeUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.EmployeeResponse, error) {
	if !canReadEmployees(caller) {
		return nil, domain.ErrForbidden
	}
	e, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Create crea un empleado (solo admin). Código y email únicos por constraint.
func (uc *EmployeeUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		Code:      in.Code,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Update edición parcial de empleado (solo admin).
func (uc *EmployeeUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !in.HasChanges() {
		return nil, domain.NewValidationError("_", "al menos un campo debe estar presente")
	}
	e, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		e.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		e.LastName = *in.LastName
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone.Set {
		if in.Phone.Null {
			e.Phone = ""
		} else {
			e.Phone = in.Phone.Value
		}
	}
	if in.Position.Set {
		if in.Position.Null {
			e.Position = ""
		} else {
			e.Position = in.Position.Value
		}
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	e.UpdatedAt = time.Now()
	if err := uc.employees.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Delete elimina un empleado (solo admin).
func (uc *EmployeeUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	e, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.employees.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Code:      e.Code,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Position:  e.Position,
		UserID:    e.UserID,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
