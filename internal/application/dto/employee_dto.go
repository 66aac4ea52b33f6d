package dto

import "time"

// CreateEmployeeRequest alta de empleado de la correduría.
type CreateEmployeeRequest struct {
	Code      string `json:"code" validate:"required,min=2,max=20"`
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=30"`
	Position  string `json:"position" validate:"max=100"`
}

// UpdateEmployeeRequest edición parcial de empleado.
type UpdateEmployeeRequest struct {
	FirstName *string          `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  *string          `json:"lastName" validate:"omitempty,min=2,max=100"`
	Email     *string          `json:"email" validate:"omitempty,email"`
	Phone     Optional[string] `json:"phone"`
	Position  Optional[string] `json:"position"`
	Active    *bool            `json:"active"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateEmployeeRequest) HasChanges() bool {
	return r.FirstName != nil || r.LastName != nil || r.Email != nil ||
		r.Phone.Set || r.Position.Set || r.Active != nil
}

// EmployeeResponse DTO plano de empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position,omitempty"`
	UserID    *string   `json:"userId,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse listado paginado.
type EmployeeListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}
