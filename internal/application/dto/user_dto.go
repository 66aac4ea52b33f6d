package dto

import "time"

// UpdateUserRequest edición parcial de usuario (solo admin).
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=150"`
	Role   *string `json:"role" validate:"omitempty,oneof=admin gestor analista_siniestros senior_siniestros admin_cliente afiliado"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateUserRequest) HasChanges() bool {
	return r.Name != nil || r.Role != nil || r.Status != nil
}

// UserResponse DTO plano de usuario (nunca incluye el hash de contraseña).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	AffiliateID *string   `json:"affiliateId,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserListResponse listado paginado.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
