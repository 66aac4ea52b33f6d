package dto

import "time"

// CreateClientRequest alta de empresa cliente.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	TaxID   string `json:"taxId" validate:"required,min=5,max=20"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateClientRequest edición parcial de empresa cliente.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=200"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Active  *bool   `json:"active"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateClientRequest) HasChanges() bool {
	return r.Name != nil || r.Address != nil || r.Phone != nil || r.Email != nil || r.Active != nil
}

// ClientResponse DTO plano de empresa cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse listado paginado.
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
}
