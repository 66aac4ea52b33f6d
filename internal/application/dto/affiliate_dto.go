package dto

import "time"

// CreateAffiliateRequest alta de afiliado (titular o dependiente).
// PrimaryAffiliateID es obligatorio cuando kind = dependiente.
type CreateAffiliateRequest struct {
	ClientID           string  `json:"clientId" validate:"required,uuid"`
	Kind               string  `json:"kind" validate:"required,oneof=titular dependiente"`
	PrimaryAffiliateID *string `json:"primaryAffiliateId" validate:"omitempty,uuid"`
	FirstName          string  `json:"firstName" validate:"required,min=2,max=100"`
	LastName           string  `json:"lastName" validate:"required,min=2,max=100"`
	DocumentID         string  `json:"documentId" validate:"required,min=5,max=20"`
	Email              string  `json:"email" validate:"omitempty,email"`
	Phone              string  `json:"phone" validate:"max=30"`
	BirthDate          string  `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateAffiliateRequest edición parcial de afiliado.
type UpdateAffiliateRequest struct {
	FirstName *string          `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  *string          `json:"lastName" validate:"omitempty,min=2,max=100"`
	Email     Optional[string] `json:"email"`
	Phone     Optional[string] `json:"phone"`
	BirthDate Optional[string] `json:"birthDate"`
	Active    *bool            `json:"active"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateAffiliateRequest) HasChanges() bool {
	return r.FirstName != nil || r.LastName != nil || r.Email.Set ||
		r.Phone.Set || r.BirthDate.Set || r.Active != nil
}

// AffiliateResponse DTO plano de afiliado, con el nombre del cliente denormalizado.
type AffiliateResponse struct {
	ID                 string     `json:"id"`
	ClientID           string     `json:"clientId"`
	ClientName         string     `json:"clientName"`
	Kind               string     `json:"kind"`
	PrimaryAffiliateID *string    `json:"primaryAffiliateId,omitempty"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	DocumentID         string     `json:"documentId"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	BirthDate          *time.Time `json:"birthDate,omitempty"`
	Active             bool       `json:"active"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AffiliateListResponse listado paginado.
type AffiliateListResponse struct {
	Affiliates []AffiliateResponse `json:"affiliates"`
	Pagination Pagination          `json:"pagination"`
}
