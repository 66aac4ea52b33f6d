package dto

import "time"

// CreateInvitationRequest emisión de invitación por correo.
// ClientID es obligatorio para rol admin_cliente; AffiliateID para rol afiliado.
type CreateInvitationRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Role        string  `json:"role" validate:"required,oneof=admin gestor analista_siniestros senior_siniestros admin_cliente afiliado"`
	ClientID    *string `json:"clientId" validate:"omitempty,uuid"`
	AffiliateID *string `json:"affiliateId" validate:"omitempty,uuid"`
}

// AcceptInvitationRequest aceptación pública con el token del correo.
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required,min=20"`
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// InvitationResponse DTO plano de invitación (el token nunca se expone en listados).
type InvitationResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	ClientID    *string    `json:"clientId,omitempty"`
	AffiliateID *string    `json:"affiliateId,omitempty"`
	Status      string     `json:"status"`
	InvitedBy   string     `json:"invitedBy"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// InvitationListResponse listado paginado.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Pagination  Pagination           `json:"pagination"`
}
