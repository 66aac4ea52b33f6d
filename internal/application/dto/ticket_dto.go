package dto

import "time"

// CreateTicketRequest apertura de ticket de soporte. El número lo genera el
// servidor; clientId lo infieren los roles restringidos desde su alcance.
type CreateTicketRequest struct {
	ClientID    string  `json:"clientId" validate:"omitempty,uuid"`
	AffiliateID *string `json:"affiliateId" validate:"omitempty,uuid"`
	Subject     string  `json:"subject" validate:"required,min=5,max=200"`
	Body        string  `json:"body" validate:"required,min=10,max=5000"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=baja media alta"`
}

// UpdateTicketRequest edición parcial de ticket.
type UpdateTicketRequest struct {
	Subject    *string          `json:"subject" validate:"omitempty,min=5,max=200"`
	Body       *string          `json:"body" validate:"omitempty,min=10,max=5000"`
	Status     *string          `json:"status" validate:"omitempty,oneof=abierto en_proceso resuelto cerrado"`
	Priority   *string          `json:"priority" validate:"omitempty,oneof=baja media alta"`
	AssignedTo Optional[string] `json:"assignedTo"`
}

// HasChanges indica si al menos un campo viene presente.
func (r UpdateTicketRequest) HasChanges() bool {
	return r.Subject != nil || r.Body != nil || r.Status != nil ||
		r.Priority != nil || r.AssignedTo.Set
}

// TicketResponse DTO plano de ticket con el nombre del cliente denormalizado.
type TicketResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	ClientID    string    `json:"clientId"`
	ClientName  string    `json:"clientName"`
	AffiliateID *string   `json:"affiliateId,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	AssignedTo  *string   `json:"assignedTo,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketListResponse listado paginado.
type TicketListResponse struct {
	Tickets    []TicketResponse `json:"tickets"`
	Pagination Pagination       `json:"pagination"`
}
