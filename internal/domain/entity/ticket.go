package entity

import "time"

// Estados y prioridades de ticket de soporte.
const (
	TicketStatusOpen       = "abierto"
	TicketStatusInProgress = "en_proceso"
	TicketStatusResolved   = "resuelto"
	TicketStatusClosed     = "cerrado"

	TicketPriorityLow    = "baja"
	TicketPriorityMedium = "media"
	TicketPriorityHigh   = "alta"
)

// Ticket representa un ticket de soporte asociado a una empresa cliente.
// Number es el código visible (ver pkg/ticketref); Seq es la secuencia interna.
type Ticket struct {
	ID          string
	Number      string // ej. TCK-8K2M4P, derivado de Seq
	Seq         int64
	ClientID    string
	AffiliateID *string
	CreatedBy   string // user id del creador
	AssignedTo  *string
	Subject     string
	Body        string
	Status      string // ver constantes TicketStatus*
	Priority    string // ver constantes TicketPriority*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
