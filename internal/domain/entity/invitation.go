package entity

import "time"

// Estados de invitación.
const (
	InvitationStatusPending   = "pendiente"
	InvitationStatusAccepted  = "aceptada"
	InvitationStatusCancelled = "cancelada"
	InvitationStatusExpired   = "expirada"
)

// Invitation representa una invitación por correo para crear una cuenta con un
// rol dado. ClientID solo aplica al invitar administradores de empresa cliente;
// AffiliateID al invitar afiliados.
type Invitation struct {
	ID          string
	Email       string
	Role        Role
	ClientID    *string
	AffiliateID *string
	Token       string // opaco, único; viaja en el link del correo
	Status      string // ver constantes InvitationStatus*
	InvitedBy   string // user id del emisor
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired indica si la invitación ya venció respecto de now.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
