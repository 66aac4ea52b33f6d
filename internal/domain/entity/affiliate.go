package entity

import "time"

// Tipos de afiliado.
const (
	AffiliateKindOwner     = "titular"
	AffiliateKindDependent = "dependiente"
)

// Affiliate representa una persona afiliada a través de una empresa cliente:
// titular de pólizas o dependiente de un titular.
// Invariante: si Kind es dependiente, PrimaryAffiliateID debe referir a un
// titular del mismo cliente.
type Affiliate struct {
	ID                 string
	ClientID           string
	Kind               string // titular, dependiente
	PrimaryAffiliateID *string
	UserID             *string // cuenta de acceso vinculada, si existe
	FirstName          string
	LastName           string
	DocumentID         string // cédula, única por cliente
	Email              string
	Phone              string
	BirthDate          *time.Time
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName nombre para mostrar en respuestas denormalizadas.
func (a *Affiliate) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
