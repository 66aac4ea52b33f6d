package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de póliza.
const (
	PolicyStatusActive    = "activa"
	PolicyStatusSuspended = "suspendida"
	PolicyStatusExpired   = "vencida"
	PolicyStatusCancelled = "cancelada"
)

// Ramos de seguro manejados por la correduría.
const (
	PolicyProductHealth = "salud"
	PolicyProductLife   = "vida"
	PolicyProductAuto   = "auto"
	PolicyProductHome   = "hogar"
)

// Policy representa una póliza intermediada para una empresa cliente.
// AffiliateID es opcional: las pólizas colectivas no tienen titular individual.
type Policy struct {
	ID           string
	ClientID     string
	AffiliateID  *string
	AgentID      *string
	PolicyNumber string // único en el sistema
	Product      string // ver constantes PolicyProduct*
	Insurer      string // aseguradora emisora
	Premium      decimal.Decimal
	Status       string // ver constantes PolicyStatus*
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
