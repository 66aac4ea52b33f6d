package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agent representa un agente comercial de la correduría (capta y atiende
// empresas cliente; cobra comisión sobre primas).
type Agent struct {
	ID             string
	Code           string // código interno, único
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CommissionRate decimal.Decimal // porcentaje, ej. 3.50
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
