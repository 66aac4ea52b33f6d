package entity

import "time"

// Client representa una empresa cliente de la correduría (tenant: frontera de
// alcance de afiliados, pólizas, facturas y tickets).
type Client struct {
	ID        string
	Name      string
	TaxID     string // NIT, único en el sistema
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
