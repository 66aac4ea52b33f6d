package entity

import "time"

// Employee representa un empleado de la correduría (back office).
// Su acceso al sistema se materializa en un User con rol de empleado.
type Employee struct {
	ID        string
	Code      string // código de empleado, único
	FirstName string
	LastName  string
	Email     string // único
	Phone     string
	Position  string
	UserID    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
