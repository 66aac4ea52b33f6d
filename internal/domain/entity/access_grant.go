package entity

import "time"

// AccessGrant asocia un usuario admin_cliente con una empresa cliente sobre la
// que puede operar. Un usuario puede tener grants sobre varias empresas.
type AccessGrant struct {
	ID        string
	UserID    string
	ClientID  string
	GrantedBy string
	CreatedAt time.Time
}
