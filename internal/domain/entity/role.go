package entity

// Role identifica el rol de un usuario. Enumeración cerrada: cualquier valor
// fuera de estas constantes es inválido.
type Role string

const (
	// Roles de empleados de la correduría (acceso a todos los clientes).
	RoleAdmin              Role = "admin"
	RoleGestor             Role = "gestor"
	RoleAnalistaSiniestros Role = "analista_siniestros"
	RoleSeniorSiniestros   Role = "senior_siniestros"

	// Administrador de empresa cliente: acceso solo a los clientes con grant.
	RoleAdminCliente Role = "admin_cliente"

	// Afiliado: acceso solo a su propio registro y sus dependientes.
	RoleAfiliado Role = "afiliado"
)

// AllRoles lista los roles válidos (para validación y seeds).
func AllRoles() []Role {
	return []Role{
		RoleAdmin, RoleGestor, RoleAnalistaSiniestros, RoleSeniorSiniestros,
		RoleAdminCliente, RoleAfiliado,
	}
}

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGestor, RoleAnalistaSiniestros, RoleSeniorSiniestros,
		RoleAdminCliente, RoleAfiliado:
		return true
	}
	return false
}

// IsBrokerEmployee indica membresía al grupo de empleados de la correduría.
func (r Role) IsBrokerEmployee() bool {
	switch r {
	case RoleAdmin, RoleGestor, RoleAnalistaSiniestros, RoleSeniorSiniestros:
		return true
	}
	return false
}

// IsSeniorClaims indica membresía al grupo que puede resolver siniestros.
func (r Role) IsSeniorClaims() bool {
	switch r {
	case RoleAdmin, RoleSeniorSiniestros:
		return true
	}
	return false
}

// IsClientAdmin indica si el rol es administrador de empresa cliente.
func (r Role) IsClientAdmin() bool { return r == RoleAdminCliente }

// IsAffiliate indica si el rol es afiliado.
func (r Role) IsAffiliate() bool { return r == RoleAfiliado }
