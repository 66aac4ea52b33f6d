// Package access centraliza el cálculo de alcance por caller: qué empresas
// cliente y qué afiliados puede leer/escribir cada rol. Todos los usecases
// consumen este paquete; ningún servicio repite chequeos ad hoc.
package access

import (
	"context"

	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// Caller identidad autenticada de la petición; inmutable durante su vida.
type Caller struct {
	UserID      string
	Role        entity.Role
	AffiliateID string // solo poblado para rol afiliado
}

// Decision resultado del chequeo de alcance.
// OutOfScope se presenta al caller como NotFound para no filtrar existencia;
// RoleForbidden como Forbidden (el rol no tiene la funcionalidad, no se está
// sondeando un recurso concreto).
type Decision int

const (
	Allowed Decision = iota
	OutOfScope
	RoleForbidden
)

// Err traduce la decisión al error de dominio correspondiente (nil si Allowed).
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case RoleForbidden:
		return domain.ErrForbidden
	default:
		return domain.ErrNotFound
	}
}

// Scope conjunto autorizado para un caller. All true = sin restricción
// (empleados de la correduría). Con All false, ClientIDs y AffiliateIDs acotan;
// AffiliateIDs nil significa "sin restricción por afiliado" (admin de cliente).
type Scope struct {
	All          bool
	ClientIDs    []string
	AffiliateIDs []string
}

// AllowsClient indica si el alcance cubre la empresa cliente dada.
func (s Scope) AllowsClient(clientID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

// AllowsAffiliate indica si el alcance cubre al afiliado dado.
func (s Scope) AllowsAffiliate(affiliateID string) bool {
	if s.All || s.AffiliateIDs == nil {
		return true
	}
	for _, id := range s.AffiliateIDs {
		if id == affiliateID {
			return true
		}
	}
	return false
}

// Resolver calcula alcances consultando grants y afiliados.
type Resolver struct {
	grants     repository.AccessGrantRepository
	affiliates repository.AffiliateRepository
}

// NewResolver construye el resolver de alcance.
func NewResolver(grants repository.AccessGrantRepository, affiliates repository.AffiliateRepository) *Resolver {
	return &Resolver{grants: grants, affiliates: affiliates}
}

// Resolve calcula el alcance del caller.
//   - Empleados de la correduría: sin restricción.
//   - Admin de cliente: empresas con AccessGrant.
//   - Afiliado: su propio registro más sus dependientes, dentro de su empresa.
func (r *Resolver) Resolve(ctx context.Context, caller Caller) (Scope, error) {
	switch {
	case caller.Role.IsBrokerEmployee():
		return Scope{All: true}, nil

	case caller.Role.IsClientAdmin():
		ids, err := r.grants.ListClientIDsByUser(ctx, caller.UserID)
		if err != nil {
			return Scope{}, err
		}
		// Sin grants el alcance queda vacío: toda consulta devuelve cero filas.
		if ids == nil {
			ids = []string{}
		}
		return Scope{ClientIDs: ids}, nil

	case caller.Role.IsAffiliate():
		if caller.AffiliateID == "" {
			return Scope{ClientIDs: []string{}, AffiliateIDs: []string{}}, nil
		}
		own, err := r.affiliates.GetByID(ctx, caller.AffiliateID)
		if err != nil {
			return Scope{}, err
		}
		if own == nil {
			return Scope{ClientIDs: []string{}, AffiliateIDs: []string{}}, nil
		}
		affIDs := []string{own.ID}
		deps, err := r.affiliates.ListDependents(ctx, own.ID)
		if err != nil {
			return Scope{}, err
		}
		for _, d := range deps {
			affIDs = append(affIDs, d.ID)
		}
		return Scope{ClientIDs: []string{own.ClientID}, AffiliateIDs: affIDs}, nil

	default:
		return Scope{ClientIDs: []string{}, AffiliateIDs: []string{}}, nil
	}
}

// CheckOwnership chequea la pertenencia de un recurso ya cargado contra el
// alcance del caller: clientID del recurso y, si aplica, su afiliado.
// Es el único punto de decisión "NotFound por fuera de alcance" del sistema.
func (r *Resolver) CheckOwnership(ctx context.Context, caller Caller, clientID string, affiliateID *string) (Decision, error) {
	scope, err := r.Resolve(ctx, caller)
	if err != nil {
		return OutOfScope, err
	}
	if !scope.AllowsClient(clientID) {
		return OutOfScope, nil
	}
	// Para afiliados, el recurso además debe pertenecer a su grupo familiar.
	if scope.AffiliateIDs != nil {
		if affiliateID == nil || !scope.AllowsAffiliate(*affiliateID) {
			return OutOfScope, nil
		}
	}
	return Allowed, nil
}
