package access_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeGrants struct {
	byUser map[string][]string
}

func (f *fakeGrants) Create(ctx context.Context, g *entity.AccessGrant) error { return nil }
func (f *fakeGrants) ListClientIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return f.byUser[userID], nil
}
func (f *fakeGrants) DeleteByUserAndClient(ctx context.Context, userID, clientID string) error {
	return nil
}

type fakeAffiliates struct {
	byID       map[string]*entity.Affiliate
	dependents map[string][]*entity.Affiliate
}

func (f *fakeAffiliates) Create(ctx context.Context, a *entity.Affiliate) error { return nil }
func (f *fakeAffiliates) GetByID(ctx context.Context, id string) (*entity.Affiliate, error) {
	return f.byID[id], nil
}
func (f *fakeAffiliates) GetRowByID(ctx context.Context, id string) (*repository.AffiliateRow, error) {
	a := f.byID[id]
	if a == nil {
		return nil, nil
	}
	return &repository.AffiliateRow{Affiliate: *a}, nil
}
func (f *fakeAffiliates) GetByClientAndDocument(ctx context.Context, clientID, documentID string) (*entity.Affiliate, error) {
	return nil, nil
}
func (f *fakeAffiliates) ListDependents(ctx context.Context, primaryAffiliateID string) ([]*entity.Affiliate, error) {
	return f.dependents[primaryAffiliateID], nil
}
func (f *fakeAffiliates) List(ctx context.Context, flt repository.AffiliateFilter, limit, offset int) ([]*repository.AffiliateRow, error) {
	return nil, nil
}
func (f *fakeAffiliates) Count(ctx context.Context, flt repository.AffiliateFilter) (int, error) {
	return 0, nil
}
func (f *fakeAffiliates) Update(ctx context.Context, a *entity.Affiliate) error { return nil }
func (f *fakeAffiliates) Delete(ctx context.Context, id string) error           { return nil }

func newResolver(grants map[string][]string, affs map[string]*entity.Affiliate, deps map[string][]*entity.Affiliate) *access.Resolver {
	return access.NewResolver(
		&fakeGrants{byUser: grants},
		&fakeAffiliates{byID: affs, dependents: deps},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_EmpleadoCorreduria_SinRestriccion(t *testing.T) {
	r := newResolver(nil, nil, nil)
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleGestor, entity.RoleAnalistaSiniestros, entity.RoleSeniorSiniestros} {
		scope, err := r.Resolve(context.Background(), access.Caller{UserID: "u1", Role: role})
		require.NoError(t, err)
		assert.True(t, scope.All, "rol %s debe tener alcance total", role)
		assert.True(t, scope.AllowsClient("cualquiera"))
	}
}

func TestResolve_AdminCliente_SoloEmpresasConGrant(t *testing.T) {
	r := newResolver(map[string][]string{"u1": {"c1", "c2"}}, nil, nil)
	scope, err := r.Resolve(context.Background(), access.Caller{UserID: "u1", Role: entity.RoleAdminCliente})
	require.NoError(t, err)

	assert.False(t, scope.All)
	assert.ElementsMatch(t, []string{"c1", "c2"}, scope.ClientIDs)
	assert.True(t, scope.AllowsClient("c1"))
	assert.False(t, scope.AllowsClient("c3"))
	assert.Nil(t, scope.AffiliateIDs, "admin de cliente no restringe por afiliado")
}

func TestResolve_AdminClienteSinGrants_AlcanceVacio(t *testing.T) {
	r := newResolver(map[string][]string{}, nil, nil)
	scope, err := r.Resolve(context.Background(), access.Caller{UserID: "u1", Role: entity.RoleAdminCliente})
	require.NoError(t, err)

	assert.NotNil(t, scope.ClientIDs, "el alcance vacío es slice vacío, no nil")
	assert.Empty(t, scope.ClientIDs)
	assert.False(t, scope.AllowsClient("c1"))
}

func TestResolve_Afiliado_GrupoFamiliar(t *testing.T) {
	titular := &entity.Affiliate{ID: "a1", ClientID: "c1", Kind: entity.AffiliateKindOwner}
	dep := &entity.Affiliate{ID: "a2", ClientID: "c1", Kind: entity.AffiliateKindDependent}
	r := newResolver(nil,
		map[string]*entity.Affiliate{"a1": titular},
		map[string][]*entity.Affiliate{"a1": {dep}},
	)

	scope, err := r.Resolve(context.Background(), access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c1"}, scope.ClientIDs)
	assert.ElementsMatch(t, []string{"a1", "a2"}, scope.AffiliateIDs)
	assert.True(t, scope.AllowsAffiliate("a2"))
	assert.False(t, scope.AllowsAffiliate("a9"))
}

func TestResolve_AfiliadoSinRegistro_AlcanceVacio(t *testing.T) {
	r := newResolver(nil, map[string]*entity.Affiliate{}, nil)
	scope, err := r.Resolve(context.Background(), access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: "huerfano"})
	require.NoError(t, err)

	assert.Empty(t, scope.ClientIDs)
	assert.Empty(t, scope.AffiliateIDs)
	assert.False(t, scope.AllowsClient("c1"))
	assert.False(t, scope.AllowsAffiliate("a1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckOwnership: fuera de alcance se presenta como NotFound, nunca Forbidden
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckOwnership_FueraDeAlcance_EsNotFound(t *testing.T) {
	r := newResolver(map[string][]string{"u1": {"c1"}}, nil, nil)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAdminCliente}

	d, err := r.CheckOwnership(context.Background(), caller, "c2", nil)
	require.NoError(t, err)
	assert.Equal(t, access.OutOfScope, d)
	assert.ErrorIs(t, d.Err(), domain.ErrNotFound,
		"fuera de alcance debe presentarse como NotFound para no filtrar existencia")
}

func TestCheckOwnership_DentroDeAlcance(t *testing.T) {
	r := newResolver(map[string][]string{"u1": {"c1"}}, nil, nil)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAdminCliente}

	d, err := r.CheckOwnership(context.Background(), caller, "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, access.Allowed, d)
	assert.NoError(t, d.Err())
}

func TestCheckOwnership_AfiliadoRecursoDeOtroAfiliado_EsNotFound(t *testing.T) {
	titular := &entity.Affiliate{ID: "a1", ClientID: "c1"}
	r := newResolver(nil, map[string]*entity.Affiliate{"a1": titular}, nil)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: "a1"}

	otro := "a9"
	d, err := r.CheckOwnership(context.Background(), caller, "c1", &otro)
	require.NoError(t, err)
	assert.Equal(t, access.OutOfScope, d, "recurso del mismo cliente pero de otro afiliado queda fuera")

	// Un recurso sin afiliado (colectivo) tampoco es visible para el afiliado.
	d, err = r.CheckOwnership(context.Background(), caller, "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, access.OutOfScope, d)

	propio := "a1"
	d, err = r.CheckOwnership(context.Background(), caller, "c1", &propio)
	require.NoError(t, err)
	assert.Equal(t, access.Allowed, d)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, access.Allowed.Err())
	assert.ErrorIs(t, access.OutOfScope.Err(), domain.ErrNotFound)
	assert.ErrorIs(t, access.RoleForbidden.Err(), domain.ErrForbidden)
}
