package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

const (
	invClientA  = "7a1b2c3d-0000-4000-8000-00000000000a"
	invClientB  = "7a1b2c3d-0000-4000-8000-00000000000b"
	invAffID    = "7a1b2c3d-0000-4000-8000-00000000000c"
	invAdminCli = "u-admin-cliente"
)

// newInvitationFixture arma el caso de uso con una empresa con grant para el
// admin_cliente y un afiliado de esa empresa sin cuenta vinculada.
func newInvitationFixture() (*InvitationUseCase, *stubInvitations, *stubMailer) {
	clients := &stubClients{byID: map[string]*entity.Client{
		invClientA: {ID: invClientA, Name: "Acme S.A.", Active: true},
		invClientB: {ID: invClientB, Name: "Globex S.A.", Active: true},
	}}
	affs := &stubAffiliates{byID: map[string]*entity.Affiliate{
		invAffID: {ID: invAffID, ClientID: invClientA, Kind: entity.AffiliateKindOwner, Active: true},
	}}
	grants := &stubGrants{byUser: map[string][]string{
		invAdminCli: {invClientA},
	}}
	invitations := &stubInvitations{}
	users := &stubUsers{}
	mailer := &stubMailer{}
	resolver := access.NewResolver(grants, affs)
	uc := NewInvitationUseCase(invitations, users, clients, affs, grants, resolver, mailer)
	return uc, invitations, mailer
}

func clientAdminCaller() access.Caller {
	return access.Caller{UserID: invAdminCli, Role: entity.RoleAdminCliente}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: emisión por admin_cliente dentro de su alcance
// ──────────────────────────────────────────────────────────────────────────────

// Un admin_cliente invita a un afiliado de una empresa con grant; la empresa de
// la invitación se deriva del afiliado.
func TestInvitationCreate_AdminClienteInvitaAfiliadoDeSuEmpresa(t *testing.T) {
	uc, invitations, mailer := newInvitationFixture()
	affID := invAffID

	out, err := uc.Create(context.Background(), clientAdminCaller(), dto.CreateInvitationRequest{
		Email:       "afiliado@acme.co",
		Role:        string(entity.RoleAfiliado),
		AffiliateID: &affID,
	})

	require.NoError(t, err)
	require.NotNil(t, invitations.created)
	require.NotNil(t, invitations.created.ClientID)
	assert.Equal(t, invClientA, *invitations.created.ClientID)
	assert.Equal(t, entity.InvitationStatusPending, invitations.created.Status)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "afiliado@acme.co", out.Email)
}

// Una empresa sin grant se reporta igual que una inexistente.
func TestInvitationCreate_AdminClienteFueraDeAlcance(t *testing.T) {
	uc, invitations, _ := newInvitationFixture()
	clientB := invClientB

	_, err := uc.Create(context.Background(), clientAdminCaller(), dto.CreateInvitationRequest{
		Email:    "otro@globex.co",
		Role:     string(entity.RoleAdminCliente),
		ClientID: &clientB,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "clientId", verr.Fields[0].Field)
	assert.Nil(t, invitations.created)
}

// Los roles de la correduría solo los emite el admin de la correduría.
func TestInvitationCreate_AdminClienteNoInvitaRolesCorreduria(t *testing.T) {
	uc, invitations, _ := newInvitationFixture()

	_, err := uc.Create(context.Background(), clientAdminCaller(), dto.CreateInvitationRequest{
		Email: "gestor@correduria.co",
		Role:  string(entity.RoleGestor),
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, invitations.created)
}

// Los empleados no admin de la correduría no gestionan invitaciones.
func TestInvitationCreate_GestorProhibido(t *testing.T) {
	uc, _, _ := newInvitationFixture()
	caller := access.Caller{UserID: "u-gestor", Role: entity.RoleGestor}
	affID := invAffID

	_, err := uc.Create(context.Background(), caller, dto.CreateInvitationRequest{
		Email:       "afiliado@acme.co",
		Role:        string(entity.RoleAfiliado),
		AffiliateID: &affID,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: alcance del admin_cliente
// ──────────────────────────────────────────────────────────────────────────────

// El listado de un admin_cliente queda acotado a sus empresas con grant.
func TestInvitationList_AdminClienteAcotadoASusEmpresas(t *testing.T) {
	uc, invitations, _ := newInvitationFixture()

	_, err := uc.List(context.Background(), clientAdminCaller(), ListInvitationsQuery{}, dto.PageRequest{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, []string{invClientA}, invitations.lastFilter.ClientIDs)
}

func TestInvitationList_AdminSinRestriccion(t *testing.T) {
	uc, invitations, _ := newInvitationFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.List(context.Background(), admin, ListInvitationsQuery{}, dto.PageRequest{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Nil(t, invitations.lastFilter.ClientIDs)
}
