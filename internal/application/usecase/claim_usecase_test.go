package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

const (
	claimClientID    = "9e1b2c3d-0000-4000-8000-000000000001"
	claimOwnerID     = "9e1b2c3d-0000-4000-8000-000000000002"
	claimDependentID = "9e1b2c3d-0000-4000-8000-000000000003"
	claimPolicyID    = "9e1b2c3d-0000-4000-8000-000000000004"
	claimOtherClient = "9e1b2c3d-0000-4000-8000-000000000005"
	claimOtherAffID  = "9e1b2c3d-0000-4000-8000-000000000006"
)

// newClaimFixture arma el caso de uso con un titular, su dependiente y una
// póliza por afiliado indicado.
func newClaimFixture(policyAffiliateID *string, policyClientID string) (*ClaimUseCase, *stubClaims) {
	owner := &entity.Affiliate{
		ID:       claimOwnerID,
		ClientID: claimClientID,
		Kind:     entity.AffiliateKindOwner,
		Active:   true,
	}
	depPrimary := claimOwnerID
	dependent := &entity.Affiliate{
		ID:                 claimDependentID,
		ClientID:           claimClientID,
		Kind:               entity.AffiliateKindDependent,
		PrimaryAffiliateID: &depPrimary,
		Active:             true,
	}
	other := &entity.Affiliate{
		ID:       claimOtherAffID,
		ClientID: claimOtherClient,
		Kind:     entity.AffiliateKindOwner,
		Active:   true,
	}
	affs := &stubAffiliates{
		byID: map[string]*entity.Affiliate{
			owner.ID:     owner,
			dependent.ID: dependent,
			other.ID:     other,
		},
		dependents: map[string][]*entity.Affiliate{
			owner.ID: {dependent},
		},
	}
	policies := &stubPolicies{byID: map[string]*entity.Policy{
		claimPolicyID: {
			ID:          claimPolicyID,
			ClientID:    policyClientID,
			AffiliateID: policyAffiliateID,
			Status:      entity.PolicyStatusActive,
		},
	}}
	claims := &stubClaims{}
	resolver := access.NewResolver(&stubGrants{}, affs)
	return NewClaimUseCase(claims, policies, affs, resolver), claims
}

func validClaimRequest() dto.CreateClaimRequest {
	return dto.CreateClaimRequest{
		PolicyID:    claimPolicyID,
		Amount:      decimal.NewFromInt(150000),
		Description: "fractura de muñeca en accidente doméstico",
		IncidentAt:  "2026-08-15",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: radicación por afiliados
// ──────────────────────────────────────────────────────────────────────────────

// Un afiliado puede radicar sobre una póliza de la que es titular.
func TestClaimCreate_AfiliadoSobrePolizaPropia(t *testing.T) {
	ownID := claimOwnerID
	uc, claims := newClaimFixture(&ownID, claimClientID)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: claimOwnerID}

	out, err := uc.Create(context.Background(), caller, validClaimRequest())

	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotNil(t, claims.created)
	assert.Equal(t, claimClientID, claims.created.ClientID)
	// El siniestro queda siempre a nombre del afiliado que lo radica.
	require.NotNil(t, claims.created.AffiliateID)
	assert.Equal(t, claimOwnerID, *claims.created.AffiliateID)
	assert.Equal(t, entity.ClaimStatusFiled, claims.created.Status)
}

// También sobre las pólizas de sus dependientes.
func TestClaimCreate_AfiliadoSobrePolizaDeDependiente(t *testing.T) {
	depID := claimDependentID
	uc, claims := newClaimFixture(&depID, claimClientID)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: claimOwnerID}

	_, err := uc.Create(context.Background(), caller, validClaimRequest())

	require.NoError(t, err)
	require.NotNil(t, claims.created)
}

// Una póliza ajena responde NotFound sin crear nada.
func TestClaimCreate_AfiliadoSobrePolizaAjena(t *testing.T) {
	otherID := claimOtherAffID
	uc, claims := newClaimFixture(&otherID, claimOtherClient)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: claimOwnerID}

	_, err := uc.Create(context.Background(), caller, validClaimRequest())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, claims.created)
}

// Las pólizas colectivas (sin titular) quedan fuera del alcance del afiliado.
func TestClaimCreate_AfiliadoSobrePolizaColectiva(t *testing.T) {
	uc, claims := newClaimFixture(nil, claimClientID)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAfiliado, AffiliateID: claimOwnerID}

	_, err := uc.Create(context.Background(), caller, validClaimRequest())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, claims.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: edición parcial
// ──────────────────────────────────────────────────────────────────────────────

// Un PATCH sin campos se rechaza como entrada inválida.
func TestClaimUpdate_SinCampos(t *testing.T) {
	ownID := claimOwnerID
	uc, _ := newClaimFixture(&ownID, claimClientID)
	caller := access.Caller{UserID: "u1", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), caller, claimPolicyID, dto.UpdateClaimRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La edición de un campo no pisa los demás.
func TestClaimUpdate_ParcialNoPisaOtrosCampos(t *testing.T) {
	ownID := claimOwnerID
	uc, claims := newClaimFixture(&ownID, claimClientID)
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	created, err := uc.Create(context.Background(), admin, validClaimRequest())
	require.NoError(t, err)

	newDesc := "fractura de muñeca, con radiografía adjunta"
	out, err := uc.Update(context.Background(), admin, created.ID, dto.UpdateClaimRequest{
		Description: &newDesc,
	})

	require.NoError(t, err)
	assert.Equal(t, newDesc, out.Description)
	stored := claims.byID[created.ID]
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(150000)), "el monto no debe cambiar")
	assert.Equal(t, created.IncidentAt, stored.IncidentAt)
}
