package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
)

func newClientFixture() (*ClientUseCase, *stubClients) {
	clients := &stubClients{byID: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Acme S.A.", TaxID: "900123456-1", Active: true},
	}}
	resolver := access.NewResolver(&stubGrants{}, &stubAffiliates{})
	return NewClientUseCase(clients, resolver), clients
}

// La baja de empresas cliente es exclusiva del admin de la correduría.
func TestClientDelete_SoloAdmin(t *testing.T) {
	uc, _ := newClientFixture()

	err := uc.Delete(context.Background(), access.Caller{UserID: "u1", Role: entity.RoleGestor}, "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), access.Caller{UserID: "u2", Role: entity.RoleAdmin}, "c1")
	assert.NoError(t, err)
}

// Un PATCH sin campos se rechaza como entrada inválida.
func TestClientUpdate_SinCampos(t *testing.T) {
	uc, _ := newClientFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), admin, "c1", dto.UpdateClientRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
