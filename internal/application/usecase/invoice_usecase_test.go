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
	invoiceClientID = "3d1b2c3d-0000-4000-8000-000000000001"
	invoiceGhostID  = "3d1b2c3d-0000-4000-8000-000000000002"
)

func newInvoiceFixture() (*InvoiceUseCase, *stubInvoices) {
	clients := &stubClients{byID: map[string]*entity.Client{
		invoiceClientID: {ID: invoiceClientID, Name: "Acme S.A.", Active: true},
	}}
	invoices := &stubInvoices{}
	policies := &stubPolicies{}
	resolver := access.NewResolver(&stubGrants{}, &stubAffiliates{})
	return NewInvoiceUseCase(invoices, clients, policies, resolver), invoices
}

func validInvoiceRequest(clientID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID: clientID,
		Number:   "FAC-2026-0001",
		Amount:   decimal.NewFromInt(980000),
		IssuedAt: "2026-08-01",
		DueDate:  "2026-09-01",
	}
}

// Una empresa inexistente responde NotFound sin crear la factura.
func TestInvoiceCreate_ClienteInexistente(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), admin, validInvoiceRequest(invoiceGhostID))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, invoices.created)
}

func TestInvoiceCreate_ClienteExistente(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	out, err := uc.Create(context.Background(), admin, validInvoiceRequest(invoiceClientID))

	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, out.Status)
	require.NotNil(t, invoices.created)
	assert.Equal(t, invoiceClientID, invoices.created.ClientID)
}

// Un PATCH sin campos se rechaza como entrada inválida.
func TestInvoiceUpdate_SinCampos(t *testing.T) {
	uc, _ := newInvoiceFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), admin, invoiceGhostID, dto.UpdateInvoiceRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
