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
	ticketClientID = "5c1b2c3d-0000-4000-8000-000000000001"
	ticketGhostID  = "5c1b2c3d-0000-4000-8000-000000000002"
)

func newTicketFixture() (*TicketUseCase, *stubTickets) {
	clients := &stubClients{byID: map[string]*entity.Client{
		ticketClientID: {ID: ticketClientID, Name: "Acme S.A.", Active: true},
	}}
	affs := &stubAffiliates{}
	tickets := &stubTickets{}
	resolver := access.NewResolver(&stubGrants{}, affs)
	return NewTicketUseCase(tickets, clients, affs, resolver), tickets
}

func validTicketRequest(clientID string) dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		ClientID: clientID,
		Subject:  "Certificado de cobertura",
		Body:     "Necesitamos el certificado de cobertura vigente del plan colectivo.",
	}
}

// Una empresa inexistente responde NotFound sin crear el ticket.
func TestTicketCreate_ClienteInexistente(t *testing.T) {
	uc, tickets := newTicketFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), admin, validTicketRequest(ticketGhostID))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, tickets.created)
}

func TestTicketCreate_ClienteExistente(t *testing.T) {
	uc, tickets := newTicketFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	out, err := uc.Create(context.Background(), admin, validTicketRequest(ticketClientID))

	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, out.Status)
	assert.Equal(t, entity.TicketPriorityMedium, out.Priority)
	require.NotNil(t, tickets.created)
	assert.NotEmpty(t, tickets.created.Number)
}

// Un PATCH sin campos se rechaza como entrada inválida.
func TestTicketUpdate_SinCampos(t *testing.T) {
	uc, _ := newTicketFixture()
	admin := access.Caller{UserID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), admin, ticketGhostID, dto.UpdateTicketRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
