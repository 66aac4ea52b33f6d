package usecase

// Fakes en memoria de los puertos de repositorio, compartidos por los tests
// del paquete. Solo implementan lo que los casos de uso ejercitan; el resto
// devuelve el valor cero.

import (
	"context"
	"time"

	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Alcance: grants y afiliados
// ──────────────────────────────────────────────────────────────────────────────

type stubGrants struct {
	byUser map[string][]string
}

func (s *stubGrants) Create(ctx context.Context, g *entity.AccessGrant) error { return nil }
func (s *stubGrants) ListClientIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return s.byUser[userID], nil
}
func (s *stubGrants) DeleteByUserAndClient(ctx context.Context, userID, clientID string) error {
	return nil
}

type stubAffiliates struct {
	byID       map[string]*entity.Affiliate
	dependents map[string][]*entity.Affiliate
}

func (s *stubAffiliates) Create(ctx context.Context, a *entity.Affiliate) error { return nil }
func (s *stubAffiliates) GetByID(ctx context.Context, id string) (*entity.Affiliate, error) {
	return s.byID[id], nil
}
func (s *stubAffiliates) GetRowByID(ctx context.Context, id string) (*repository.AffiliateRow, error) {
	a := s.byID[id]
	if a == nil {
		return nil, nil
	}
	return &repository.AffiliateRow{Affiliate: *a}, nil
}
func (s *stubAffiliates) GetByClientAndDocument(ctx context.Context, clientID, documentID string) (*entity.Affiliate, error) {
	return nil, nil
}
func (s *stubAffiliates) ListDependents(ctx context.Context, primaryAffiliateID string) ([]*entity.Affiliate, error) {
	return s.dependents[primaryAffiliateID], nil
}
func (s *stubAffiliates) List(ctx context.Context, f repository.AffiliateFilter, limit, offset int) ([]*repository.AffiliateRow, error) {
	return nil, nil
}
func (s *stubAffiliates) Count(ctx context.Context, f repository.AffiliateFilter) (int, error) {
	return 0, nil
}
func (s *stubAffiliates) Update(ctx context.Context, a *entity.Affiliate) error { return nil }
func (s *stubAffiliates) Delete(ctx context.Context, id string) error           { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Entidades de negocio
// ──────────────────────────────────────────────────────────────────────────────

type stubClients struct {
	byID map[string]*entity.Client
}

func (s *stubClients) Create(ctx context.Context, c *entity.Client) error { return nil }
func (s *stubClients) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return s.byID[id], nil
}
func (s *stubClients) GetByTaxID(ctx context.Context, taxID string) (*entity.Client, error) {
	return nil, nil
}
func (s *stubClients) List(ctx context.Context, f repository.ClientFilter, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (s *stubClients) Count(ctx context.Context, f repository.ClientFilter) (int, error) {
	return 0, nil
}
func (s *stubClients) Update(ctx context.Context, c *entity.Client) error { return nil }
func (s *stubClients) Delete(ctx context.Context, id string) error        { return nil }

type stubPolicies struct {
	byID map[string]*entity.Policy
}

func (s *stubPolicies) Create(ctx context.Context, p *entity.Policy) error { return nil }
func (s *stubPolicies) GetByID(ctx context.Context, id string) (*entity.Policy, error) {
	return s.byID[id], nil
}
func (s *stubPolicies) GetRowByID(ctx context.Context, id string) (*repository.PolicyRow, error) {
	p := s.byID[id]
	if p == nil {
		return nil, nil
	}
	return &repository.PolicyRow{Policy: *p}, nil
}
func (s *stubPolicies) GetByNumber(ctx context.Context, number string) (*entity.Policy, error) {
	return nil, nil
}
func (s *stubPolicies) List(ctx context.Context, f repository.PolicyFilter, limit, offset int) ([]*repository.PolicyRow, error) {
	return nil, nil
}
func (s *stubPolicies) Count(ctx context.Context, f repository.PolicyFilter) (int, error) {
	return 0, nil
}
func (s *stubPolicies) Update(ctx context.Context, p *entity.Policy) error { return nil }
func (s *stubPolicies) Delete(ctx context.Context, id string) error        { return nil }
func (s *stubPolicies) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubClaims struct {
	byID    map[string]*entity.Claim
	created *entity.Claim
}

func (s *stubClaims) Create(ctx context.Context, c *entity.Claim) error {
	if s.byID == nil {
		s.byID = map[string]*entity.Claim{}
	}
	s.byID[c.ID] = c
	s.created = c
	return nil
}
func (s *stubClaims) GetByID(ctx context.Context, id string) (*entity.Claim, error) {
	return s.byID[id], nil
}
func (s *stubClaims) GetRowByID(ctx context.Context, id string) (*repository.ClaimRow, error) {
	c := s.byID[id]
	if c == nil {
		return nil, nil
	}
	return &repository.ClaimRow{Claim: *c}, nil
}
func (s *stubClaims) List(ctx context.Context, f repository.ClaimFilter, limit, offset int) ([]*repository.ClaimRow, error) {
	return nil, nil
}
func (s *stubClaims) Count(ctx context.Context, f repository.ClaimFilter) (int, error) {
	return 0, nil
}
func (s *stubClaims) Update(ctx context.Context, c *entity.Claim) error {
	s.byID[c.ID] = c
	return nil
}
func (s *stubClaims) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type stubEmployees struct {
	byID map[string]*entity.Employee
}

func (s *stubEmployees) Create(ctx context.Context, e *entity.Employee) error {
	if s.byID == nil {
		s.byID = map[string]*entity.Employee{}
	}
	s.byID[e.ID] = e
	return nil
}
func (s *stubEmployees) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return s.byID[id], nil
}
func (s *stubEmployees) GetByCode(ctx context.Context, code string) (*entity.Employee, error) {
	return nil, nil
}
func (s *stubEmployees) List(ctx context.Context, f repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, error) {
	return nil, nil
}
func (s *stubEmployees) Count(ctx context.Context, f repository.EmployeeFilter) (int, error) {
	return 0, nil
}
func (s *stubEmployees) Update(ctx context.Context, e *entity.Employee) error {
	s.byID[e.ID] = e
	return nil
}
func (s *stubEmployees) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type stubTickets struct {
	byID    map[string]*entity.Ticket
	created *entity.Ticket
	seq     int64
}

func (s *stubTickets) NextSeq(ctx context.Context) (int64, error) {
	s.seq++
	return s.seq, nil
}
func (s *stubTickets) Create(ctx context.Context, t *entity.Ticket) error {
	if s.byID == nil {
		s.byID = map[string]*entity.Ticket{}
	}
	s.byID[t.ID] = t
	s.created = t
	return nil
}
func (s *stubTickets) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return s.byID[id], nil
}
func (s *stubTickets) GetRowByID(ctx context.Context, id string) (*repository.TicketRow, error) {
	t := s.byID[id]
	if t == nil {
		return nil, nil
	}
	return &repository.TicketRow{Ticket: *t}, nil
}
func (s *stubTickets) GetByNumber(ctx context.Context, number string) (*entity.Ticket, error) {
	return nil, nil
}
func (s *stubTickets) List(ctx context.Context, f repository.TicketFilter, limit, offset int) ([]*repository.TicketRow, error) {
	return nil, nil
}
func (s *stubTickets) Count(ctx context.Context, f repository.TicketFilter) (int, error) {
	return 0, nil
}
func (s *stubTickets) Update(ctx context.Context, t *entity.Ticket) error {
	s.byID[t.ID] = t
	return nil
}
func (s *stubTickets) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type stubInvoices struct {
	byID    map[string]*entity.Invoice
	created *entity.Invoice
}

func (s *stubInvoices) Create(ctx context.Context, inv *entity.Invoice) error {
	if s.byID == nil {
		s.byID = map[string]*entity.Invoice{}
	}
	s.byID[inv.ID] = inv
	s.created = inv
	return nil
}
func (s *stubInvoices) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return s.byID[id], nil
}
func (s *stubInvoices) GetRowByID(ctx context.Context, id string) (*repository.InvoiceRow, error) {
	inv := s.byID[id]
	if inv == nil {
		return nil, nil
	}
	return &repository.InvoiceRow{Invoice: *inv}, nil
}
func (s *stubInvoices) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoices) List(ctx context.Context, f repository.InvoiceFilter, limit, offset int) ([]*repository.InvoiceRow, error) {
	return nil, nil
}
func (s *stubInvoices) Count(ctx context.Context, f repository.InvoiceFilter) (int, error) {
	return 0, nil
}
func (s *stubInvoices) Update(ctx context.Context, inv *entity.Invoice) error {
	s.byID[inv.ID] = inv
	return nil
}
func (s *stubInvoices) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}
func (s *stubInvoices) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubInvitations struct {
	byID       map[string]*entity.Invitation
	created    *entity.Invitation
	lastFilter repository.InvitationFilter
}

func (s *stubInvitations) Create(ctx context.Context, inv *entity.Invitation) error {
	if s.byID == nil {
		s.byID = map[string]*entity.Invitation{}
	}
	s.byID[inv.ID] = inv
	s.created = inv
	return nil
}
func (s *stubInvitations) GetByID(ctx context.Context, id string) (*entity.Invitation, error) {
	return s.byID[id], nil
}
func (s *stubInvitations) GetByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	for _, inv := range s.byID {
		if inv.Token == token {
			return inv, nil
		}
	}
	return nil, nil
}
func (s *stubInvitations) GetPendingByEmail(ctx context.Context, email string) (*entity.Invitation, error) {
	for _, inv := range s.byID {
		if inv.Email == email && inv.Status == entity.InvitationStatusPending {
			return inv, nil
		}
	}
	return nil, nil
}
func (s *stubInvitations) List(ctx context.Context, f repository.InvitationFilter, limit, offset int) ([]*entity.Invitation, error) {
	s.lastFilter = f
	return nil, nil
}
func (s *stubInvitations) Count(ctx context.Context, f repository.InvitationFilter) (int, error) {
	s.lastFilter = f
	return 0, nil
}
func (s *stubInvitations) Update(ctx context.Context, inv *entity.Invitation) error {
	s.byID[inv.ID] = inv
	return nil
}
func (s *stubInvitations) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubUsers struct {
	byID map[string]*entity.User
}

func (s *stubUsers) Create(ctx context.Context, u *entity.User) error {
	if s.byID == nil {
		s.byID = map[string]*entity.User{}
	}
	s.byID[u.ID] = u
	return nil
}
func (s *stubUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.byID[id], nil
}
func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubUsers) List(ctx context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) Count(ctx context.Context, f repository.UserFilter) (int, error) {
	return 0, nil
}
func (s *stubUsers) Update(ctx context.Context, u *entity.User) error { return nil }
func (s *stubUsers) Delete(ctx context.Context, id string) error      { return nil }

type stubMailer struct {
	sent int
}

func (s *stubMailer) SendInvitation(ctx context.Context, inv *entity.Invitation) error {
	s.sent++
	return nil
}
