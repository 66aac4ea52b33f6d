package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
)

// invitationTTL vigencia de una invitación desde su emisión.
const invitationTTL = 7 * 24 * time.Hour

// Mailer puerto de envío de correos de invitación. La implementación SMTP vive
// en infraestructura; los tests inyectan un fake.
type Mailer interface {
	SendInvitation(ctx context.Context, inv *entity.Invitation) error
}

// ListInvitationsQuery filtros del listado de invitaciones.
type ListInvitationsQuery struct {
	Status string
	Email  string
}

// InvitationUseCase ciclo de vida de invitaciones por correo.
type InvitationUseCase struct {
	invitations repository.InvitationRepository
	users       repository.UserRepository
	clients     repository.ClientRepository
	affiliates  repository.AffiliateRepository
	grants      repository.AccessGrantRepository
	resolver    *access.Resolver
	mailer      Mailer
}

// NewInvitationUseCase construye el caso de uso.
func NewInvitationUseCase(
	invitations repository.InvitationRepository,
	users repository.UserRepository,
	clients repository.ClientRepository,
	affiliates repository.AffiliateRepository,
	grants repository.AccessGrantRepository,
	resolver *access.Resolver,
	mailer Mailer,
) *InvitationUseCase {
	return &InvitationUseCase{
		invitations: invitations,
		users:       users,
		clients:     clients,
		affiliates:  affiliates,
		grants:      grants,
		resolver:    resolver,
		mailer:      mailer,
	}
}

// canManageInvitations gestión de invitaciones: admin de la correduría y
// admin_cliente; este último opera solo dentro de su alcance.
func canManageInvitations(caller access.Caller) bool {
	return caller.Role == entity.RoleAdmin || caller.Role.IsClientAdmin()
}

// invitationInScope visibilidad de una invitación para alcances restringidos.
func invitationInScope(scope access.Scope, inv *entity.Invitation) bool {
	if scope.All {
		return true
	}
	return inv.ClientID != nil && scope.AllowsClient(*inv.ClientID)
}

// Create emite una invitación y envía el correo con el token. Pueden invitar
// el admin de la correduría y los admin_cliente (solo para sus empresas con
// grant). Reglas por rol invitado:
//   - admin_cliente exige clientId existente;
//   - afiliado exige affiliateId existente; la empresa se deriva del afiliado;
//   - roles de la correduría no llevan ninguno de los dos y solo los emite admin.
func (uc *InvitationUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if !canManageInvitations(caller) {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	clientID := in.ClientID

	switch {
	case role.IsClientAdmin():
		if in.ClientID == nil {
			return nil, domain.NewValidationError("clientId", "es requerido para invitar admin_cliente")
		}
		// Fuera de alcance se reporta igual que inexistente.
		if !scope.AllowsClient(*in.ClientID) {
			return nil, domain.NewValidationError("clientId", "no existe")
		}
		c, err := uc.clients.GetByID(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.NewValidationError("clientId", "no existe")
		}
	case role.IsAffiliate():
		if in.AffiliateID == nil {
			return nil, domain.NewValidationError("affiliateId", "es requerido para invitar afiliados")
		}
		a, err := uc.affiliates.GetByID(ctx, *in.AffiliateID)
		if err != nil {
			return nil, err
		}
		if a == nil || !scope.AllowsClient(a.ClientID) {
			return nil, domain.NewValidationError("affiliateId", "no existe")
		}
		if a.UserID != nil {
			return nil, &domain.ConflictError{Field: "affiliateId"}
		}
		cid := a.ClientID
		clientID = &cid
	default:
		if caller.Role != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if in.ClientID != nil || in.AffiliateID != nil {
			return nil, domain.NewValidationError("role", "clientId y affiliateId no aplican para roles de la correduría")
		}
	}

	if existing, err := uc.users.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}
	if pending, err := uc.invitations.GetPendingByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if pending != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Invitation{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Role:        role,
		ClientID:    clientID,
		AffiliateID: in.AffiliateID,
		Token:       token,
		Status:      entity.InvitationStatusPending,
		InvitedBy:   caller.UserID,
		ExpiresAt:   now.Add(invitationTTL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invitations.Create(ctx, inv); err != nil {
		return nil, err
	}
	if err := uc.mailer.SendInvitation(ctx, inv); err != nil {
		return nil, err
	}
	resp := toInvitationResponse(inv)
	return &resp, nil
}

// List lista invitaciones. Los admin_cliente solo ven las de sus empresas.
func (uc *InvitationUseCase) List(ctx context.Context, caller access.Caller, q ListInvitationsQuery, page dto.PageRequest) (*dto.InvitationListResponse, error) {
	if !canManageInvitations(caller) {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	f := repository.InvitationFilter{Status: q.Status, Email: q.Email}
	if !scope.All {
		ids := scope.ClientIDs
		if ids == nil {
			ids = []string{}
		}
		f.ClientIDs = ids
	}
	total, err := uc.invitations.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.invitations.List(ctx, f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, toInvitationResponse(inv))
	}
	return &dto.InvitationListResponse{Invitations: out, Pagination: dto.NewPagination(total, page)}, nil
}

// Resend reexpide una invitación pendiente: rota el token, renueva la vigencia
// y reenvía el correo.
func (uc *InvitationUseCase) Resend(ctx context.Context, caller access.Caller, id string) (*dto.InvitationResponse, error) {
	if !canManageInvitations(caller) {
		return nil, domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invitations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil || !invitationInScope(scope, inv) {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InvitationStatusPending {
		return nil, domain.ErrInvalidStatus
	}
	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv.Token = token
	inv.ExpiresAt = now.Add(invitationTTL)
	inv.UpdatedAt = now
	if err := uc.invitations.Update(ctx, inv); err != nil {
		return nil, err
	}
	if err := uc.mailer.SendInvitation(ctx, inv); err != nil {
		return nil, err
	}
	resp := toInvitationResponse(inv)
	return &resp, nil
}

// Cancel anula una invitación pendiente.
func (uc *InvitationUseCase) Cancel(ctx context.Context, caller access.Caller, id string) error {
	if !canManageInvitations(caller) {
		return domain.ErrForbidden
	}
	scope, err := uc.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	inv, err := uc.invitations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil || !invitationInScope(scope, inv) {
		return domain.ErrNotFound
	}
	if inv.Status != entity.InvitationStatusPending {
		return domain.ErrInvalidStatus
	}
	inv.Status = entity.InvitationStatusCancelled
	inv.UpdatedAt = time.Now()
	return uc.invitations.Update(ctx, inv)
}

// Accept ruta pública: canjea el token, crea la cuenta y deja la invitación
// como aceptada. Para admin_cliente crea además el grant sobre su empresa;
// para afiliados vincula la cuenta al registro de afiliado.
func (uc *InvitationUseCase) Accept(ctx context.Context, in dto.AcceptInvitationRequest) (*dto.UserResponse, error) {
	inv, err := uc.invitations.GetByToken(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InvitationStatusPending {
		return nil, domain.ErrInvalidStatus
	}
	now := time.Now()
	if inv.Expired(now) {
		inv.Status = entity.InvitationStatusExpired
		inv.UpdatedAt = now
		_ = uc.invitations.Update(ctx, inv)
		return nil, domain.ErrInvalidStatus
	}
	if existing, err := uc.users.GetByEmail(ctx, inv.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        inv.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         inv.Role,
		AffiliateID:  inv.AffiliateID,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if inv.Role.IsClientAdmin() && inv.ClientID != nil {
		g := &entity.AccessGrant{
			ID:        uuid.New().String(),
			UserID:    u.ID,
			ClientID:  *inv.ClientID,
			GrantedBy: inv.InvitedBy,
			CreatedAt: now,
		}
		if err := uc.grants.Create(ctx, g); err != nil {
			return nil, err
		}
	}
	if inv.Role.IsAffiliate() && inv.AffiliateID != nil {
		a, err := uc.affiliates.GetByID(ctx, *inv.AffiliateID)
		if err != nil {
			return nil, err
		}
		if a != nil {
			a.UserID = &u.ID
			a.UpdatedAt = now
			if err := uc.affiliates.Update(ctx, a); err != nil {
				return nil, err
			}
		}
	}

	inv.Status = entity.InvitationStatusAccepted
	inv.AcceptedAt = &now
	inv.UpdatedAt = now
	if err := uc.invitations.Update(ctx, inv); err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// newInvitationToken genera un token opaco de 64 hex chars.
func newInvitationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func toInvitationResponse(inv *entity.Invitation) dto.InvitationResponse {
	return dto.InvitationResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		Role:        string(inv.Role),
		ClientID:    inv.ClientID,
		AffiliateID: inv.AffiliateID,
		Status:      inv.Status,
		InvitedBy:   inv.InvitedBy,
		ExpiresAt:   inv.ExpiresAt,
		AcceptedAt:  inv.AcceptedAt,
		CreatedAt:   inv.CreatedAt,
	}
}
