package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
)

// InvitationHandler maneja el ciclo de vida de invitaciones por correo.
type InvitationHandler struct {
	uc *usecase.InvitationUseCase
}

// NewInvitationHandler construye el handler.
func NewInvitationHandler(uc *usecase.InvitationUseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// List GET /api/invitations?status=pendiente&email=ana@acme.co
func (h *InvitationHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	q := usecase.ListInvitationsQuery{
		Status: c.Query("status"),
		Email:  c.Query("email"),
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/invitations
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvitationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resend POST /api/invitations/:id/resend
// Rota el token y extiende el vencimiento; reenvía el correo.
func (h *InvitationHandler) Resend(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Resend(c.Context(), GetCaller(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel POST /api/invitations/:id/cancel
func (h *InvitationHandler) Cancel(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Cancel(c.Context(), GetCaller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Accept POST /api/invitations/accept (público)
// El token del correo autentica la operación; no requiere sesión.
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptInvitationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Accept(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
