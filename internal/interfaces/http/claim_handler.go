package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
)

// ClaimHandler maneja las peticiones HTTP de siniestros.
type ClaimHandler struct {
	uc *usecase.ClaimUseCase
}

// NewClaimHandler construye el handler.
func NewClaimHandler(uc *usecase.ClaimUseCase) *ClaimHandler {
	return &ClaimHandler{uc: uc}
}

// List GET /api/claims?clientId=...&policyId=...&status=radicado&incidentFrom=2026-01-01
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	clientID, err := queryUUID(c, "clientId")
	if err != nil {
		return respondError(c, err)
	}
	policyID, err := queryUUID(c, "policyId")
	if err != nil {
		return respondError(c, err)
	}
	incidentFrom, err := queryDate(c, "incidentFrom")
	if err != nil {
		return respondError(c, err)
	}
	incidentTo, err := queryDate(c, "incidentTo")
	if err != nil {
		return respondError(c, err)
	}
	q := usecase.ListClaimsQuery{
		ClientID:     clientID,
		PolicyID:     policyID,
		Status:       c.Query("status"),
		IncidentFrom: incidentFrom,
		IncidentTo:   incidentTo,
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/claims/:id
func (h *ClaimHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.Context(), GetCaller(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/claims
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClaimRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /api/claims/:id
func (h *ClaimHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateClaimRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Review POST /api/claims/:id/review
// Transiciona el estado del siniestro; restringido al grupo senior.
func (h *ClaimHandler) Review(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ReviewClaimRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Review(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/claims/:id
func (h *ClaimHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
