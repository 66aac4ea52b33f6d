package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
)

// AffiliateHandler maneja las peticiones HTTP de afiliados.
type AffiliateHandler struct {
	uc *usecase.AffiliateUseCase
}

// NewAffiliateHandler construye el handler.
func NewAffiliateHandler(uc *usecase.AffiliateUseCase) *AffiliateHandler {
	return &AffiliateHandler{uc: uc}
}

// List GET /api/affiliates?clientId=...&kind=titular&active=true&search=perez
func (h *AffiliateHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	clientID, err := queryUUID(c, "clientId")
	if err != nil {
		return respondError(c, err)
	}
	q := usecase.ListAffiliatesQuery{
		ClientID: clientID,
		Kind:     c.Query("kind"),
		Active:   queryBoolPtr(c, "active"),
		Search:   c.Query("search"),
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/affiliates/:id
func (h *AffiliateHandler) Get(c *fiber.Ctx) error {
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

// Create POST /api/affiliates
func (h *AffiliateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAffiliateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /api/affiliates/:id
func (h *AffiliateHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAffiliateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/affiliates/:id
func (h *AffiliateHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
