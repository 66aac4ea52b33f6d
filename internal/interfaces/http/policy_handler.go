package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
)

// PolicyHandler maneja las peticiones HTTP de pólizas.
type PolicyHandler struct {
	uc *usecase.PolicyUseCase
}

// NewPolicyHandler construye el handler.
func NewPolicyHandler(uc *usecase.PolicyUseCase) *PolicyHandler {
	return &PolicyHandler{uc: uc}
}

// List GET /api/policies?clientId=...&status=activa&product=salud&startFrom=2026-01-01
func (h *PolicyHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	clientID, err := queryUUID(c, "clientId")
	if err != nil {
		return respondError(c, err)
	}
	startFrom, err := queryDate(c, "startFrom")
	if err != nil {
		return respondError(c, err)
	}
	startTo, err := queryDate(c, "startTo")
	if err != nil {
		return respondError(c, err)
	}
	q := usecase.ListPoliciesQuery{
		ClientID:  clientID,
		Status:    c.Query("status"),
		Product:   c.Query("product"),
		StartFrom: startFrom,
		StartTo:   startTo,
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/policies/:id
func (h *PolicyHandler) Get(c *fiber.Ctx) error {
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

// Create POST /api/policies
func (h *PolicyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePolicyRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /api/policies/:id
func (h *PolicyHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePolicyRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/policies/:id
func (h *PolicyHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), GetCaller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
