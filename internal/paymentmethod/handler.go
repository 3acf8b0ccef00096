package paymentmethod

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/payment-methods", h.getMethods)
}

func (h *Handler) getMethods(c *fiber.Ctx) error {
	items, err := h.service.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load payment methods"})
	}
	return c.JSON(items)
}
