package order

import "github.com/gofiber/fiber/v2"

// Handler exposes order reads. Orders are only created through checkout
// submission, so there is no public POST here.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/orders/:number", h.getOrder)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByNumber(c.Context(), c.Params("number"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load order"})
	}
	return c.JSON(ord)
}
