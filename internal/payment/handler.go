package payment

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	bridge       *Bridge
	transactions TransactionRepository
}

func NewHandler(bridge *Bridge, transactions TransactionRepository) *Handler {
	return &Handler{bridge: bridge, transactions: transactions}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/payments/:provider", h.sendAction)
}

func (h *Handler) sendAction(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Action == "" || payload.OrderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "action and orderId are required"})
	}

	provider := c.Params("provider")
	res, err := h.bridge.Send(c.Context(), provider, *payload)
	if err != nil {
		if err == ErrUnknownProvider {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "unknown provider"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "payment provider unavailable"})
	}

	// the transaction row is best effort; a lost record must not fail the payment
	if h.transactions != nil {
		_, err := h.transactions.Record(c.Context(), Transaction{
			OrderID:  payload.OrderID,
			Provider: provider,
			Action:   payload.Action,
			Amount:   payload.Amount,
			Currency: payload.Currency,
			Status:   res.Status,
		})
		if err != nil {
			log.Printf("warning: could not record payment transaction for order %d: %v", payload.OrderID, err)
		}
	}

	return c.JSON(res)
}
