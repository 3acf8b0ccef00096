package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/storefront-backend/internal/order"
)

// Handler is the back-office surface: a login endpoint plus protected
// order management routes. The protected routes must be registered after
// the JWT middleware in main.
type Handler struct {
	orders *order.Service

	jwtSecret    string
	adminEmail   string
	passwordHash string // bcrypt hash, from the environment
}

func NewHandler(orders *order.Service, jwtSecret, adminEmail, passwordHash string) *Handler {
	return &Handler{orders: orders, jwtSecret: jwtSecret, adminEmail: adminEmail, passwordHash: passwordHash}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.getOrders)
	app.Put("/api/v1/admin/orders/:id/status", h.updateStatus)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if h.passwordHash == "" || payload.Email != h.adminEmail ||
		bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(payload.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"email": payload.Email,
		"role":  "admin",
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{"message": "Login successful", "token": signed})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	orders, err := h.orders.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load orders"})
	}
	return c.JSON(orders)
}

type statusRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.orders.UpdateStatus(c.Context(), id, payload.From, payload.To); err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "status updated"})
}
