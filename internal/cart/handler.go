package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/storelane/storefront-backend/internal/product"
)

// CurrencyDisplayer formats a base amount for a display currency.
type CurrencyDisplayer interface {
	Display(amount float64, code string) string
}

type Handler struct {
	store      *Store
	products   product.ServiceInterface
	currencies CurrencyDisplayer
}

func NewHandler(store *Store, products product.ServiceInterface, currencies CurrencyDisplayer) *Handler {
	return &Handler{store: store, products: products, currencies: currencies}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Delete("/api/v1/cart", h.clearCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:productID", h.setQuantity)
	app.Delete("/api/v1/cart/items/:productID", h.removeItem)
}

type addItemRequest struct {
	ProductID int `json:"productID"`
	Quantity  int `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the JSON shape returned by every cart endpoint.
type cartView struct {
	Lines           []Line  `json:"lines"`
	TotalItems      int     `json:"totalItems"`
	Subtotal        float64 `json:"subtotal"`
	DisplaySubtotal string  `json:"displaySubtotal,omitempty"`
}

func (h *Handler) view(c *fiber.Ctx, crt *Cart) cartView {
	v := cartView{
		Lines:      crt.Lines(),
		TotalItems: crt.TotalItems(),
		Subtotal:   crt.Subtotal(),
	}
	if code := c.Query("currency"); code != "" && h.currencies != nil {
		v.DisplaySubtotal = h.currencies.Display(v.Subtotal, code)
	}
	return v
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	crt := h.store.Get(SessionID(c))
	return c.JSON(h.view(c, crt))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productID is required"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		if err == product.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if p.Stock <= 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product is out of stock"})
	}

	crt := h.store.Get(SessionID(c))
	crt.Add(p, payload.Quantity)
	return c.JSON(h.view(c, crt))
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload := new(setQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	crt := h.store.Get(SessionID(c))
	crt.SetQuantity(productID, payload.Quantity)
	return c.JSON(h.view(c, crt))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	crt := h.store.Get(SessionID(c))
	crt.Remove(productID)
	return c.JSON(h.view(c, crt))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.store.Get(SessionID(c)).Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
