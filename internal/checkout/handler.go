package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/storelane/storefront-backend/internal/cart"
	"github.com/storelane/storefront-backend/internal/customer"
	"github.com/storelane/storefront-backend/internal/order"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout", h.getCheckout)
	app.Post("/api/v1/checkout/info", h.submitInfo)
	app.Post("/api/v1/checkout/payment", h.selectPayment)
	app.Post("/api/v1/checkout/back", h.goBack)
	app.Post("/api/v1/checkout/submit", h.submit)
}

type infoRequest struct {
	customer.ShippingInfo
	CouponCode string `json:"couponCode"`
}

type paymentRequest struct {
	PaymentMethodID int `json:"paymentMethodID"`
}

type submitRequest struct {
	CurrencyCode string `json:"currencyCode"`
}

// draftView is the JSON shape of the wizard state.
type draftView struct {
	Step            Step                  `json:"step"`
	Shipping        customer.ShippingInfo `json:"shipping"`
	CouponCode      string                `json:"couponCode,omitempty"`
	PaymentMethodID int                   `json:"paymentMethodID,omitempty"`
}

func viewOf(d *Draft) draftView {
	return draftView{
		Step:            d.Step(),
		Shipping:        d.Shipping(),
		CouponCode:      d.CouponCode(),
		PaymentMethodID: d.PaymentMethodID(),
	}
}

func (h *Handler) getCheckout(c *fiber.Ctx) error {
	d := h.service.Current(cart.SessionID(c))
	return c.JSON(viewOf(d))
}

func (h *Handler) submitInfo(c *fiber.Ctx) error {
	payload := new(infoRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session := cart.SessionID(c)
	if err := h.service.SubmitInfo(session, payload.ShippingInfo, payload.CouponCode); err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
		}
		if err == ErrWrongStep {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(viewOf(h.service.Current(session)))
}

func (h *Handler) selectPayment(c *fiber.Ctx) error {
	payload := new(paymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session := cart.SessionID(c)
	if err := h.service.SelectPayment(session, payload.PaymentMethodID); err != nil {
		switch err {
		case ErrPaymentRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "select a payment method"})
		case ErrWrongStep:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not verify payment method"})
		}
	}
	return c.JSON(viewOf(h.service.Current(session)))
}

func (h *Handler) goBack(c *fiber.Ctx) error {
	session := cart.SessionID(c)
	h.service.Back(session)
	return c.JSON(viewOf(h.service.Current(session)))
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(submitRequest)
	// body is optional; default currency is applied downstream
	_ = c.BodyParser(payload)

	session := cart.SessionID(c)
	ord, err := h.service.Submit(c.Context(), session, payload.CurrencyCode)
	if err != nil {
		switch {
		case err == ErrWrongStep || err == ErrPaymentRequired:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, order.ErrEmptyCart):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty"})
		default:
			// the draft stays on review so the user can retry
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "could not place order, please try again"})
		}
	}

	return c.JSON(fiber.Map{
		"orderNumber": ord.OrderNumber,
		"totalAmount": ord.TotalAmount,
		"status":      ord.Status,
	})
}
