package handler

import (
	"errors"

	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/infrastructure/payment"
	"crewcall/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type BillingHandler struct {
	gateway payment.Gateway
}

type verifyPaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func NewBillingHandler(gateway payment.Gateway) *BillingHandler {
	return &BillingHandler{gateway: gateway}
}

func (h *BillingHandler) RegisterCompanyRoutes(r fiber.Router) {
	r.Post("/billing/payment-methods", h.VerifyPaymentMethod)
	r.Post("/billing/subscriptions", h.CreateSubscription)
}

func (h *BillingHandler) VerifyPaymentMethod(c fiber.Ctx) error {
	var req verifyPaymentMethodRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.gateway.VerifyPaymentMethod(c.Context(), req.PaymentMethod); err != nil {
		if errors.Is(err, payment.ErrInvalidMethod) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid payment method", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// CreateSubscription surfaces the gateway's stub: billing exists as an API
// shape but charging is not wired to a processor.
func (h *BillingHandler) CreateSubscription(c fiber.Ctx) error {
	var req struct {
		PaymentMethod string `json:"payment_method"`
		Plan          string `json:"plan"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.gateway.CreateSubscription(c.Context(), req.PaymentMethod, req.Plan)
	if errors.Is(err, payment.ErrNotImplemented) {
		return middleware.NewAppError(fiber.StatusNotImplemented, "Subscriptions are not available yet", nil, err)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}
