package handlers

import (
	"errors"
	"log"
	"net/http"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDepositPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
)

// BookingPaymentHandler handles the PIX deposit flow and payment status queries.
type BookingPaymentHandler struct {
	usecase usecase.IBookingPaymentUseCase
}

func NewBookingPaymentHandler(uc usecase.IBookingPaymentUseCase) *BookingPaymentHandler {
	return &BookingPaymentHandler{usecase: uc}
}

// StartDeposit godoc
// @Summary      Start a booking deposit
// @Description  Opens a PIX payment for the session deposit and starts polling it. The booking is created once the payment is approved.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BookingDepositRequest  true  "Booking draft"
// @Success      201      {object}  response.PaymentAttemptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /bookings/deposit [post]
func (h *BookingPaymentHandler) StartDeposit(c *gin.Context) {
	var payload request.BookingDepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[booking][handler] invalid deposit payload err=%v", err)
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		log.Printf("[booking][handler] invalid deposit payload err=%v", err)
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	attempt, err := h.usecase.StartDeposit(c.Request.Context(), draft, usecase.Payer{Email: payload.PayerEmail, DeviceID: payload.DeviceID})
	if err != nil {
		log.Printf("[booking][handler] start-deposit failed client_email=%s err=%v", draft.ClientEmail, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] start-deposit success attempt_id=%s external_id=%s", attempt.ID, attempt.ExternalID)

	c.JSON(http.StatusCreated, response.FromPaymentAttempt(attempt))
}

// GetAttempt godoc
// @Summary      Get payment attempt
// @Description  Returns the current poll state of a PIX payment attempt.
// @Tags         payments
// @Produce      json
// @Param        attempt_id  path      string  true  "Attempt ID"
// @Success      200         {object}  response.PaymentAttemptResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{attempt_id} [get]
func (h *BookingPaymentHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.usecase.GetAttempt(c.Request.Context(), c.Param("attempt_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempt(attempt))
}

// CancelAttempt godoc
// @Summary      Cancel payment attempt
// @Description  Stops polling a PIX payment. A payment completed afterwards is still reconciled through the webhook.
// @Tags         payments
// @Produce      json
// @Param        attempt_id  path      string  true  "Attempt ID"
// @Success      200         {object}  response.PaymentAttemptResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{attempt_id} [delete]
func (h *BookingPaymentHandler) CancelAttempt(c *gin.Context) {
	attemptID := c.Param("attempt_id")
	log.Printf("[payment][handler] cancel start attempt_id=%s", attemptID)

	attempt, err := h.usecase.CancelAttempt(c.Request.Context(), attemptID)
	if err != nil {
		log.Printf("[payment][handler] cancel failed attempt_id=%s err=%v", attemptID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempt(attempt))
}

// GetOrder godoc
// @Summary      Get order
// @Description  Returns the order recorded for a gateway transaction id.
// @Tags         orders
// @Produce      json
// @Param        external_id  path      string  true  "Gateway transaction ID"
// @Success      200          {object}  response.OrderResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /orders/{external_id} [get]
func (h *BookingPaymentHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("external_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingDraft), errors.Is(err, usecase.ErrInvalidPaymentAttemptID),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPayer),
		errors.Is(err, usecase.ErrInvalidWebhookPayload), errors.Is(err, pricing.ErrInvalidInput),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDepositNotRequired):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_REQUIRED", "No deposit is configured for this session", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured: set MERCADOPAGO_ACCESS_TOKEN or PAYMENT_GATEWAY_MOCK=true", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentAttemptNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment attempt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAttemptAlreadyClosed):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_FINISHED", "Payment attempt already finished", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransientNetwork):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider temporarily unavailable, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
