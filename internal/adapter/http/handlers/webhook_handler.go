package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "photo_studio/internal/adapter/http/dto/request"
	"photo_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// MercadoPago godoc
// @Summary      Mercado Pago webhook
// @Description  Reads the payment status back from Mercado Pago and reconciles the order. Non-payment topics are acknowledged and ignored.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload  body      request.MercadoPagoNotification  false  "Notification"
// @Param        topic    query     string                           false  "IPN topic"
// @Param        id       query     string                           false  "IPN resource id"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	var payload request.MercadoPagoNotification
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][webhook][handler] read body failed err=%v", err)
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Printf("[payment][webhook][handler] invalid body err=%v", err)
			c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
			return
		}
	}

	queryTopic := c.Query("topic")
	if queryTopic == "" {
		queryTopic = c.Query("type")
	}
	queryID := c.Query("data.id")
	if queryID == "" {
		queryID = c.Query("id")
	}
	topic, paymentID := payload.Resolve(queryTopic, queryID)

	err = h.usecase.HandlePaymentNotification(c.Request.Context(), topic, paymentID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "processed"})
	case errors.Is(err, usecase.ErrPaymentAttemptNotFound):
		// Not ours (or already purged): acknowledge so the gateway stops retrying.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	default:
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}
