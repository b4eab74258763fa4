package handlers

import (
	"errors"
	"log"
	"net/http"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)
)

// SelectionHandler prices and checks out gallery photo selections.
type SelectionHandler struct {
	usecase usecase.ISelectionUseCase
}

func NewSelectionHandler(uc usecase.ISelectionUseCase) *SelectionHandler {
	return &SelectionHandler{usecase: uc}
}

// Quote godoc
// @Summary      Quote a selection
// @Description  Prices the selected photos: package photos are included, extras are charged with the progressive discount.
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Param        gallery_id  path      string                     true  "Gallery ID"
// @Param        payload     body      request.SelectionRequest  true  "Selected photos"
// @Success      200         {object}  response.PriceBreakdownResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /galleries/{gallery_id}/quote [post]
func (h *SelectionHandler) Quote(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Quote(c.Request.Context(), c.Param("gallery_id"), payload.ResolvePhotoIDs())
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceBreakdown(breakdown))
}

// Checkout godoc
// @Summary      Check out a selection
// @Description  Selections within the package are settled at once with a zero-value order; otherwise a PIX payment is opened for the total due.
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Param        gallery_id  path      string                     true  "Gallery ID"
// @Param        payload     body      request.SelectionRequest  true  "Selected photos"
// @Success      200         {object}  response.CheckoutResponse  "Settled without payment"
// @Success      201         {object}  response.CheckoutResponse  "Awaiting PIX payment"
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /galleries/{gallery_id}/checkout [post]
func (h *SelectionHandler) Checkout(c *gin.Context) {
	galleryID := c.Param("gallery_id")
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}
	log.Printf("[selection][handler] checkout start gallery_id=%s photos=%d", galleryID, len(payload.PhotoIDs))

	result, err := h.usecase.Checkout(c.Request.Context(), galleryID, payload.ResolvePhotoIDs(), usecase.Payer{Email: payload.PayerEmail, DeviceID: payload.DeviceID})
	if err != nil {
		log.Printf("[selection][handler] checkout failed gallery_id=%s err=%v", galleryID, err)
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if result.Attempt == nil {
		status = http.StatusOK
	}
	c.JSON(status, response.FromCheckoutResult(result))
}

func mapSelectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGalleryID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPhoto):
		return pkg.NewDomainErrorSimple("UNKNOWN_PHOTO", "Selected photo does not belong to this gallery", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGalleryNotFound):
		return pkg.NewDomainErrorSimple("GALLERY_NOT_FOUND", "Gallery not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSelectionAlreadyPaid):
		return pkg.NewDomainErrorSimple("SELECTION_ALREADY_PAID", "Selection already paid for this gallery", http.StatusConflict)
	default:
		return mapPaymentError(err)
	}
}
