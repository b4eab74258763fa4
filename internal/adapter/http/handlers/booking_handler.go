package handlers

import (
	"errors"
	"log"
	"net/http"

	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes confirmed bookings and their galleries.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListBookings godoc
// @Summary      List a client's bookings
// @Tags         bookings
// @Produce      json
// @Param        email  query     string  true  "Client email"
// @Success      200    {array}   response.BookingResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.usecase.ListByClientEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(list))
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Marks the booking cancelled. Refunds are handled outside the service.
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[booking][handler] cancel start booking_id=%s", bookingID)

	b, err := h.usecase.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// GetGallery godoc
// @Summary      Get gallery
// @Tags         galleries
// @Produce      json
// @Param        gallery_id  path      string  true  "Gallery ID"
// @Success      200         {object}  response.GalleryResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /galleries/{gallery_id} [get]
func (h *BookingHandler) GetGallery(c *gin.Context) {
	g, err := h.usecase.GetGallery(c.Request.Context(), c.Param("gallery_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGallery(g))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidGalleryID), errors.Is(err, usecase.ErrInvalidClientEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGalleryNotFound):
		return pkg.NewDomainErrorSimple("GALLERY_NOT_FOUND", "Gallery not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingAlreadyCancelled):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_CANCELLED", "Booking already cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
