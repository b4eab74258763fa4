package routes

import (
	"photo_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings  = "/bookings"
	PathGalleries = "/galleries"
	PathPayments  = "/payments"
	PathOrders    = "/orders"
	PathWebhooks  = "/webhooks"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.BookingPaymentHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("/deposit", paymentHandler.StartDeposit)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.PATCH("/:booking_id/cancel", bookingHandler.CancelBooking)
	}
}

func addGalleryRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, selectionHandler *handlers.SelectionHandler) {
	galleries := rg.Group(PathGalleries)
	{
		galleries.GET("/:gallery_id", bookingHandler.GetGallery)
		galleries.POST("/:gallery_id/quote", selectionHandler.Quote)
		galleries.POST("/:gallery_id/checkout", selectionHandler.Checkout)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BookingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:attempt_id", paymentHandler.GetAttempt)
		payments.DELETE("/:attempt_id", paymentHandler.CancelAttempt)
	}

	rg.GET(PathOrders+"/:external_id", paymentHandler.GetOrder)
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/mercadopago", webhookHandler.MercadoPago)
}
