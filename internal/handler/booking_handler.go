package handler

import (
	"log"
	"net/http"

	"wanderwith/internal/model"
	"wanderwith/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking and payment requests
type BookingHandler struct {
	bookings service.BookingService
	payments service.PaymentService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings service.BookingService, payments service.PaymentService) *BookingHandler {
	return &BookingHandler{bookings: bookings, payments: payments}
}

func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.payments.CreatePaymentIntent(c.Request.Context(), *req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intent)
}

// CreateBooking answers every failure with 400 and the error text
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// RegisterBookingRoutes registers booking and payment routes
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreatePaymentIntent)
	rg.POST("/booking", h.CreateBooking)
}
