package transport

import (
	"errors"
	"net/http"

	"event-booking/internal/entity"
	"event-booking/internal/monitoring"
	"event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookTicket accepts the booking form (event_id, user_name, user_email,
// seats) as form fields or JSON.
func (h *BookingHandler) BookTicket(c *gin.Context) {
	var req service.BookTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.bookingService.SubmitBooking(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, entity.ErrNotEnoughSeats), errors.Is(err, entity.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	monitoring.RecordBooking(confirmation.Booking.Seats)

	c.JSON(http.StatusCreated, confirmation)
}

// ListBookings serves every booking, newest first, for the admin side.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListEventBookings serves the bookings recorded against one event.
func (h *BookingHandler) ListEventBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListEventBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
