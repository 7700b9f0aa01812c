package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightNumber string `json:"flightNumber"`
	Seats        int    `json:"seats"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/bookings", h.list)
	router.POST("/bookings", h.create)
	router.DELETE("/bookings/:flightNumber", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// create runs the reconcile: a fresh request reserves seats, a repeat
// request for the same flight cancels the existing booking.
func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FlightNumber == "" || req.Seats <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing flight number or seats"})
		return
	}

	result, err := h.service.Reconcile(c.Request.Context(), booking.ReconcileInput{
		FlightNumber: req.FlightNumber,
		UserID:       currentUserID(c),
		Seats:        req.Seats,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if result.Action == booking.ActionCanceled {
		c.JSON(http.StatusOK, gin.H{"message": "Booking canceled successfully", "flight": result.Flight})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking successful", "flight": result.Flight, "booking": result.Booking})
}

// cancel is the explicit cancellation path, without the toggle overload on
// POST.
func (h *BookingHandler) cancel(c *gin.Context) {
	result, err := h.service.Cancel(c.Request.Context(), c.Param("flightNumber"), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled successfully", "flight": result.Flight})
}

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, domain.ErrInsufficientSeats), errors.Is(err, domain.ErrDuplicateBooking):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
