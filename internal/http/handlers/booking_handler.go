// README: Booking history handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/http/middleware"
	"bettercommute/internal/modules/booking"
	"bettercommute/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.bookings.ListByUser(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), types.ID(middleware.CallerUID(c)), types.ID(c.Param("id")))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}
