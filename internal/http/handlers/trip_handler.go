// README: Trip session handlers: endpoints, tier selection, confirmation.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/http/middleware"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/modules/pricing"
	"bettercommute/internal/modules/trip"
	"bettercommute/internal/types"
)

type TripHandler struct {
	trip *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trip: svc}
}

type setEndpointReq struct {
	PlaceID string `json:"place_id"`
	Label   string `json:"label"`
}

type selectTierReq struct {
	Name string `json:"name"`
}

type sessionView struct {
	Status      trip.Status          `json:"status"`
	Origin      *trip.Endpoint       `json:"origin,omitempty"`
	Destination *trip.Endpoint       `json:"destination,omitempty"`
	Route       *routeView           `json:"route,omitempty"`
	Tier        *catalog.VehicleTier `json:"tier,omitempty"`
	TotalPrice  *int64               `json:"total_price,omitempty"`
}

type routeView struct {
	Path       []types.Point `json:"path"`
	DistanceKm float64       `json:"distance_km"`
}

func viewOf(s *trip.Session) sessionView {
	v := sessionView{
		Status:      s.Status(),
		Origin:      s.Origin,
		Destination: s.Destination,
		Tier:        s.Tier,
	}
	if s.Route != nil {
		v.Route = &routeView{Path: s.Route.Path, DistanceKm: s.Route.DistanceKm}
	}
	if s.Confirmable() {
		total := pricing.Quote(s.Tier.PricePerKm, s.Route.DistanceKm)
		v.TotalPrice = &total
	}
	return v
}

func (h *TripHandler) Get(c *gin.Context) {
	sess, err := h.trip.Get(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, viewOf(sess))
}

func (h *TripHandler) SetOrigin(c *gin.Context) {
	h.setEndpoint(c, h.trip.SetOrigin)
}

func (h *TripHandler) SetDestination(c *gin.Context) {
	h.setEndpoint(c, h.trip.SetDestination)
}

func (h *TripHandler) setEndpoint(c *gin.Context, apply func(ctx context.Context, userID types.ID, placeID, label string) (*trip.Session, error)) {
	var req setEndpointReq
	if err := c.ShouldBindJSON(&req); err != nil || req.PlaceID == "" {
		writeError(c, http.StatusBadRequest, "missing place_id")
		return
	}
	sess, err := apply(c.Request.Context(), types.ID(middleware.CallerUID(c)), req.PlaceID, req.Label)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, viewOf(sess))
}

func (h *TripHandler) SelectTier(c *gin.Context) {
	var req selectTierReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		writeError(c, http.StatusBadRequest, "missing tier name")
		return
	}
	sess, err := h.trip.SelectTier(c.Request.Context(), types.ID(middleware.CallerUID(c)), req.Name)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, viewOf(sess))
}

func (h *TripHandler) Confirm(c *gin.Context) {
	id, err := h.trip.Confirm(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"booking_id": id})
}

func (h *TripHandler) Reset(c *gin.Context) {
	if err := h.trip.Reset(c.Request.Context(), types.ID(middleware.CallerUID(c))); err != nil {
		writeTripError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
