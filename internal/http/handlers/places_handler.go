// README: Place autocomplete search handler.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/maps"
)

type PlacesHandler struct {
	places *maps.PlacesService
}

func NewPlacesHandler(svc *maps.PlacesService) *PlacesHandler {
	return &PlacesHandler{places: svc}
}

func (h *PlacesHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	predictions := h.places.Search(c.Request.Context(), query)
	if predictions == nil {
		predictions = []maps.Prediction{}
	}
	writeJSON(c, http.StatusOK, gin.H{"predictions": predictions})
}
