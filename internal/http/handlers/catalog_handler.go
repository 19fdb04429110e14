// README: Vehicle tier catalog handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"tiers": h.catalog.List(c.Request.Context())})
}
