// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bettercommute/internal/http/handlers"
	"bettercommute/internal/http/middleware"
	"bettercommute/internal/infra"
	"bettercommute/internal/maps"
	"bettercommute/internal/modules/booking"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/modules/support"
	"bettercommute/internal/modules/trip"
	"bettercommute/internal/modules/user"
)

type RouterDeps struct {
	Verifier infra.TokenVerifier
	Places   *maps.PlacesService
	Catalog  *catalog.Service
	Trip     *trip.Service
	Bookings *booking.Service
	Users    *user.Service
	Support  *support.Service
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.Use(middleware.Auth(deps.Verifier))

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	api.GET("/places/search", placesHandler.Search)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	api.GET("/tiers", catalogHandler.List)

	tripHandler := handlers.NewTripHandler(deps.Trip)
	api.GET("/trip", tripHandler.Get)
	api.POST("/trip/origin", tripHandler.SetOrigin)
	api.POST("/trip/destination", tripHandler.SetDestination)
	api.POST("/trip/tier", tripHandler.SelectTier)
	api.POST("/trip/confirm", tripHandler.Confirm)
	api.DELETE("/trip", tripHandler.Reset)

	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	api.GET("/bookings", bookingHandler.List)
	api.GET("/bookings/:id", bookingHandler.Get)

	profileHandler := handlers.NewProfileHandler(deps.Users)
	api.GET("/profile", profileHandler.Get)
	api.PUT("/profile", profileHandler.Update)

	supportHandler := handlers.NewSupportHandler(deps.Support)
	api.GET("/faqs", supportHandler.FAQs)
	api.POST("/issues", supportHandler.ReportIssue)

	return r
}
