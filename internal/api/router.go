// Package api wires the HTTP surface: middleware, routes, and the
// handlers behind them.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tripfolio/backend/internal/ai"
	"github.com/tripfolio/backend/internal/auth"
	"github.com/tripfolio/backend/internal/config"
	"github.com/tripfolio/backend/internal/handlers"
	"github.com/tripfolio/backend/internal/middleware"
	"github.com/tripfolio/backend/internal/service"
	"github.com/tripfolio/backend/internal/storage"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	trips := service.NewTripService(store)
	shares := service.NewShareService(store)
	favorites := service.NewFavoriteService(store)
	profiles := service.NewProfileService(store)
	aiClient := ai.New(cfg.AI.APIKey, cfg.AI.Model)

	tripHandler := handlers.NewTripHandler(trips)
	shareHandler := handlers.NewShareHandler(shares)
	exportHandler := handlers.NewExportHandler(trips)
	favoriteHandler := handlers.NewFavoriteHandler(favorites)
	profileHandler := handlers.NewProfileHandler(profiles)
	aiHandler := handlers.NewAIHandler(aiClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Identity(auth.NewJWTManager(cfg.JWT.Secret)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/trips", tripHandler.ListTrips)
		v1.POST("/trips", tripHandler.CreateTrip)
		v1.GET("/trips/:id", tripHandler.GetTrip)
		v1.PATCH("/trips/:id", tripHandler.UpdateTrip)
		v1.DELETE("/trips/:id", tripHandler.DeleteTrip)

		v1.GET("/trips/:id/items", tripHandler.ListItems)
		v1.POST("/trips/:id/items", tripHandler.AddItem)
		v1.PATCH("/trips/:id/items/:itemId", tripHandler.UpdateItem)
		v1.DELETE("/trips/:id/items/:itemId", tripHandler.DeleteItem)
		v1.POST("/trips/:id/reorder", tripHandler.Reorder)

		v1.PATCH("/trips/:id/share", shareHandler.Publish)
		v1.GET("/share/:shareId", shareHandler.Resolve)

		v1.GET("/trips/:id/export.csv", exportHandler.CSV)
		v1.GET("/trips/:id/export.ics", exportHandler.ICS)

		v1.GET("/favorites", favoriteHandler.List)
		v1.POST("/favorites", favoriteHandler.Add)
		v1.DELETE("/favorites/:placeId", favoriteHandler.Remove)

		v1.GET("/profile", profileHandler.Get)
		v1.PUT("/profile", profileHandler.Put)
		v1.DELETE("/profile", profileHandler.Delete)

		v1.POST("/ai/suggest", aiHandler.Suggest)
	}

	return router
}
