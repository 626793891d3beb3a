package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/namankalra/TicketReservation/clients"
	"github.com/namankalra/TicketReservation/config/db"
	"github.com/namankalra/TicketReservation/controllers/location_controller"
	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/middlewares/auth"
)

func RegisterLocationRoutes(router *gin.Engine) {
	var geocoder clients.GeocodeClientWrapper
	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		client, err := clients.NewGeocodeClient(apiKey)
		if err != nil {
			logger.ErrorLogger.Errorf("Geocode client disabled: %v", err)
		} else {
			geocoder = client
		}
	}

	locationController := location_controller.NewLocationController(db.DB, geocoder)

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/locations", locationController.CreateLocation)
		protected.GET("/locations", locationController.GetLocations)
	}
}
