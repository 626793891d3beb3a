package location_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namankalra/TicketReservation/clients"
	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/models/location_models"
)

type LocationController struct {
	db       *pgxpool.Pool
	geocoder clients.GeocodeClientWrapper
}

// NewLocationController wires the location endpoints. geocoder may be nil
// when no maps API key is configured; coordinates are then mandatory.
func NewLocationController(db *pgxpool.Pool, geocoder clients.GeocodeClientWrapper) *LocationController {
	return &LocationController{db: db, geocoder: geocoder}
}

type CreateLocationRequest struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Long *float64 `json:"long" binding:"omitempty,gte=-180,lte=180"`
}

// CreateLocation creates a named location. Lat/long may be omitted when a
// geocoder is configured; supplied coordinates always win.
func (l *LocationController) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location creation failed", "errors": err.Error()})
		return
	}

	var lat, long float64
	switch {
	case req.Lat != nil && req.Long != nil:
		lat, long = *req.Lat, *req.Long
	case l.geocoder != nil:
		var err error
		lat, long, err = l.geocoder.Geocode(c.Request.Context(), req.Name)
		if err != nil {
			logger.ErrorLogger.Errorf("Geocoding %q failed: %v", req.Name, err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not resolve coordinates for location name"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "lat and long are required"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	location, err := location_models.NewLocation(req.Name, lat, long, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Location creation failed"})
		return
	}

	location, err = location_models.CreateLocation(c.Request.Context(), l.db, location)
	if err != nil {
		if errors.Is(err, location_models.ErrLocationExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "Location already exists"})
			return
		}
		logger.ErrorLogger.Errorf("Location creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Location creation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"location_id": location.ID,
		"message":     "Location created successfully",
	})
}

// GetLocations lists all locations.
func (l *LocationController) GetLocations(c *gin.Context) {
	locations, err := location_models.GetLocations(c.Request.Context(), l.db)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch locations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    locations,
		"message": "Locations fetched successfully",
	})
}
