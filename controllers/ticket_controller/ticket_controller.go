package ticket_controller

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/models/location_models"
	"github.com/namankalra/TicketReservation/models/ticket_models"
	"github.com/namankalra/TicketReservation/models/user_models"
	"github.com/namankalra/TicketReservation/utils"
	"github.com/namankalra/TicketReservation/utils/fare"
	"github.com/namankalra/TicketReservation/utils/mail"
	"github.com/namankalra/TicketReservation/utils/passenger_token"
)

const travelDateLayout = "2006-01-02"

type TicketController struct {
	db *pgxpool.Pool
}

func NewTicketController(db *pgxpool.Pool) *TicketController {
	return &TicketController{db: db}
}

type BookTicketRequest struct {
	Source         string `json:"source" binding:"required,uuid"`
	Destination    string `json:"destination" binding:"required,uuid"`
	TravelDate     string `json:"travel_date" binding:"required"`
	TravelMode     string `json:"travel_mode" binding:"required,oneof=Car Flight Train"`
	PassengerName  string `json:"passenger_name" binding:"required"`
	PassengerPhone string `json:"passenger_phone" binding:"required"`
	SeatNumber     string `json:"seat_number" binding:"required,max=10"`
}

// BookTicket runs the whole booking flow: validate phone and route, price
// the trip, insert the ticket atomically against the seat-conflict check,
// then mint the passenger view/cancel token.
func (t *TicketController) BookTicket(c *gin.Context) {
	var req BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ticket creation failed", "errors": err.Error()})
		return
	}

	if !utils.IsValidMobile(req.PassengerPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid passenger mobile no"})
		return
	}

	if req.Source == req.Destination {
		c.JSON(http.StatusConflict, gin.H{"message": "Source & Destination cannot be same"})
		return
	}

	travelDate, err := time.Parse(travelDateLayout, req.TravelDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid travel date, expected YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	sourceID := uuid.MustParse(req.Source)
	destinationID := uuid.MustParse(req.Destination)

	source, err := location_models.GetLocationByID(ctx, t.db, sourceID)
	if err != nil {
		if errors.Is(err, location_models.ErrLocationNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid source location"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ticket creation failed"})
		return
	}
	destination, err := location_models.GetLocationByID(ctx, t.db, destinationID)
	if err != nil {
		if errors.Is(err, location_models.ErrLocationNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid destination location"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ticket creation failed"})
		return
	}

	price, err := fare.Price(req.TravelMode, source.Lat, source.Long, destination.Lat, destination.Long)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid travel mode"})
		return
	}
	price = math.Round(price*100) / 100

	userID := c.MustGet("user_id").(uuid.UUID)
	ticket, err := ticket_models.NewConfirmedTicket(sourceID, destinationID, travelDate,
		req.TravelMode, req.PassengerName, req.PassengerPhone, req.SeatNumber, price, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ticket creation failed"})
		return
	}

	ticket, err = ticket_models.CreateTicket(ctx, t.db, ticket)
	if err != nil {
		if errors.Is(err, ticket_models.ErrSeatTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Seat already booked"})
			return
		}
		logger.ErrorLogger.Errorf("Ticket creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ticket creation failed"})
		return
	}

	token, err := passenger_token.Issue(ticket.UniqueTicketID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to issue passenger token for %s: %v", ticket.UniqueTicketID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ticket creation failed"})
		return
	}

	// These URLs are meant to reach the passenger out-of-band (e.g. SMS).
	viewURL := absoluteURL(c, "/view_ticket/"+token)
	cancelURL := absoluteURL(c, "/cancel_ticket/"+token)

	if mail.IsConfigured() {
		if user, ok := c.MustGet("authenticated_user").(*user_models.User); ok {
			go t.sendConfirmationMail(user.Email, ticket, viewURL, cancelURL)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"ticket_id":                   ticket.ID,
		"passenger_view_ticket_url":   viewURL,
		"passenger_cancel_ticket_url": cancelURL,
		"message":                     "Ticket created successfully",
	})
}

// GetTickets lists tickets, optionally filtered by route, travel-date range
// and passenger name.
func (t *TicketController) GetTickets(c *gin.Context) {
	var filter ticket_models.TicketFilter

	if v := c.Query("source"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid source filter"})
			return
		}
		filter.SourceID = &id
	}
	if v := c.Query("destination"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid destination filter"})
			return
		}
		filter.DestinationID = &id
	}
	if v := c.Query("travel_date_from"); v != "" {
		d, err := time.Parse(travelDateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid travel_date_from, expected YYYY-MM-DD"})
			return
		}
		filter.TravelDateFrom = &d
	}
	if v := c.Query("travel_date_to"); v != "" {
		d, err := time.Parse(travelDateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid travel_date_to, expected YYYY-MM-DD"})
			return
		}
		filter.TravelDateTo = &d
	}
	filter.PassengerName = c.Query("passenger_name")

	tickets, err := ticket_models.ListTickets(c.Request.Context(), t.db, filter)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch tickets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tickets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    tickets,
		"message": "Tickets fetched successfully",
	})
}

func (t *TicketController) sendConfirmationMail(toEmail string, ticket *ticket_models.Ticket, viewURL, cancelURL string) {
	err := mail.SendTicketConfirmation(toEmail, mail.TicketConfirmationData{
		PassengerName:  ticket.PassengerName,
		UniqueTicketID: ticket.UniqueTicketID,
		TravelDate:     ticket.TravelDate.Format(travelDateLayout),
		TravelMode:     ticket.TravelMode,
		SeatNumber:     ticket.SeatNumber,
		Price:          fmt.Sprintf("%.2f", ticket.Price),
		ViewTicketURL:  viewURL,
		CancelURL:      cancelURL,
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Confirmation mail for %s failed: %v", ticket.UniqueTicketID, err)
	}
}

func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, path)
}
