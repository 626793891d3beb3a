// Package passenger_ticket_controller serves the unauthenticated passenger
// endpoints. Authorization is the capability token in the URL, nothing else.
package passenger_ticket_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/models/ticket_models"
	"github.com/namankalra/TicketReservation/utils/passenger_token"
)

type PassengerTicketController struct {
	db *pgxpool.Pool
}

func NewPassengerTicketController(db *pgxpool.Pool) *PassengerTicketController {
	return &PassengerTicketController{db: db}
}

// ViewTicket returns the ticket snapshot the token was issued for.
func (p *PassengerTicketController) ViewTicket(c *gin.Context) {
	uniqueTicketID, err := passenger_token.Verify(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to fetch token data"})
		return
	}

	ticket, err := ticket_models.GetTicketByUniqueID(c.Request.Context(), p.db, uniqueTicketID)
	if err != nil {
		if errors.Is(err, ticket_models.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid ticket id"})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch ticket %s: %v", uniqueTicketID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch ticket"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    ticket,
		"message": "Ticket fetched successfully",
	})
}

// CancelTicket cancels the ticket the token was issued for. Cancelling an
// already cancelled ticket succeeds with a distinct message.
func (p *PassengerTicketController) CancelTicket(c *gin.Context) {
	uniqueTicketID, err := passenger_token.Verify(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to fetch token data"})
		return
	}

	err = ticket_models.CancelTicketByUniqueID(c.Request.Context(), p.db, uniqueTicketID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Ticket cancelled successfully"})
	case errors.Is(err, ticket_models.ErrAlreadyCancelled):
		c.JSON(http.StatusOK, gin.H{"message": "Ticket already cancelled"})
	case errors.Is(err, ticket_models.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid ticket id"})
	case errors.Is(err, ticket_models.ErrCancellationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ticket cancellation failed"})
	default:
		logger.ErrorLogger.Errorf("Failed to cancel ticket %s: %v", uniqueTicketID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel ticket"})
	}
}
