package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namankalra/TicketReservation/config/db"
	"github.com/namankalra/TicketReservation/controllers/passenger_ticket_controller"
)

// Passenger routes are public: the signed token in the path is the only
// authorization.
func RegisterPassengerTicketRoutes(router *gin.Engine) {
	passengerController := passenger_ticket_controller.NewPassengerTicketController(db.DB)

	router.GET("/view_ticket/:token", passengerController.ViewTicket)
	router.PUT("/cancel_ticket/:token", passengerController.CancelTicket)
}
