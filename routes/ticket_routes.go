package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namankalra/TicketReservation/config/db"
	"github.com/namankalra/TicketReservation/controllers/ticket_controller"
	"github.com/namankalra/TicketReservation/middlewares/auth"
)

func RegisterTicketRoutes(router *gin.Engine) {
	ticketController := ticket_controller.NewTicketController(db.DB)

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/tickets", ticketController.BookTicket)
		protected.GET("/tickets", ticketController.GetTickets)
	}
}
