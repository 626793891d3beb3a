package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/namankalra/TicketReservation/config/db"
	"github.com/namankalra/TicketReservation/controllers/user_controller"
)

func RegisterUserRoutes(router *gin.Engine) {
	userController := user_controller.NewUserController(db.DB)

	router.POST("/register", userController.Register)
	router.POST("/login", userController.Login)
}
