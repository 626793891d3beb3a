package user_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/models/user_models"
)

type UserController struct {
	db *pgxpool.Pool
}

func NewUserController(db *pgxpool.Pool) *UserController {
	return &UserController{db: db}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user and returns a bearer token for it.
func (u *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed", "errors": err.Error()})
		return
	}

	user, token, err := user_models.CreateUser(c.Request.Context(), u.db,
		req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, user_models.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists with this email"})
			return
		}
		logger.ErrorLogger.Errorf("Registration failed for %s: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": user.ID,
		"token":   token,
		"message": "User registered successfully",
	})
}

// Login verifies credentials and returns a fresh bearer token.
func (u *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed", "errors": err.Error()})
		return
	}

	user, token, err := user_models.LoginUser(c.Request.Context(), u.db, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user_models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		logger.ErrorLogger.Errorf("Login failed for %s: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": user.ID,
		"token":   token,
		"message": "Login successful",
	})
}
