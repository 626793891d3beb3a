package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/namankalra/TicketReservation/config/db"
	"github.com/namankalra/TicketReservation/logger"
	"github.com/namankalra/TicketReservation/models/user_models"
	"github.com/namankalra/TicketReservation/utils"
)

// AuthMiddleware validates the bearer token and puts the authenticated
// user into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No authorization token provided"})
			return
		}

		var tokenString string
		if len(authHeader) > 7 && strings.ToLower(authHeader[:7]) == "bearer " {
			tokenString = authHeader[7:]
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization format"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return utils.GetJWTSecret(), nil
		})
		if err != nil || !token.Valid {
			logger.ErrorLogger.Errorf("Failed to parse access token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No user identifier found in token"})
			return
		}

		user, err := user_models.GetUserByID(c.Request.Context(), db.DB, userID)
		if err != nil {
			logger.ErrorLogger.Errorf("User %s from token not found: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User associated with token not found"})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("authenticated_user", user)
		c.Next()
	}
}
