package utils

import (
	"fmt"
	"os"
	"regexp"

	"github.com/namankalra/TicketReservation/config"
)

func init() {
	config.LoadEnv()
}

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("WARNING: JWT_SECRET environment variable not set.")
		return []byte("default-insecure-secret-only-for-development")
	}
	return []byte(secret)
}

// GetPassengerTicketSecret returns the key used to sign passenger
// view/cancel ticket tokens. Falls back to JWT_SECRET so a single-secret
// deployment keeps working.
func GetPassengerTicketSecret() []byte {
	secret := os.Getenv("PASSENGER_TICKET_SECRET")
	if secret == "" {
		return GetJWTSecret()
	}
	return []byte(secret)
}

// Indian mobile numbers: exactly 10 digits, first digit 6-9.
var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// IsValidMobile checks whether the mobile no is valid or not.
func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}
