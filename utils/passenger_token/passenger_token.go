// Package passenger_token issues and verifies the signed tokens embedded in
// the view/cancel ticket URLs handed to passengers. The token is a capability:
// it proves the right to view or cancel exactly one ticket, without the
// passenger holding an account.
package passenger_token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/namankalra/TicketReservation/utils"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed encoding, wrong algorithm, or a missing claim. Handlers surface
// a generic message so signing details never leak.
var ErrInvalidToken = errors.New("unable to fetch token data")

const ticketIDClaim = "unique_ticket_id"

// Issue signs a token carrying only the ticket's external unique id.
// Tokens do not expire; they stay valid for the ticket's lifetime.
func Issue(uniqueTicketID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ticketIDClaim: uniqueTicketID,
	})
	signed, err := token.SignedString(utils.GetPassengerTicketSecret())
	if err != nil {
		return "", fmt.Errorf("failed to sign passenger ticket token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the unique ticket id the token
// was issued for.
func Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return utils.GetPassengerTicketSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	uniqueTicketID, ok := claims[ticketIDClaim].(string)
	if !ok || uniqueTicketID == "" {
		return "", ErrInvalidToken
	}
	return uniqueTicketID, nil
}
