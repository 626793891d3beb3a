package ticket_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namankalra/TicketReservation/logger"
)

// TicketStatus is the ticket lifecycle state.
type TicketStatus string

const (
	StatusPending   TicketStatus = "Pending"
	StatusConfirmed TicketStatus = "Confirmed"
	StatusCancelled TicketStatus = "Cancelled"
)

// Travel modes.
const (
	ModeCar    = "Car"
	ModeFlight = "Flight"
	ModeTrain  = "Train"
)

// AllowedTransitions is the ticket state flow. Cancelled is terminal.
var AllowedTransitions = map[TicketStatus][]TicketStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func CanTransition(from, to TicketStatus) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidTravelMode(mode string) bool {
	switch mode {
	case ModeCar, ModeFlight, ModeTrain:
		return true
	}
	return false
}

var (
	ErrSeatTaken          = errors.New("seat already booked")
	ErrTicketNotFound     = errors.New("invalid ticket id")
	ErrAlreadyCancelled   = errors.New("ticket already cancelled")
	ErrCancellationFailed = errors.New("ticket cancellation failed")
)

// Ticket is a confirmed seat on a route for one travel date and mode.
// Price and unique_ticket_id are always server-assigned.
type Ticket struct {
	ID             uuid.UUID    `json:"id"`
	UniqueTicketID string       `json:"unique_ticket_id"`
	SourceID       uuid.UUID    `json:"source"`
	DestinationID  uuid.UUID    `json:"destination"`
	TravelDate     time.Time    `json:"travel_date"`
	TravelMode     string       `json:"travel_mode"`
	PassengerName  string       `json:"passenger_name"`
	PassengerPhone string       `json:"passenger_phone"`
	SeatNumber     string       `json:"seat_number"`
	Price          float64      `json:"price"`
	Status         TicketStatus `json:"status"`
	CreatedBy      uuid.UUID    `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NewConfirmedTicket builds a ticket in Confirmed status with a fresh
// TID-<uuid> external identifier.
func NewConfirmedTicket(sourceID, destinationID uuid.UUID, travelDate time.Time, travelMode, passengerName, passengerPhone, seatNumber string, price float64, createdBy uuid.UUID) (*Ticket, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for ticket: %w", err)
	}
	return &Ticket{
		ID:             id,
		UniqueTicketID: "TID-" + uuid.New().String(),
		SourceID:       sourceID,
		DestinationID:  destinationID,
		TravelDate:     travelDate,
		TravelMode:     travelMode,
		PassengerName:  passengerName,
		PassengerPhone: passengerPhone,
		SeatNumber:     seatNumber,
		Price:          price,
		Status:         StatusConfirmed,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}, nil
}

// CreateTicket inserts the ticket after checking the seat is free. The
// conflict check and the insert run in one transaction; a partial unique
// index on the composite booking key backs the check, so a racing insert
// surfaces as a unique violation and maps to the same ErrSeatTaken.
func CreateTicket(ctx context.Context, db *pgxpool.Pool, ticket *Ticket) (*Ticket, error) {
	logger.InfoLogger.Infof("Booking seat %s on %s -> %s (%s)",
		ticket.SeatNumber, ticket.SourceID, ticket.DestinationID, ticket.TravelMode)

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	taken, err := hasConfirmedSeat(ctx, tx, ticket)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSeatTaken
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tickets (
			id, unique_ticket_id, source_id, destination_id, travel_date,
			travel_mode, passenger_name, passenger_phone, seat_number,
			price, status, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		ticket.ID, ticket.UniqueTicketID, ticket.SourceID, ticket.DestinationID,
		ticket.TravelDate, ticket.TravelMode, ticket.PassengerName,
		ticket.PassengerPhone, ticket.SeatNumber, ticket.Price,
		string(ticket.Status), ticket.CreatedBy, ticket.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSeatTaken
		}
		logger.ErrorLogger.Errorf("Failed to insert ticket %s: %v", ticket.UniqueTicketID, err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	logger.InfoLogger.Infof("Ticket %s confirmed", ticket.UniqueTicketID)
	return ticket, nil
}

// hasConfirmedSeat reports whether a Confirmed ticket already holds the
// composite booking key. Pending and Cancelled tickets do not occupy seats.
func hasConfirmedSeat(ctx context.Context, tx pgx.Tx, ticket *Ticket) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE source_id = $1
			  AND destination_id = $2
			  AND travel_date = $3
			  AND travel_mode = $4
			  AND seat_number = $5
			  AND status = $6
		)`,
		ticket.SourceID, ticket.DestinationID, ticket.TravelDate,
		ticket.TravelMode, ticket.SeatNumber, string(StatusConfirmed),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check seat availability: %w", err)
	}
	return exists, nil
}

// GetTicketByUniqueID fetches a ticket by its external TID identifier.
func GetTicketByUniqueID(ctx context.Context, db *pgxpool.Pool, uniqueTicketID string) (*Ticket, error) {
	var t Ticket
	err := db.QueryRow(ctx, `
		SELECT id, unique_ticket_id, source_id, destination_id, travel_date,
		       travel_mode, passenger_name, passenger_phone, seat_number,
		       price, status, created_by, created_at
		FROM tickets WHERE unique_ticket_id = $1`, uniqueTicketID,
	).Scan(&t.ID, &t.UniqueTicketID, &t.SourceID, &t.DestinationID, &t.TravelDate,
		&t.TravelMode, &t.PassengerName, &t.PassengerPhone, &t.SeatNumber,
		&t.Price, &t.Status, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to fetch ticket %s: %w", uniqueTicketID, err)
	}
	return &t, nil
}

// CancelTicketByUniqueID applies the Confirmed -> Cancelled transition as a
// single conditional update. Cancelling an already cancelled ticket is a
// successful no-op surfaced as ErrAlreadyCancelled so the caller can keep the
// message distinct; any other status fails with ErrCancellationFailed.
func CancelTicketByUniqueID(ctx context.Context, db *pgxpool.Pool, uniqueTicketID string) error {
	tag, err := db.Exec(ctx, `
		UPDATE tickets SET status = $1
		WHERE unique_ticket_id = $2 AND status = $3`,
		string(StatusCancelled), uniqueTicketID, string(StatusConfirmed),
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to cancel ticket %s: %v", uniqueTicketID, err)
		return fmt.Errorf("failed to cancel ticket: %w", err)
	}
	if tag.RowsAffected() == 1 {
		logger.InfoLogger.Infof("Ticket %s cancelled", uniqueTicketID)
		return nil
	}

	// The conditional update matched nothing: find out why.
	ticket, err := GetTicketByUniqueID(ctx, db, uniqueTicketID)
	if err != nil {
		return err
	}
	if ticket.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return ErrCancellationFailed
}

// TicketFilter narrows ListTickets. Zero values mean "no filter".
type TicketFilter struct {
	SourceID       *uuid.UUID
	DestinationID  *uuid.UUID
	TravelDateFrom *time.Time
	TravelDateTo   *time.Time
	PassengerName  string
}

// ListTickets returns tickets matching the filter, newest first.
func ListTickets(ctx context.Context, db *pgxpool.Pool, filter TicketFilter) ([]Ticket, error) {
	query := `
		SELECT id, unique_ticket_id, source_id, destination_id, travel_date,
		       travel_mode, passenger_name, passenger_phone, seat_number,
		       price, status, created_by, created_at
		FROM tickets WHERE 1=1`
	args := make([]interface{}, 0, 5)

	if filter.SourceID != nil {
		args = append(args, *filter.SourceID)
		query += fmt.Sprintf(" AND source_id = $%d", len(args))
	}
	if filter.DestinationID != nil {
		args = append(args, *filter.DestinationID)
		query += fmt.Sprintf(" AND destination_id = $%d", len(args))
	}
	if filter.TravelDateFrom != nil {
		args = append(args, *filter.TravelDateFrom)
		query += fmt.Sprintf(" AND travel_date >= $%d", len(args))
	}
	if filter.TravelDateTo != nil {
		args = append(args, *filter.TravelDateTo)
		query += fmt.Sprintf(" AND travel_date <= $%d", len(args))
	}
	if filter.PassengerName != "" {
		args = append(args, filter.PassengerName)
		query += fmt.Sprintf(" AND passenger_name = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]Ticket, 0)
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(&t.ID, &t.UniqueTicketID, &t.SourceID, &t.DestinationID,
			&t.TravelDate, &t.TravelMode, &t.PassengerName, &t.PassengerPhone,
			&t.SeatNumber, &t.Price, &t.Status, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
