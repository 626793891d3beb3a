package location_models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	redisclient "github.com/namankalra/TicketReservation/config/redis"
	"github.com/namankalra/TicketReservation/logger"
)

var (
	ErrLocationExists   = errors.New("location already exists")
	ErrLocationNotFound = errors.New("location not found")
)

const (
	locationsCacheKey = "locations:all"
	locationsCacheTTL = 5 * time.Minute
)

// Location is a named point on the map tickets are booked between.
// Locations are immutable once created.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLocation creates a new Location struct.
func NewLocation(name string, lat, long float64, createdBy uuid.UUID) (*Location, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for location: %w", err)
	}
	return &Location{
		ID:        id,
		Name:      name,
		Lat:       lat,
		Long:      long,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}

// CreateLocation inserts a new location. Name uniqueness is an invariant:
// a duplicate yields ErrLocationExists.
func CreateLocation(ctx context.Context, db *pgxpool.Pool, location *Location) (*Location, error) {
	logger.InfoLogger.Infof("Creating location %q", location.Name)

	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM locations WHERE name = $1)`, location.Name,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if exists {
		return nil, ErrLocationExists
	}

	_, err = db.Exec(ctx, `
		INSERT INTO locations (id, name, lat, long, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		location.ID, location.Name, location.Lat, location.Long,
		location.CreatedBy, location.CreatedAt,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert location %q: %v", location.Name, err)
		if strings.Contains(err.Error(), "duplicate key value") {
			return nil, ErrLocationExists
		}
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	invalidateCache(ctx)

	logger.InfoLogger.Infof("Location %q created with id %s", location.Name, location.ID)
	return location, nil
}

// GetLocations lists every location, served from the Redis cache when warm.
func GetLocations(ctx context.Context, db *pgxpool.Pool) ([]Location, error) {
	if cached, ok := readCache(ctx); ok {
		return cached, nil
	}

	rows, err := db.Query(ctx, `
		SELECT id, name, lat, long, created_by, created_at
		FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	defer rows.Close()

	locations := make([]Location, 0)
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Lat, &l.Long, &l.CreatedBy, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	writeCache(ctx, locations)
	return locations, nil
}

// GetLocationByID fetches one location or ErrLocationNotFound.
func GetLocationByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Location, error) {
	var l Location
	err := db.QueryRow(ctx, `
		SELECT id, name, lat, long, created_by, created_at
		FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Lat, &l.Long, &l.CreatedBy, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to fetch location %s: %w", id, err)
	}
	return &l, nil
}

func readCache(ctx context.Context) ([]Location, bool) {
	rdb, err := redisclient.GetRedisClient(ctx)
	if err != nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, locationsCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var locations []Location
	if err := json.Unmarshal([]byte(raw), &locations); err != nil {
		return nil, false
	}
	return locations, true
}

func writeCache(ctx context.Context, locations []Location) {
	rdb, err := redisclient.GetRedisClient(ctx)
	if err != nil {
		return
	}
	raw, err := json.Marshal(locations)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, locationsCacheKey, raw, locationsCacheTTL).Err(); err != nil {
		logger.ErrorLogger.Errorf("Failed to cache locations: %v", err)
	}
}

func invalidateCache(ctx context.Context) {
	rdb, err := redisclient.GetRedisClient(ctx)
	if err != nil {
		return
	}
	if err := rdb.Del(ctx, locationsCacheKey).Err(); err != nil {
		logger.ErrorLogger.Errorf("Failed to invalidate locations cache: %v", err)
	}
}
