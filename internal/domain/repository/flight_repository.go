package repository

import (
	"context"

	"flightboard-service/internal/domain/entity"
)

// FlightRepository defines the lookup table behind the flight-tracker
// adapter. The table is keyed purely by flight number; a later write
// observed at lookup time wins.
type FlightRepository interface {
	// FindByNumber returns the record for a flight number, or
	// (nil, nil) when the table has no such key.
	FindByNumber(ctx context.Context, flightNumber string) (*entity.FlightRecord, error)
	// Search returns every record whose origin and destination match
	// exactly, in insertion order. No match yields an empty slice.
	Search(ctx context.Context, origin, destination string) ([]entity.FlightRecord, error)
}
