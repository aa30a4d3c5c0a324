package repository

import (
	"context"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
)

// MemoryFlightRepository is the default flight table: an in-memory map
// plus an insertion-order index so search results keep table order.
type MemoryFlightRepository struct {
	byNumber map[string]*entity.FlightRecord
	order    []string
}

// NewMemoryFlightRepository creates a flight table seeded with the given
// records. Duplicate flight numbers overwrite in place: last write wins.
func NewMemoryFlightRepository(records []entity.FlightRecord) repository.FlightRepository {
	r := &MemoryFlightRepository{
		byNumber: make(map[string]*entity.FlightRecord, len(records)),
	}
	for i := range records {
		rec := records[i]
		if _, seen := r.byNumber[rec.FlightNumber]; !seen {
			r.order = append(r.order, rec.FlightNumber)
		}
		r.byNumber[rec.FlightNumber] = &rec
	}
	return r
}

// FindByNumber returns the record for a flight number, or (nil, nil) on miss.
func (r *MemoryFlightRepository) FindByNumber(ctx context.Context, flightNumber string) (*entity.FlightRecord, error) {
	rec, ok := r.byNumber[flightNumber]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

// Search filters by exact origin/destination equality in insertion order.
func (r *MemoryFlightRepository) Search(ctx context.Context, origin, destination string) ([]entity.FlightRecord, error) {
	matches := []entity.FlightRecord{}
	for _, number := range r.order {
		rec := r.byNumber[number]
		if rec.Origin == origin && rec.Destination == destination {
			matches = append(matches, *rec)
		}
	}
	return matches, nil
}
