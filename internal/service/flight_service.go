package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flightboard-service/internal/domain/entity"
)

// ErrFlightNotFound is returned when a lookup succeeds at the protocol
// level but the payload carries the adapter's soft miss.
var ErrFlightNotFound = errors.New("flight not found")

// FlightService is the typed facade over the flight-tracker tools. No
// retries, no caching: one call per method.
type FlightService struct {
	caller *ToolCaller
}

// NewFlightService creates a new flight facade
func NewFlightService(caller *ToolCaller) *FlightService {
	return &FlightService{caller: caller}
}

// GetFlightDetails fetches a flight by number. date is optional.
func (s *FlightService) GetFlightDetails(ctx context.Context, flightNumber, date string) (*entity.FlightRecord, error) {
	args := map[string]string{"flightNumber": flightNumber}
	if date != "" {
		args["date"] = date
	}

	result, err := s.caller.Call(ctx, entity.ServerFlightTracker, entity.ToolGetFlightDetails, args)
	if err != nil {
		return nil, err
	}

	// Check the soft-miss layer before decoding the record.
	var miss entity.SoftMiss
	if err := result.UnmarshalPayload(&miss); err == nil && miss.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightNumber)
	}

	var record entity.FlightRecord
	if err := result.UnmarshalPayload(&record); err != nil {
		return nil, fmt.Errorf("failed to decode flight details: %w", err)
	}
	return &record, nil
}

// SearchFlights lists flights between two airports. Airport codes are
// upper-cased here; the adapter filter is case-sensitive.
func (s *FlightService) SearchFlights(ctx context.Context, origin, destination, date string) ([]entity.FlightRecord, error) {
	args := map[string]string{
		"origin":      strings.ToUpper(origin),
		"destination": strings.ToUpper(destination),
	}
	if date != "" {
		args["date"] = date
	}

	result, err := s.caller.Call(ctx, entity.ServerFlightTracker, entity.ToolSearchFlights, args)
	if err != nil {
		return nil, err
	}

	var records []entity.FlightRecord
	if err := result.UnmarshalPayload(&records); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return records, nil
}
