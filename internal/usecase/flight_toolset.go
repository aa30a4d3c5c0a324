package usecase

import (
	"context"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
	"flightboard-service/pkg/logger"
)

// FlightToolset implements the flight-tracker adapter: two tools over a
// pluggable flight lookup table.
type FlightToolset struct {
	flights repository.FlightRepository
	logger  logger.Logger
}

// NewFlightToolset creates a new flight-tracker toolset
func NewFlightToolset(flights repository.FlightRepository, log logger.Logger) *FlightToolset {
	return &FlightToolset{
		flights: flights,
		logger:  log,
	}
}

// GetFlightDetails looks up a flight by exact flight number. The date
// argument is accepted but does not disambiguate: the table is keyed by
// flight number alone. A miss is a soft miss, not a protocol error.
func (t *FlightToolset) GetFlightDetails(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	flightNumber := args["flightNumber"]
	if flightNumber == "" {
		return nil, entity.NewInvalidParams("Missing flightNumber argument")
	}

	record, err := t.flights.FindByNumber(ctx, flightNumber)
	if err != nil {
		t.logger.Error("Flight lookup failed", "flightNumber", flightNumber, "error", err)
		return nil, entity.NewInternalError(err)
	}
	if record == nil {
		return entity.NewTextResult(entity.SoftMiss{Error: "Flight not found"})
	}
	return entity.NewTextResult(record)
}

// SearchFlights filters the table by exact origin/destination equality,
// in table order. No match yields an empty list, never an error.
func (t *FlightToolset) SearchFlights(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	origin := args["origin"]
	destination := args["destination"]
	if origin == "" || destination == "" {
		return nil, entity.NewInvalidParams("Missing required arguments: origin and destination")
	}

	matches, err := t.flights.Search(ctx, origin, destination)
	if err != nil {
		t.logger.Error("Flight search failed", "origin", origin, "destination", destination, "error", err)
		return nil, entity.NewInternalError(err)
	}
	if matches == nil {
		matches = []entity.FlightRecord{}
	}
	return entity.NewTextResult(matches)
}
