package usecase

import (
	"context"
	"errors"
	"testing"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/interface/repository"
	"flightboard-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlightToolset() *FlightToolset {
	flights := repository.NewMemoryFlightRepository(entity.SampleFlights())
	return NewFlightToolset(flights, logger.NewNop())
}

func TestGetFlightDetailsKnownFlight(t *testing.T) {
	result, err := newFlightToolset().GetFlightDetails(context.Background(), map[string]string{
		"flightNumber": "AA123",
	})
	require.NoError(t, err)

	var record entity.FlightRecord
	require.NoError(t, result.UnmarshalPayload(&record))
	assert.Equal(t, "JFK", record.Origin)
	assert.Equal(t, "LAX", record.Destination)
	assert.Equal(t, entity.StatusOnTime, record.Status)
	assert.Equal(t, "T4", record.Terminal)
}

func TestGetFlightDetailsSoftMiss(t *testing.T) {
	// An absent key is a successful call carrying a soft miss, not a
	// protocol error.
	result, err := newFlightToolset().GetFlightDetails(context.Background(), map[string]string{
		"flightNumber": "ZZ000",
	})
	require.NoError(t, err)

	var miss entity.SoftMiss
	require.NoError(t, result.UnmarshalPayload(&miss))
	assert.Equal(t, "Flight not found", miss.Error)
}

func TestGetFlightDetailsMissingArgument(t *testing.T) {
	_, err := newFlightToolset().GetFlightDetails(context.Background(), map[string]string{})
	var toolErr *entity.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, entity.ErrInvalidParams, toolErr.Code)
}

func TestGetFlightDetailsDateIgnored(t *testing.T) {
	// date is accepted but the table is keyed by flight number alone.
	result, err := newFlightToolset().GetFlightDetails(context.Background(), map[string]string{
		"flightNumber": "AA123",
		"date":         "1999-01-01",
	})
	require.NoError(t, err)

	var record entity.FlightRecord
	require.NoError(t, result.UnmarshalPayload(&record))
	assert.Equal(t, "2025-03-10", record.DepartureDate)
}

func TestSearchFlightsMatches(t *testing.T) {
	result, err := newFlightToolset().SearchFlights(context.Background(), map[string]string{
		"origin":      "JFK",
		"destination": "LAX",
	})
	require.NoError(t, err)

	var records []entity.FlightRecord
	require.NoError(t, result.UnmarshalPayload(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "AA123", records[0].FlightNumber)
}

func TestSearchFlightsCaseSensitive(t *testing.T) {
	result, err := newFlightToolset().SearchFlights(context.Background(), map[string]string{
		"origin":      "jfk",
		"destination": "lax",
	})
	require.NoError(t, err)

	var records []entity.FlightRecord
	require.NoError(t, result.UnmarshalPayload(&records))
	assert.Empty(t, records)
}

func TestSearchFlightsNoMatchIsEmptyList(t *testing.T) {
	result, err := newFlightToolset().SearchFlights(context.Background(), map[string]string{
		"origin":      "JFK",
		"destination": "DEN",
	})
	require.NoError(t, err)

	// The payload must be an empty JSON array, never null or an error.
	assert.Equal(t, "[]", result.Content[0].Text)
}

func TestSearchFlightsMissingArguments(t *testing.T) {
	_, err := newFlightToolset().SearchFlights(context.Background(), map[string]string{
		"origin": "JFK",
	})
	var toolErr *entity.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, entity.ErrInvalidParams, toolErr.Code)
}

func TestLastWriteWinsOnDuplicateNumber(t *testing.T) {
	records := entity.SampleFlights()
	override := records[0]
	override.Gate = "G99"
	flights := repository.NewMemoryFlightRepository(append(records, override))
	toolset := NewFlightToolset(flights, logger.NewNop())

	result, err := toolset.GetFlightDetails(context.Background(), map[string]string{
		"flightNumber": "AA123",
	})
	require.NoError(t, err)

	var record entity.FlightRecord
	require.NoError(t, result.UnmarshalPayload(&record))
	assert.Equal(t, "G99", record.Gate)
}
