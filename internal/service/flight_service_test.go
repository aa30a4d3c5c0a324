package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatewayStub serves canned tool results keyed by tool name.
func gatewayStub(t *testing.T, handler func(env entity.ToolCallEnvelope) (any, int)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/call_tool", r.URL.Path)

		var env entity.ToolCallEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))

		payload, status := handler(env)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 200 && status <= 299 {
			result, err := entity.NewTextResult(payload)
			require.NoError(t, err)
			json.NewEncoder(w).Encode(result)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"error": payload})
	}))
}

func liveCaller(url string) *ToolCaller {
	return NewToolCaller(Options{BaseURL: url, Logger: logger.NewNop()})
}

func TestGetFlightDetailsLive(t *testing.T) {
	sample := entity.SampleFlights()[0]
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		assert.Equal(t, entity.ServerFlightTracker, env.ServerName)
		assert.Equal(t, entity.ToolGetFlightDetails, env.ToolName)
		assert.Equal(t, "AA123", env.Arguments["flightNumber"])
		return sample, http.StatusOK
	})
	defer server.Close()

	record, err := NewFlightService(liveCaller(server.URL)).GetFlightDetails(context.Background(), "AA123", "")
	require.NoError(t, err)
	assert.Equal(t, "JFK", record.Origin)
	assert.Equal(t, "LAX", record.Destination)
	assert.Equal(t, entity.StatusOnTime, record.Status)
}

func TestGetFlightDetailsSoftMiss(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		return entity.SoftMiss{Error: "Flight not found"}, http.StatusOK
	})
	defer server.Close()

	_, err := NewFlightService(liveCaller(server.URL)).GetFlightDetails(context.Background(), "ZZ000", "")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestSearchFlightsUppercasesCodes(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		assert.Equal(t, "JFK", env.Arguments["origin"])
		assert.Equal(t, "LAX", env.Arguments["destination"])
		return []entity.FlightRecord{entity.SampleFlights()[0]}, http.StatusOK
	})
	defer server.Close()

	records, err := NewFlightService(liveCaller(server.URL)).SearchFlights(context.Background(), "jfk", "lax", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AA123", records[0].FlightNumber)
}

func TestTransportErrorPropagatesWithoutFallback(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		return "InternalError: store offline", http.StatusInternalServerError
	})
	defer server.Close()

	_, err := NewFlightService(liveCaller(server.URL)).GetFlightDetails(context.Background(), "AA123", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
}

func TestNetworkFailurePropagatesWithoutFallback(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewFlightService(liveCaller(url)).GetFlightDetails(context.Background(), "AA123", "")
	assert.Error(t, err)
}
