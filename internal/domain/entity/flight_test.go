package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFlightsRoundTrip(t *testing.T) {
	// Payload encoding must be lossless for every record in the table.
	for _, record := range SampleFlights() {
		data, err := json.Marshal(record)
		require.NoError(t, err)

		var decoded FlightRecord
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, record, decoded)
	}
}

func TestSampleFlightsTable(t *testing.T) {
	flights := SampleFlights()
	require.Len(t, flights, 3)

	aa123 := flights[0]
	assert.Equal(t, "AA123", aa123.FlightNumber)
	assert.Equal(t, "JFK", aa123.Origin)
	assert.Equal(t, "LAX", aa123.Destination)
	assert.Equal(t, StatusOnTime, aa123.Status)
	assert.Zero(t, aa123.DelayMinutes)

	// DelayMinutes is present iff the flight is delayed.
	dl456 := flights[1]
	assert.Equal(t, StatusDelayed, dl456.Status)
	assert.Equal(t, 30, dl456.DelayMinutes)

	data, err := json.Marshal(aa123)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "delayMinutes")
}

func TestRenderFlight(t *testing.T) {
	flights := SampleFlights()

	delayed := RenderFlight(flights[1])
	assert.Equal(t, "Delta Airlines DL456", delayed.Title)
	assert.Contains(t, delayed.Lines, "Delay: 30 minutes")
	assert.Contains(t, delayed.Lines, "Flight Status: Delayed")

	onTime := RenderFlight(flights[0])
	assert.Equal(t, "American Airlines AA123", onTime.Title)
	for _, line := range onTime.Lines {
		assert.NotContains(t, line, "Delay:")
		assert.NotContains(t, line, "Estimated Arrival:")
	}
	assert.Contains(t, onTime.Lines, "New York (JFK) → Los Angeles (LAX)")
	assert.Contains(t, onTime.Lines, "Terminal: T4 | Gate: G12")
}

func TestRenderFlightEstimatedArrival(t *testing.T) {
	record := SampleFlights()[1]
	record.EstimatedArrivalTime = "02:45 PM"

	rendered := RenderFlight(record)
	assert.Contains(t, rendered.Lines, "Estimated Arrival: 02:45 PM")
}
