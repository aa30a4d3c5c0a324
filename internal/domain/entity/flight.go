package entity

import "fmt"

// FlightStatus is the operational status of a flight
type FlightStatus string

const (
	StatusOnTime    FlightStatus = "On Time"
	StatusDelayed   FlightStatus = "Delayed"
	StatusCancelled FlightStatus = "Cancelled"
	StatusScheduled FlightStatus = "Scheduled"
)

// FlightRecord represents a single tracked flight. FlightNumber is the
// unique key within a lookup table and never changes once created.
type FlightRecord struct {
	FlightNumber         string       `json:"flightNumber" bson:"flightNumber"`
	Airline              string       `json:"airline" bson:"airline"`
	DepartureTime        string       `json:"departureTime" bson:"departureTime"`
	ArrivalTime          string       `json:"arrivalTime" bson:"arrivalTime"`
	DepartureDate        string       `json:"departureDate" bson:"departureDate"`
	Origin               string       `json:"origin" bson:"origin"`
	OriginCity           string       `json:"originCity" bson:"originCity"`
	Destination          string       `json:"destination" bson:"destination"`
	DestinationCity      string       `json:"destinationCity" bson:"destinationCity"`
	Status               FlightStatus `json:"status" bson:"status"`
	Terminal             string       `json:"terminal" bson:"terminal"`
	Gate                 string       `json:"gate" bson:"gate"`
	DelayMinutes         int          `json:"delayMinutes,omitempty" bson:"delayMinutes,omitempty"`
	EstimatedArrivalTime string       `json:"estimatedArrivalTime,omitempty" bson:"estimatedArrivalTime,omitempty"`
}

// RenderedFlight is the header view model for a flight page: a title
// plus detail lines in display order. The delay line appears only when
// the record carries a delay, the estimated-arrival line only when an
// estimate is known.
type RenderedFlight struct {
	Title string
	Lines []string
}

// RenderFlight produces the view model for one record.
func RenderFlight(record FlightRecord) RenderedFlight {
	lines := []string{
		fmt.Sprintf("%s (%s) → %s (%s)", record.OriginCity, record.Origin, record.DestinationCity, record.Destination),
		fmt.Sprintf("Departure: %s | Date: %s", record.DepartureTime, record.DepartureDate),
		fmt.Sprintf("Flight Status: %s", record.Status),
	}
	if record.DelayMinutes > 0 {
		lines = append(lines, fmt.Sprintf("Delay: %d minutes", record.DelayMinutes))
	}
	if record.Terminal != "" || record.Gate != "" {
		lines = append(lines, fmt.Sprintf("Terminal: %s | Gate: %s", record.Terminal, record.Gate))
	}
	lines = append(lines, fmt.Sprintf("Arrival: %s", record.ArrivalTime))
	if record.EstimatedArrivalTime != "" {
		lines = append(lines, fmt.Sprintf("Estimated Arrival: %s", record.EstimatedArrivalTime))
	}
	return RenderedFlight{
		Title: fmt.Sprintf("%s %s", record.Airline, record.FlightNumber),
		Lines: lines,
	}
}

// SampleFlights is the fixed table served by the flight-tracker adapter
// when no external store is configured. Order matters: search results are
// returned in insertion order.
func SampleFlights() []FlightRecord {
	return []FlightRecord{
		{
			FlightNumber:    "AA123",
			Airline:         "American Airlines",
			DepartureTime:   "10:00 AM",
			ArrivalTime:     "01:30 PM",
			DepartureDate:   "2025-03-10",
			Origin:          "JFK",
			OriginCity:      "New York",
			Destination:     "LAX",
			DestinationCity: "Los Angeles",
			Status:          StatusOnTime,
			Terminal:        "T4",
			Gate:            "G12",
		},
		{
			FlightNumber:    "DL456",
			Airline:         "Delta Airlines",
			DepartureTime:   "11:45 AM",
			ArrivalTime:     "02:15 PM",
			DepartureDate:   "2025-03-10",
			Origin:          "SFO",
			OriginCity:      "San Francisco",
			Destination:     "ATL",
			DestinationCity: "Atlanta",
			Status:          StatusDelayed,
			Terminal:        "T2",
			Gate:            "G5",
			DelayMinutes:    30,
		},
		{
			FlightNumber:    "UA789",
			Airline:         "United Airlines",
			DepartureTime:   "08:30 AM",
			ArrivalTime:     "11:45 AM",
			DepartureDate:   "2025-03-10",
			Origin:          "ORD",
			OriginCity:      "Chicago",
			Destination:     "DEN",
			DestinationCity: "Denver",
			Status:          StatusOnTime,
			Terminal:        "T1",
			Gate:            "G22",
		},
	}
}
