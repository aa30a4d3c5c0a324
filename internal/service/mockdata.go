package service

import (
	"time"

	"flightboard-service/internal/domain/entity"
)

// mockFlights is the fixed table the fallback resolver answers from.
// Insertion order here is result order for searches.
func mockFlights() []entity.FlightRecord {
	return []entity.FlightRecord{
		{
			FlightNumber:    "AA123",
			Airline:         "American Airlines",
			DepartureTime:   "08:00 AM",
			ArrivalTime:     "11:30 AM",
			DepartureDate:   "2025-03-10",
			Origin:          "JFK",
			OriginCity:      "New York",
			Destination:     "LAX",
			DestinationCity: "Los Angeles",
			Status:          entity.StatusOnTime,
		},
		{
			FlightNumber:    "DL456",
			Airline:         "Delta Airlines",
			DepartureTime:   "09:15 AM",
			ArrivalTime:     "12:45 PM",
			DepartureDate:   "2025-03-10",
			Origin:          "ATL",
			OriginCity:      "Atlanta",
			Destination:     "SFO",
			DestinationCity: "San Francisco",
			Status:          entity.StatusDelayed,
			DelayMinutes:    25,
		},
		{
			FlightNumber:    "UA789",
			Airline:         "United Airlines",
			DepartureTime:   "10:30 AM",
			ArrivalTime:     "01:15 PM",
			DepartureDate:   "2025-03-10",
			Origin:          "ORD",
			OriginCity:      "Chicago",
			Destination:     "MIA",
			DestinationCity: "Miami",
			Status:          entity.StatusOnTime,
		},
	}
}

// placeholderFlight fabricates a well-formed record for keys absent from
// the mock table. Fallback mode always appears to succeed.
func placeholderFlight(flightNumber, origin, destination, date string) entity.FlightRecord {
	if flightNumber == "" {
		flightNumber = "MOCK123"
	}
	if origin == "" {
		origin = "MCK"
	}
	if destination == "" {
		destination = "TST"
	}
	if date == "" {
		date = "2025-03-10"
	}
	return entity.FlightRecord{
		FlightNumber:    flightNumber,
		Airline:         "Mock Airlines",
		DepartureTime:   "10:00 AM",
		ArrivalTime:     "12:00 PM",
		DepartureDate:   date,
		Origin:          origin,
		OriginCity:      "Mock City",
		Destination:     destination,
		DestinationCity: "Test City",
		Status:          entity.StatusOnTime,
	}
}

// mockResponse synthesizes a response shaped like the live adapter's
// success payload. Same closed dispatch as the gateway: a pairing
// outside the registry is MethodNotFound in either mode.
func mockResponse(server entity.ServerName, tool entity.ToolName, args map[string]string) (*entity.ToolCallResult, error) {
	switch server {
	case entity.ServerFlightTracker:
		switch tool {
		case entity.ToolGetFlightDetails:
			flightNumber := args["flightNumber"]
			for _, f := range mockFlights() {
				if f.FlightNumber == flightNumber {
					return entity.NewTextResult(f)
				}
			}
			return entity.NewTextResult(placeholderFlight(flightNumber, "", "", args["date"]))
		case entity.ToolSearchFlights:
			origin := args["origin"]
			destination := args["destination"]
			matches := []entity.FlightRecord{}
			for _, f := range mockFlights() {
				if (origin == "" || f.Origin == origin) && (destination == "" || f.Destination == destination) {
					matches = append(matches, f)
				}
			}
			if len(matches) == 0 {
				matches = append(matches, placeholderFlight("", origin, destination, args["date"]))
			}
			return entity.NewTextResult(matches)
		}
	case entity.ServerUserManagement:
		switch tool {
		case entity.ToolCreateUser, entity.ToolGetUser, entity.ToolUpdateUser:
			now := time.Now().UTC()
			record := entity.UserRecord{
				ID:        "mock-user-id",
				Email:     args["email"],
				Username:  args["username"],
				FullName:  args["full_name"],
				CreatedAt: now,
				UpdatedAt: now,
			}
			if record.Email == "" {
				record.Email = "mock@example.com"
			}
			if record.Username == "" {
				record.Username = "mockuser"
			}
			if record.FullName == "" {
				record.FullName = "Mock User"
			}
			return entity.NewTextResult(record)
		case entity.ToolDeleteUser:
			return entity.NewTextResult(entity.DeleteUserResult{
				Success: true,
				Message: "User deleted successfully",
			})
		}
	}
	return nil, entity.NewMethodNotFound(server, tool)
}
