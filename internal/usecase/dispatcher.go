package usecase

import (
	"context"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/pkg/logger"
)

// Dispatcher routes tool-call envelopes to their adapter. Routing is a
// closed switch over the typed server and tool names; anything outside
// the registry falls through to MethodNotFound.
type Dispatcher struct {
	flights *FlightToolset
	users   *UserToolset
	logger  logger.Logger
}

// NewDispatcher creates a new dispatcher over the two adapters
func NewDispatcher(flights *FlightToolset, users *UserToolset, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		flights: flights,
		users:   users,
		logger:  log,
	}
}

// Dispatch executes one envelope and returns the adapter's result or a
// typed protocol error.
func (d *Dispatcher) Dispatch(ctx context.Context, env entity.ToolCallEnvelope) (*entity.ToolCallResult, error) {
	args := env.Arguments
	if args == nil {
		args = map[string]string{}
	}

	switch env.ServerName {
	case entity.ServerFlightTracker:
		switch env.ToolName {
		case entity.ToolGetFlightDetails:
			return d.flights.GetFlightDetails(ctx, args)
		case entity.ToolSearchFlights:
			return d.flights.SearchFlights(ctx, args)
		}
	case entity.ServerUserManagement:
		switch env.ToolName {
		case entity.ToolCreateUser:
			return d.users.CreateUser(ctx, args)
		case entity.ToolGetUser:
			return d.users.GetUser(ctx, args)
		case entity.ToolUpdateUser:
			return d.users.UpdateUser(ctx, args)
		case entity.ToolDeleteUser:
			return d.users.DeleteUser(ctx, args)
		}
	}

	d.logger.Warn("Unknown tool requested", "server", env.ServerName, "tool", env.ToolName)
	return nil, entity.NewMethodNotFound(env.ServerName, env.ToolName)
}
