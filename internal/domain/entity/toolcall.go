package entity

import (
	"encoding/json"
	"fmt"
)

// ServerName identifies a tool backend. The set is closed: adding a server
// means adding a constant here and a case to the dispatcher.
type ServerName string

const (
	ServerFlightTracker  ServerName = "flight-tracker"
	ServerUserManagement ServerName = "user-management"
)

// ToolName identifies a tool on a backend. Closed set, same rules.
type ToolName string

const (
	ToolGetFlightDetails ToolName = "get_flight_details"
	ToolSearchFlights    ToolName = "search_flights"
	ToolCreateUser       ToolName = "create_user"
	ToolGetUser          ToolName = "get_user"
	ToolUpdateUser       ToolName = "update_user"
	ToolDeleteUser       ToolName = "delete_user"
)

// ToolCallEnvelope is the wire request for a single tool invocation.
type ToolCallEnvelope struct {
	ServerName ServerName        `json:"server_name"`
	ToolName   ToolName          `json:"tool_name"`
	Arguments  map[string]string `json:"arguments"`
}

// ContentItem is one element of a tool result. Text holds a JSON-encoded
// domain payload; every call site produces exactly one item.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolCallResult is the wire response for a successful tool invocation.
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
}

// NewTextResult marshals payload into a single-item text result.
func NewTextResult(payload any) (*ToolCallResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool payload: %w", err)
	}
	return &ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: string(data)}},
	}, nil
}

// UnmarshalPayload decodes the single text payload into out.
func (r *ToolCallResult) UnmarshalPayload(out any) error {
	if len(r.Content) == 0 {
		return fmt.Errorf("tool result has no content")
	}
	return json.Unmarshal([]byte(r.Content[0].Text), out)
}

// SoftMiss is a domain-level "not found" carried inside a successful
// result. Callers must check the payload, not just the protocol error.
type SoftMiss struct {
	Error string `json:"error"`
}

// ToolErrorCode is the protocol error taxonomy.
type ToolErrorCode string

const (
	// ErrInvalidParams marks a caller error: missing or malformed
	// required arguments. Not retryable.
	ErrInvalidParams ToolErrorCode = "InvalidParams"
	// ErrMethodNotFound marks an unknown server/tool pairing.
	ErrMethodNotFound ToolErrorCode = "MethodNotFound"
	// ErrInternal wraps an adapter-side failure with its cause message.
	ErrInternal ToolErrorCode = "InternalError"
)

// ToolError is a typed protocol-level failure.
type ToolError struct {
	Code    ToolErrorCode
	Message string
	Cause   error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ToolError) Unwrap() error {
	return e.Cause
}

// NewInvalidParams builds an InvalidParams error.
func NewInvalidParams(format string, args ...any) *ToolError {
	return &ToolError{Code: ErrInvalidParams, Message: fmt.Sprintf(format, args...)}
}

// NewMethodNotFound builds a MethodNotFound error.
func NewMethodNotFound(server ServerName, tool ToolName) *ToolError {
	return &ToolError{
		Code:    ErrMethodNotFound,
		Message: fmt.Sprintf("unknown tool: %s/%s", server, tool),
	}
}

// NewInternalError wraps an adapter failure, keeping the cause reachable
// through errors.Unwrap.
func NewInternalError(cause error) *ToolError {
	return &ToolError{
		Code:    ErrInternal,
		Message: fmt.Sprintf("internal server error: %v", cause),
		Cause:   cause,
	}
}

// ToolSpec describes one registered tool for introspection.
type ToolSpec struct {
	Server       ServerName `json:"server_name"`
	Name         ToolName   `json:"tool_name"`
	Description  string     `json:"description"`
	RequiredArgs []string   `json:"required_args"`
	OptionalArgs []string   `json:"optional_args"`
}

// Registry lists every (server, tool) pairing the dispatcher accepts.
// The table must stay bit-exact with the published contract.
func Registry() []ToolSpec {
	return []ToolSpec{
		{
			Server:       ServerFlightTracker,
			Name:         ToolGetFlightDetails,
			Description:  "Get flight details for a given flight number",
			RequiredArgs: []string{"flightNumber"},
			OptionalArgs: []string{"date"},
		},
		{
			Server:       ServerFlightTracker,
			Name:         ToolSearchFlights,
			Description:  "Search for flights by origin and destination",
			RequiredArgs: []string{"origin", "destination"},
			OptionalArgs: []string{"date"},
		},
		{
			Server:       ServerUserManagement,
			Name:         ToolCreateUser,
			Description:  "Creates a new user in the system",
			RequiredArgs: []string{"email", "password"},
			OptionalArgs: []string{"username", "full_name"},
		},
		{
			Server:       ServerUserManagement,
			Name:         ToolGetUser,
			Description:  "Get user details by ID or email",
			RequiredArgs: []string{},
			OptionalArgs: []string{"userId", "email"},
		},
		{
			Server:       ServerUserManagement,
			Name:         ToolUpdateUser,
			Description:  "Update user profile information",
			RequiredArgs: []string{"userId"},
			OptionalArgs: []string{"username", "full_name", "avatar_url"},
		},
		{
			Server:       ServerUserManagement,
			Name:         ToolDeleteUser,
			Description:  "Delete a user from the system",
			RequiredArgs: []string{"userId"},
			OptionalArgs: []string{},
		},
	}
}
