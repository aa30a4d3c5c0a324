package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextResultSingleItem(t *testing.T) {
	result, err := NewTextResult(SoftMiss{Error: "Flight not found"})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)

	var miss SoftMiss
	require.NoError(t, result.UnmarshalPayload(&miss))
	assert.Equal(t, "Flight not found", miss.Error)
}

func TestInternalErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.Equal(t, ErrInternal, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRegistryTable(t *testing.T) {
	specs := Registry()
	require.Len(t, specs, 6)

	byName := map[ToolName]ToolSpec{}
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	assert.Equal(t, []string{"flightNumber"}, byName[ToolGetFlightDetails].RequiredArgs)
	assert.Equal(t, []string{"origin", "destination"}, byName[ToolSearchFlights].RequiredArgs)
	assert.Equal(t, []string{"email", "password"}, byName[ToolCreateUser].RequiredArgs)
	assert.Empty(t, byName[ToolGetUser].RequiredArgs)
	assert.Equal(t, ServerUserManagement, byName[ToolDeleteUser].Server)
}
