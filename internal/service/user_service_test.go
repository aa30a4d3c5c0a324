package service

import (
	"context"
	"net/http"
	"testing"

	"flightboard-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserLive(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		assert.Equal(t, entity.ServerUserManagement, env.ServerName)
		assert.Equal(t, entity.ToolCreateUser, env.ToolName)
		assert.Equal(t, "jane@example.com", env.Arguments["email"])
		assert.Equal(t, "Jane Doe", env.Arguments["full_name"])
		_, hasUsername := env.Arguments["username"]
		assert.False(t, hasUsername, "empty optional args are omitted")
		return entity.CreateUserResult{Success: true, UserID: "u1", Email: "jane@example.com"}, http.StatusOK
	})
	defer server.Close()

	created, err := NewUserService(liveCaller(server.URL)).CreateUser(
		context.Background(), "jane@example.com", "secret123", "", "Jane Doe")
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, "u1", created.UserID)
}

func TestCreateUserSurfacesWarning(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		return entity.CreateUserResult{
			Success: true,
			UserID:  "u1",
			Email:   "jane@example.com",
			Warning: "profile not created: store offline",
		}, http.StatusOK
	})
	defer server.Close()

	created, err := NewUserService(liveCaller(server.URL)).CreateUser(
		context.Background(), "jane@example.com", "secret123", "", "")
	require.NoError(t, err)
	assert.Contains(t, created.Warning, "store offline")
}

func TestGetUserSoftMiss(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		return entity.SoftMiss{Error: "User not found"}, http.StatusOK
	})
	defer server.Close()

	_, err := NewUserService(liveCaller(server.URL)).GetUser(
		context.Background(), GetUserParams{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserSendsOnlySetFields(t *testing.T) {
	username := "janet"
	avatar := ""
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		assert.Equal(t, "u1", env.Arguments["userId"])
		assert.Equal(t, "janet", env.Arguments["username"])
		// A pointer to the empty string clears the field and is sent.
		val, hasAvatar := env.Arguments["avatar_url"]
		assert.True(t, hasAvatar)
		assert.Empty(t, val)
		_, hasFullName := env.Arguments["full_name"]
		assert.False(t, hasFullName)
		return entity.UpdateUserResult{Success: true, User: &entity.UserProfile{ID: "u1", Username: "janet"}}, http.StatusOK
	})
	defer server.Close()

	updated, err := NewUserService(liveCaller(server.URL)).UpdateUser(
		context.Background(), "u1", ProfileUpdate{Username: &username, AvatarURL: &avatar})
	require.NoError(t, err)
	assert.True(t, updated.Success)
	assert.Equal(t, "janet", updated.User.Username)
}

func TestDeleteUserLive(t *testing.T) {
	server := gatewayStub(t, func(env entity.ToolCallEnvelope) (any, int) {
		assert.Equal(t, entity.ToolDeleteUser, env.ToolName)
		assert.Equal(t, "u1", env.Arguments["userId"])
		return entity.DeleteUserResult{Success: true, Message: "User deleted successfully"}, http.StatusOK
	})
	defer server.Close()

	deleted, err := NewUserService(liveCaller(server.URL)).DeleteUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, deleted.Success)
}
