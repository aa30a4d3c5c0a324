package service

import (
	"context"
	"errors"
	"fmt"

	"flightboard-service/internal/domain/entity"
)

// ErrUserNotFound is returned when a lookup succeeds at the protocol
// level but the payload carries the adapter's soft miss.
var ErrUserNotFound = errors.New("user not found")

// GetUserParams selects a user by id or email; at least one is required.
type GetUserParams struct {
	UserID string
	Email  string
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave
// unchanged"; a pointer to the empty string clears the field.
type ProfileUpdate struct {
	Username  *string
	FullName  *string
	AvatarURL *string
}

// UserService is the typed facade over the user-management tools.
type UserService struct {
	caller *ToolCaller
}

// NewUserService creates a new user facade
func NewUserService(caller *ToolCaller) *UserService {
	return &UserService{caller: caller}
}

// CreateUser registers a new user. username and fullName are optional.
func (s *UserService) CreateUser(ctx context.Context, email, password, username, fullName string) (*entity.CreateUserResult, error) {
	args := map[string]string{
		"email":    email,
		"password": password,
	}
	if username != "" {
		args["username"] = username
	}
	if fullName != "" {
		args["full_name"] = fullName
	}

	result, err := s.caller.Call(ctx, entity.ServerUserManagement, entity.ToolCreateUser, args)
	if err != nil {
		return nil, err
	}

	var created entity.CreateUserResult
	if err := result.UnmarshalPayload(&created); err != nil {
		return nil, fmt.Errorf("failed to decode create result: %w", err)
	}
	// Fallback mode answers with a plain user record instead.
	if !created.Success && created.UserID == "" {
		var record entity.UserRecord
		if err := result.UnmarshalPayload(&record); err == nil && record.ID != "" {
			created = entity.CreateUserResult{Success: true, UserID: record.ID, Email: record.Email}
		}
	}
	return &created, nil
}

// GetUser fetches a user by id or email.
func (s *UserService) GetUser(ctx context.Context, params GetUserParams) (*entity.UserRecord, error) {
	args := map[string]string{}
	if params.UserID != "" {
		args["userId"] = params.UserID
	}
	if params.Email != "" {
		args["email"] = params.Email
	}

	result, err := s.caller.Call(ctx, entity.ServerUserManagement, entity.ToolGetUser, args)
	if err != nil {
		return nil, err
	}

	var miss entity.SoftMiss
	if err := result.UnmarshalPayload(&miss); err == nil && miss.Error != "" {
		return nil, ErrUserNotFound
	}

	var record entity.UserRecord
	if err := result.UnmarshalPayload(&record); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &record, nil
}

// UpdateUser mutates profile fields for a user id.
func (s *UserService) UpdateUser(ctx context.Context, userID string, update ProfileUpdate) (*entity.UpdateUserResult, error) {
	args := map[string]string{"userId": userID}
	if update.Username != nil {
		args["username"] = *update.Username
	}
	if update.FullName != nil {
		args["full_name"] = *update.FullName
	}
	if update.AvatarURL != nil {
		args["avatar_url"] = *update.AvatarURL
	}

	result, err := s.caller.Call(ctx, entity.ServerUserManagement, entity.ToolUpdateUser, args)
	if err != nil {
		return nil, err
	}

	var miss entity.SoftMiss
	if err := result.UnmarshalPayload(&miss); err == nil && miss.Error != "" {
		return nil, ErrUserNotFound
	}

	var updated entity.UpdateUserResult
	if err := result.UnmarshalPayload(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode update result: %w", err)
	}
	// Fallback mode answers with a plain user record instead.
	if !updated.Success && updated.User == nil {
		var record entity.UserRecord
		if err := result.UnmarshalPayload(&record); err == nil && record.ID != "" {
			updated = entity.UpdateUserResult{Success: true, User: &entity.UserProfile{
				ID:        record.ID,
				Username:  record.Username,
				FullName:  record.FullName,
				AvatarURL: record.AvatarURL,
				CreatedAt: record.CreatedAt,
				UpdatedAt: record.UpdatedAt,
			}}
		}
	}
	return &updated, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, userID string) (*entity.DeleteUserResult, error) {
	args := map[string]string{"userId": userID}

	result, err := s.caller.Call(ctx, entity.ServerUserManagement, entity.ToolDeleteUser, args)
	if err != nil {
		return nil, err
	}

	var deleted entity.DeleteUserResult
	if err := result.UnmarshalPayload(&deleted); err != nil {
		return nil, fmt.Errorf("failed to decode delete result: %w", err)
	}
	return &deleted, nil
}
