package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
	"flightboard-service/pkg/logger"
)

// UserToolset implements the user-management adapter. Every mutation goes
// to the identity provider first; the profile store is only touched after
// the identity call succeeds.
type UserToolset struct {
	identity repository.IdentityProvider
	profiles repository.ProfileRepository
	logger   logger.Logger
}

// NewUserToolset creates a new user-management toolset
func NewUserToolset(identity repository.IdentityProvider, profiles repository.ProfileRepository, log logger.Logger) *UserToolset {
	return &UserToolset{
		identity: identity,
		profiles: profiles,
		logger:   log,
	}
}

// deriveUsername resolves the username for a new profile: the requested
// name, or the email local-part, disambiguated with a numeric suffix on
// collision. The existence check and the later insert are not isolated;
// two concurrent signups can both pass the check before either write
// lands. Known gap, left as is.
func (t *UserToolset) deriveUsername(ctx context.Context, requested, email string) (string, error) {
	base := requested
	if base == "" {
		base = email
		if at := strings.Index(base, "@"); at >= 0 {
			base = base[:at]
		}
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := t.profiles.ExistsUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, suffix)
	}
}

// CreateUser registers the user with the identity service, then writes
// the profile. A profile write failure after a successful identity call
// does not fail the operation; it is surfaced as a warning field.
func (t *UserToolset) CreateUser(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	email := args["email"]
	password := args["password"]
	if email == "" || password == "" {
		return nil, entity.NewInvalidParams("Missing required parameters: email and password")
	}

	user, err := t.identity.CreateUser(ctx, email, password)
	if err != nil {
		return nil, entity.NewInternalError(err)
	}

	result := entity.CreateUserResult{
		Success: true,
		UserID:  user.ID,
		Email:   user.Email,
	}

	username, err := t.deriveUsername(ctx, args["username"], email)
	if err != nil {
		t.logger.Error("Error deriving username", "userId", user.ID, "error", err)
		result.Warning = fmt.Sprintf("profile not created: %v", err)
		return entity.NewTextResult(result)
	}

	profile := &entity.UserProfile{
		ID:        user.ID,
		Username:  username,
		FullName:  args["full_name"],
		CreatedAt: time.Now(),
	}
	if err := t.profiles.Insert(ctx, profile); err != nil {
		t.logger.Error("Error creating profile", "userId", user.ID, "error", err)
		result.Warning = fmt.Sprintf("profile not created: %v", err)
	}
	return entity.NewTextResult(result)
}

// GetUser fetches a user by id (direct profile read) or by email (scan of
// the identity list, then a profile read keyed by the matched id). A
// profile-store miss means "profile absent, identity record present",
// not an error.
func (t *UserToolset) GetUser(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	userID := args["userId"]
	email := args["email"]
	if userID == "" && email == "" {
		return nil, entity.NewInvalidParams("Missing required parameter: userId or email")
	}

	if userID != "" {
		profile, err := t.profiles.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return entity.NewTextResult(entity.SoftMiss{Error: "User not found"})
			}
			return nil, entity.NewInternalError(err)
		}
		record := entity.UserRecord{ID: profile.ID, CreatedAt: profile.CreatedAt}
		record.MergeProfile(profile)
		return entity.NewTextResult(record)
	}

	users, err := t.identity.ListUsers(ctx)
	if err != nil {
		return nil, entity.NewInternalError(err)
	}
	var matched *entity.IdentityUser
	for i := range users {
		if users[i].Email == email {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		return entity.NewTextResult(entity.SoftMiss{Error: "User not found"})
	}

	record := entity.UserRecord{
		ID:        matched.ID,
		Email:     matched.Email,
		CreatedAt: matched.CreatedAt,
	}
	profile, err := t.profiles.FindByID(ctx, matched.ID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, entity.NewInternalError(err)
	}
	record.MergeProfile(profile)
	return entity.NewTextResult(record)
}

// UpdateUser mutates the profile store, which is the sole source of
// truth for profile fields; a store failure fails the call.
func (t *UserToolset) UpdateUser(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	userID := args["userId"]
	if userID == "" {
		return nil, entity.NewInvalidParams("Missing required parameter: userId")
	}

	fields := map[string]any{}
	if username, ok := args["username"]; ok {
		fields["username"] = username
	}
	if fullName, ok := args["full_name"]; ok {
		fields["fullName"] = fullName
	}
	if avatarURL, ok := args["avatar_url"]; ok {
		fields["avatarUrl"] = avatarURL
	}

	profile, err := t.profiles.Update(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return entity.NewTextResult(entity.SoftMiss{Error: "User not found"})
		}
		return nil, entity.NewInternalError(err)
	}
	return entity.NewTextResult(entity.UpdateUserResult{Success: true, User: profile})
}

// DeleteUser removes the identity record, then the profile. Profile
// deletion failure is reported as a warning, not a failure.
func (t *UserToolset) DeleteUser(ctx context.Context, args map[string]string) (*entity.ToolCallResult, error) {
	userID := args["userId"]
	if userID == "" {
		return nil, entity.NewInvalidParams("Missing required parameter: userId")
	}

	if err := t.identity.DeleteUser(ctx, userID); err != nil {
		return nil, entity.NewInternalError(err)
	}

	result := entity.DeleteUserResult{
		Success: true,
		Message: "User deleted successfully",
	}
	if err := t.profiles.Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		t.logger.Error("Error deleting profile", "userId", userID, "error", err)
		result.Warning = fmt.Sprintf("profile not deleted: %v", err)
	}
	return entity.NewTextResult(result)
}
