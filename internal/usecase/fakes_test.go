package usecase

import (
	"context"
	"fmt"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
)

type stubIdentity struct {
	users     []entity.IdentityUser
	nextID    int
	createErr error
	listErr   error
	deleteErr error
	deleted   []string
}

func (s *stubIdentity) CreateUser(ctx context.Context, email, password string) (*entity.IdentityUser, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	user := entity.IdentityUser{
		ID:        fmt.Sprintf("user-%d", s.nextID),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *stubIdentity) ListUsers(ctx context.Context) ([]entity.IdentityUser, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.users, nil
}

func (s *stubIdentity) DeleteUser(ctx context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, userID)
	return nil
}

type stubProfiles struct {
	profiles  map[string]*entity.UserProfile
	insertErr error
	updateErr error
	deleteErr error
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{profiles: map[string]*entity.UserProfile{}}
}

func (s *stubProfiles) Insert(ctx context.Context, profile *entity.UserProfile) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	copied := *profile
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *stubProfiles) FindByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (s *stubProfiles) ExistsUsername(ctx context.Context, username string) (bool, error) {
	for _, profile := range s.profiles {
		if profile.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubProfiles) Update(ctx context.Context, userID string, fields map[string]any) (*entity.UserProfile, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	if username, ok := fields["username"].(string); ok {
		profile.Username = username
	}
	if fullName, ok := fields["fullName"].(string); ok {
		profile.FullName = fullName
	}
	if avatarURL, ok := fields["avatarUrl"].(string); ok {
		profile.AvatarURL = avatarURL
	}
	profile.UpdatedAt = time.Now().UTC()
	copied := *profile
	return &copied, nil
}

func (s *stubProfiles) Delete(ctx context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.profiles[userID]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(s.profiles, userID)
	return nil
}
