package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
	"flightboard-service/pkg/logger"
)

// HTTPClient talks to the external identity service's admin API. The
// service owns user ids and emails; it authenticates with a static
// service-role key, not an OAuth flow.
type HTTPClient struct {
	logger     logger.Logger
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewHTTPClient creates a new identity service client
func NewHTTPClient(baseURL, serviceKey string, log logger.Logger) repository.IdentityProvider {
	return &HTTPClient{
		logger:     log,
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateUser registers a new identity record and returns the issued id.
func (c *HTTPClient) CreateUser(ctx context.Context, email, password string) (*entity.IdentityUser, error) {
	body := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create request: %w", err)
	}

	url := fmt.Sprintf("%s/admin/users", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return nil, fmt.Errorf("identity service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		User entity.IdentityUser `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if response.User.ID == "" {
		return nil, fmt.Errorf("identity service returned no user id")
	}

	c.logger.Info("Identity record created", "userId", response.User.ID, "email", email)
	return &response.User, nil
}

// ListUsers fetches the full identity user list. Lookup by email is a
// scan over this result.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]entity.IdentityUser, error) {
	url := fmt.Sprintf("%s/admin/users", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return nil, fmt.Errorf("identity service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		Users []entity.IdentityUser `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return response.Users, nil
}

// DeleteUser removes an identity record.
func (c *HTTPClient) DeleteUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("identity service returned status %d: %v", resp.StatusCode, errorBody)
	}

	c.logger.Info("Identity record deleted", "userId", userID)
	return nil
}
