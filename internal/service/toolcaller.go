package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/infrastructure/config"
	"flightboard-service/pkg/logger"
)

// Options configures a ToolCaller. Everything is explicit: the caller
// never reads environment state, so tests can construct both fallback
// modes deterministically.
type Options struct {
	// BaseURL is the tool gateway, e.g. http://localhost:8000.
	BaseURL string
	// FallbackEnabled answers failed or dev-mode calls from mock data
	// instead of propagating the transport error.
	FallbackEnabled bool
	// OnFallback is invoked whenever a call is answered from mock
	// data. Optional.
	OnFallback func(server entity.ServerName, tool entity.ToolName)
	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
	Logger     logger.Logger
}

// IsLocalHost reports whether a hostname looks like a local/dev
// environment, the usual signal for enabling fallback.
func IsLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// OptionsFromConfig builds client options from configuration. Fallback
// is on when the flag says so, or when the gateway URL points at a
// local/dev host.
func OptionsFromConfig(cfg *config.Config, log logger.Logger) Options {
	enabled := cfg.FallbackEnabled
	if u, err := url.Parse(cfg.GatewayURL); err == nil && IsLocalHost(u.Hostname()) {
		enabled = true
	}
	return Options{
		BaseURL:         cfg.GatewayURL,
		FallbackEnabled: enabled,
		Logger:          log,
	}
}

// ToolCaller is the client half of the tool invocation protocol: it
// posts envelopes to the gateway and, when fallback is enabled, degrades
// to mock data on any transport failure.
type ToolCaller struct {
	baseURL    string
	fallback   bool
	onFallback func(server entity.ServerName, tool entity.ToolName)
	client     *http.Client
	logger     logger.Logger
}

// NewToolCaller creates a caller from explicit options.
func NewToolCaller(opts Options) *ToolCaller {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &ToolCaller{
		baseURL:    opts.BaseURL,
		fallback:   opts.FallbackEnabled,
		onFallback: opts.OnFallback,
		client:     client,
		logger:     log,
	}
}

// Call invokes a named tool on a named server. On transport failure with
// fallback enabled the error is swallowed and a mock response returned;
// with fallback disabled the error propagates unchanged.
func (c *ToolCaller) Call(ctx context.Context, server entity.ServerName, tool entity.ToolName, args map[string]string) (*entity.ToolCallResult, error) {
	result, err := c.post(ctx, entity.ToolCallEnvelope{
		ServerName: server,
		ToolName:   tool,
		Arguments:  args,
	})
	if err == nil {
		return result, nil
	}

	c.logger.Error("Tool call failed", "server", server, "tool", tool, "error", err)
	if !c.fallback {
		return nil, err
	}

	c.logger.Warn("Using mock data; start the tool gateway for real data",
		"server", server, "tool", tool)
	if c.onFallback != nil {
		c.onFallback(server, tool)
	}
	return mockResponse(server, tool, args)
}

func (c *ToolCaller) post(ctx context.Context, env entity.ToolCallEnvelope) (*entity.ToolCallResult, error) {
	jsonData, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	url := fmt.Sprintf("%s/call_tool", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errorBody struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		if errorBody.Error != "" {
			return nil, fmt.Errorf("%s", errorBody.Error)
		}
		return nil, fmt.Errorf("HTTP error %d", resp.StatusCode)
	}

	var result entity.ToolCallResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
