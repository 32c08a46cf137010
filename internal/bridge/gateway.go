package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/utils"
)

// GatewayOptions configures the HTTP bridge client.
type GatewayOptions struct {
	BaseURL string        // native gateway base URL (ex: http://127.0.0.1:8091)
	Timeout time.Duration // per-call timeout
}

// Gateway implements Bridge over the native gateway's HTTP API.
type Gateway struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  logger.Logger
}

func NewGateway(opts GatewayOptions, log logger.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		logger:  log,
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return (&net.Dialer{
						Timeout:   opts.Timeout,
						KeepAlive: 30 * time.Second,
					}).DialContext(ctx, network, addr)
				},
				MaxIdleConnsPerHost: 4,
			},
		},
	}
}

// ResolveSharedContent queries the gateway for pending shared content.
func (g *Gateway) ResolveSharedContent(ctx context.Context) (*domain.ShareEvent, error) {
	var event domain.ShareEvent
	ok, err := g.getJSON(ctx, "/v1/share/pending", &event)
	if err != nil {
		return nil, err
	}
	if !ok || event.IsEmpty() {
		return nil, nil
	}
	return &event, nil
}

// ReadClipboardText reads the current clipboard text.
func (g *Gateway) ReadClipboardText(ctx context.Context) (string, error) {
	var body struct {
		Text string `json:"text"`
	}
	ok, err := g.getJSON(ctx, "/v1/clipboard", &body)
	if err != nil || !ok {
		return "", err
	}
	return body.Text, nil
}

func (g *Gateway) CheckCallPermission(ctx context.Context) (bool, error) {
	var body struct {
		Granted bool `json:"granted"`
	}
	if _, err := g.getJSON(ctx, "/v1/permissions/call", &body); err != nil {
		return false, err
	}
	return body.Granted, nil
}

func (g *Gateway) RequestCallPermission(ctx context.Context) (bool, error) {
	var body struct {
		Granted bool `json:"granted"`
	}
	if err := g.postJSON(ctx, "/v1/permissions/call/request", struct{}{}, &body); err != nil {
		return false, err
	}
	return body.Granted, nil
}

// CreatePinnedShortcut asks the native layer to pin the shortcut. A gateway
// error or an unsuccessful result comes back as *domain.NativeCreationError.
func (g *Gateway) CreatePinnedShortcut(ctx context.Context, req PinRequest) error {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}
	if err := g.postJSON(ctx, "/v1/shortcuts/pin", req, &body); err != nil {
		return &domain.NativeCreationError{Reason: err.Error()}
	}
	if !body.Success {
		reason := body.Error
		if reason == "" {
			reason = "gateway reported failure without a reason"
		}
		return &domain.NativeCreationError{Reason: reason}
	}
	return nil
}

// PickFile opens the native file picker. Returns nil when the user cancels.
func (g *Gateway) PickFile(ctx context.Context, mimeFilters []string) (*PickedFile, error) {
	payload := struct {
		MimeFilters []string `json:"mimeFilters,omitempty"`
	}{MimeFilters: mimeFilters}

	var picked PickedFile
	if err := g.postJSON(ctx, "/v1/files/pick", payload, &picked); err != nil {
		return nil, err
	}
	if picked.URI == "" {
		return nil, nil
	}
	return &picked, nil
}

// Ping probes gateway reachability for readiness reporting.
func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/healthz", http.NoBody)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer utils.Close(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway health returned %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET and decodes the body into out.
// Returns false when the gateway answers 204 No Content.
func (g *Gateway) getJSON(ctx context.Context, path string, out interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("failed to create gateway request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("gateway call %s failed: %w", path, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if resp.StatusCode >= 300 {
		return false, fmt.Errorf("gateway call %s returned %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode gateway response from %s: %w", path, err)
	}
	return true, nil
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (g *Gateway) postJSON(ctx context.Context, path string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway call %s failed: %w", path, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway call %s returned %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response from %s: %w", path, err)
	}
	return nil
}
