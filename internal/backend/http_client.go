package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clipvault/clipvault/models"
)

// HTTPClientConfig configures the resty transport to the sync backend.
type HTTPClientConfig struct {
	BaseURL     string
	ContainerID string
	DeviceToken string
	Timeout     time.Duration
}

type httpAdapter struct {
	client      *resty.Client
	containerID string

	mu    sync.RWMutex
	token string
}

// NewHTTPAdapter constructs an [Adapter] speaking the backend's HTTP API.
func NewHTTPAdapter(cfg HTTPClientConfig) Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sync.clipvault.dev"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAdapter{
		client:      cli,
		containerID: cfg.ContainerID,
		token:       strings.TrimSpace(cfg.DeviceToken),
	}
}

// SetToken replaces the bearer device token used on subsequent requests.
func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Probe implements [Adapter].
func (h *httpAdapter) Probe(ctx context.Context) error {
	if h.containerID == "" {
		return ErrNoContainer
	}

	resp, err := h.request(ctx).Get("/v1/containers/" + h.containerID + "/availability")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: probe rejected with status %d", ErrUnauthorized, resp.StatusCode())
	default:
		return fmt.Errorf("%w: probe returned status %d", ErrUnavailable, resp.StatusCode())
	}
}

type accountStatusResponse struct {
	Status string `json:"status"`
}

// AccountStatus implements [Adapter].
func (h *httpAdapter) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	if err := h.checkToken(); err != nil {
		return models.AccountStatusUnknown, err
	}

	var body accountStatusResponse
	resp, err := h.request(ctx).SetResult(&body).Get("/v1/account/status")
	if err != nil {
		return models.AccountStatusUnknown, fmt.Errorf("%w: %v", ErrAccountQuery, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.AccountStatusUnknown, fmt.Errorf("%w: status %d", ErrAccountQuery, resp.StatusCode())
	}

	switch body.Status {
	case "available":
		return models.AccountStatusAvailable, nil
	case "no_account":
		return models.AccountStatusNoAccount, nil
	case "restricted":
		return models.AccountStatusRestricted, nil
	case "temporarily_unavailable":
		return models.AccountStatusTemporarilyUnavailable, nil
	default:
		return models.AccountStatusUnknown, nil
	}
}

// Push implements [Adapter].
func (h *httpAdapter) Push(ctx context.Context, entries []models.ClipEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := h.checkToken(); err != nil {
		return err
	}

	resp, err := h.request(ctx).SetBody(entries).Post("/v1/clips")
	if err != nil {
		return fmt.Errorf("push clips: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("push clips: unexpected status %d", resp.StatusCode())
	}
}

// Fetch implements [Adapter].
func (h *httpAdapter) Fetch(ctx context.Context, since time.Time) ([]models.ClipEntry, error) {
	if err := h.checkToken(); err != nil {
		return nil, err
	}

	var entries []models.ClipEntry
	resp, err := h.request(ctx).
		SetQueryParam("since", since.UTC().Format(time.RFC3339Nano)).
		SetResult(&entries).
		Get("/v1/clips")
	if err != nil {
		return nil, fmt.Errorf("fetch clips: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return entries, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("fetch clips: unexpected status %d", resp.StatusCode())
	}
}

func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkToken rejects requests early when the configured device token has
// already expired, sparing a guaranteed 401 round trip. Tokens that are not
// JWTs are passed through and left for the backend to judge.
func (h *httpAdapter) checkToken() error {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token == "" {
		return nil
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return fmt.Errorf("%w: device token expired at %s", ErrUnauthorized, claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
