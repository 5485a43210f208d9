package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cosplitz/cosplitz-client/internal/config"
	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/models"
)

type httpAuthAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthAPI constructs the HTTP/REST implementation of [AuthAPI].
// It normalises and validates the base URL from apiCfg.BaseURL and
// configures the underlying client with the resolved base URL, the request
// timeout, a per-request X-Request-ID correlation header, and a User-Agent
// derived from appCfg.Version.
//
// onUnauthorized, when non-nil, is invoked as a side effect for every 401
// response, the Go counterpart of the web client's redirect-to-login
// response interceptor. It must not block.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAuthAPI(apiCfg config.API, appCfg config.App, log *logger.Logger, onUnauthorized func()) (AuthAPI, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	userAgent := "cosplitz-client"
	if appCfg.Version != "" {
		userAgent += "/" + appCfg.Version
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetHeader("User-Agent", userAgent)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			log.Warn().
				Str("path", resp.Request.URL).
				Msg("unauthorized response from backend")
			if onUnauthorized != nil {
				onUnauthorized()
			}
		}
		return nil
	})

	return &httpAuthAPI{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAuthAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAPI]. It returns the bearer token currently held by
// the adapter, or an empty string if none has been set.
func (h *httpAuthAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthAPI]. It POSTs the registration payload to
// POST /api/register/ and returns the raw response body on any 2xx status.
func (h *httpAuthAPI) Register(ctx context.Context, req models.RegisterRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/register/")
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Login implements [AuthAPI]. It POSTs the credentials to POST /api/login/
// and returns the raw response body on any 2xx status. The session token is
// not stored here; the caller extracts and commits it.
func (h *httpAuthAPI) Login(ctx context.Context, req models.LoginRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/login/")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetUser implements [AuthAPI]. It GETs the current account from
// GET /api/user/info/ using the stored bearer token and returns the raw
// response body on any 2xx status.
func (h *httpAuthAPI) GetUser(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/info/")
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// IssueOTP implements [AuthAPI]. It triggers one-time-code issuance for the
// account via GET /api/otp/{accountID}/.
func (h *httpAuthAPI) IssueOTP(ctx context.Context, accountID int64) error {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/otp/%d/", accountID))
	if err != nil {
		return fmt.Errorf("issue otp request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyOTP implements [AuthAPI]. It POSTs the one-time code to
// POST /api/verify_otp/.
func (h *httpAuthAPI) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/verify_otp/")
	if err != nil {
		return fmt.Errorf("verify otp request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
