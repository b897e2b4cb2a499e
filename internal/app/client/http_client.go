package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/exp/slog"

	"jobtracker/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
	}

	if cfg.EnableTLS && cfg.CACertPath != "" {
		pem, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates in %s", cfg.CACertPath)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}

	return &httpClient{
		client:    &http.Client{Timeout: cfg.Timeout, Transport: transport},
		log:       log.With("component", "http_client"),
		baseURL:   cfg.BaseURL(),
		userAgent: "JobTracker-Client/1.0",
	}, nil
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", req)
	if err != nil {
		return out, err
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return out, err
	}
	h.SetToken(out.Token)
	return out, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Dashboard(ctx context.Context, filter, sort string) (Dashboard, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", filter)
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	path := "/api/applications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out Dashboard
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	return out, h.parseResponse(resp, &out)
}

func (h *httpClient) GetApplication(ctx context.Context, id string) (Application, error) {
	var out Application
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/applications/"+url.PathEscape(id), nil)
	if err != nil {
		return out, err
	}
	return out, h.parseResponse(resp, &out)
}

func (h *httpClient) CreateApplication(ctx context.Context, req CreateApplicationRequest) (Application, error) {
	var out Application
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/applications", req)
	if err != nil {
		return out, err
	}
	return out, h.parseResponse(resp, &out)
}

func (h *httpClient) UpdateApplication(ctx context.Context, id string, req UpdateApplicationRequest) (Application, error) {
	var out Application
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/applications/"+url.PathEscape(id), req)
	if err != nil {
		return out, err
	}
	return out, h.parseResponse(resp, &out)
}

func (h *httpClient) DeleteApplication(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/applications/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "path", path)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// parseResponse decodes a 2xx body into result (when non-nil) and turns
// anything else into an *APIError.
func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err == nil && len(data) > 0 {
			_ = json.Unmarshal(data, apiErr)
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
