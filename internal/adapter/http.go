package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A bare "host:port" address is treated as http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
	h.client.SetBearerToken(h.token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate posts the credentials to /api/authenticate. The token is read
// from the id_token body field, or from the Authorization header when the
// body carries none.
func (h *httpServerAdapter) Authenticate(ctx context.Context, credentials models.LoginVM) (string, error) {
	var body models.JWTToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/authenticate")
	if err != nil {
		return "", fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode authenticate response: %w", err)
	}

	token := body.IDToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return "", fmt.Errorf("authenticate parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", credentials.Username).Msg("authenticated")
	return token, nil
}

func (h *httpServerAdapter) GetSolutionByUUID(ctx context.Context, uuid string) (models.Solution, error) {
	var solution models.Solution

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uuid", uuid).
		Get("/api/solutions/uuid/{uuid}")
	if err != nil {
		return models.Solution{}, fmt.Errorf("get solution request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Solution{}, err
	}

	if err = json.Unmarshal(resp.Body(), &solution); err != nil {
		return models.Solution{}, fmt.Errorf("decode solution response: %w", err)
	}
	return solution, nil
}

func (h *httpServerAdapter) UpdateCompositeSolution(ctx context.Context, update models.CompositeSolutionUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/solutions/composite")
	if err != nil {
		return fmt.Errorf("update composite solution request: %w", err)
	}

	return mapHTTPError(resp)
}
