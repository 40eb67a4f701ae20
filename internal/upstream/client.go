package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharmaradar/config"
	"pharmaradar/internal/tokenstore"
)

const authorizationHeader = "Authorization"

// Client to jedyny kanał komunikacji z backendem aptecznym. Do każdego
// żądania dokleja Bearer token sesji, jeśli jest w magazynie, loguje każdą
// odpowiedź i klasyfikuje błędy po kodzie statusu. Odpowiedź 401 czyści
// tokeny sesji, bez ponawiania i bez przekierowania - to strona zauważa
// wylogowanie przy następnym sprawdzeniu stanu sesji.
type Client struct {
	baseURL string
	http    *http.Client
	store   tokenstore.TokenStore
	logger  *zap.Logger
}

func NewClient(cfg config.UpstreamConfig, store tokenstore.TokenStore, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		store:   store,
		logger:  logger,
	}
}

func (c *Client) Get(ctx context.Context, sessionID, path string, out interface{}) error {
	return c.do(ctx, sessionID, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, sessionID, path string, body, out interface{}) error {
	return c.do(ctx, sessionID, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, sessionID, path string, body, out interface{}) error {
	return c.do(ctx, sessionID, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, sessionID, path string, body, out interface{}) error {
	return c.do(ctx, sessionID, http.MethodPatch, path, body, out)
}

func (c *Client) do(ctx context.Context, sessionID, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Err: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	if sessionID != "" {
		if tokens, err := c.store.GetTokens(ctx, sessionID); err == nil && tokens.AccessToken != "" {
			req.Header.Set(authorizationHeader, "Bearer "+tokens.AccessToken)
		}
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("brak odpowiedzi z serwera",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &APIError{NoResponse: true, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{NoResponse: true, Err: err}
	}

	c.logResponse(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		return c.classifyError(ctx, sessionID, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &APIError{Err: err}
		}
	}

	return nil
}

func (c *Client) logResponse(method, path string, status int, latency time.Duration) {
	logger := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
	)

	if status >= 500 {
		logger.Error("błąd serwera backendu")
	} else if status >= 400 {
		logger.Warn("błąd klienta backendu")
	} else {
		logger.Info("odpowiedź backendu")
	}
}

func (c *Client) classifyError(ctx context.Context, sessionID string, status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Detail = payload.Detail
	}

	switch status {
	case http.StatusUnauthorized:
		c.logger.Warn("token nieautoryzowany - czyszczenie sesji")
		if sessionID != "" {
			if err := c.store.RemoveTokens(ctx, sessionID); err != nil {
				c.logger.Error("nie udało się wyczyścić tokenów sesji", zap.Error(err))
			}
		}
	case http.StatusForbidden:
		c.logger.Error("brak dostępu do zasobu")
	case http.StatusNotFound:
		c.logger.Error("zasób nie znaleziony")
	case http.StatusInternalServerError:
		c.logger.Error("błąd serwera")
	default:
		c.logger.Error("nieoczekiwany błąd API", zap.Int("status", status))
	}

	return apiErr
}
