// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	apiTokenHeader = "x-api-token"
	acceptJSON     = "application/json"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Every call goes through a circuit breaker that opens after
// adapterCfg.BreakerMaxFailures consecutive transport failures or 5xx
// responses and stays open for adapterCfg.BreakerOpenTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	maxFailures := adapterCfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dream-api",
		MaxRequests: 1,
		Timeout:     adapterCfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &httpServerAdapter{client: client, breaker: breaker, logger: log}, nil
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

// LoginInfo implements [ServerAdapter]. It sends
// GET /user/login_info with the token in the x-api-token header and decodes
// the profile from the data field of the response.
func (h *httpServerAdapter) LoginInfo(ctx context.Context, token string) (*models.Profile, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", acceptJSON).
		SetHeader(apiTokenHeader, token)

	resp, err := h.execute("login info", req, http.MethodGet, "/user/login_info")
	if err != nil {
		return nil, err
	}

	var info models.LoginInfoResponse
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("%w: decode login info: %w", ErrMalformedResponse, err)
	}
	if info.Data == nil {
		return nil, fmt.Errorf("%w: login info carries no profile", ErrMalformedResponse)
	}

	return info.Data, nil
}

// LoginTelegram implements [ServerAdapter]. It POSTs the credential to
// POST /user/login_telegram as {"initData": ...}.
func (h *httpServerAdapter) LoginTelegram(ctx context.Context, initData string) (models.TelegramLoginResponse, error) {
	var out models.TelegramLoginResponse

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TelegramLoginRequest{InitData: initData})

	resp, err := h.execute("login telegram", req, http.MethodPost, "/user/login_telegram")
	if err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.TelegramLoginResponse{}, fmt.Errorf("%w: decode telegram login: %w", ErrMalformedResponse, err)
	}
	return out, nil
}

// GetPublicDreams implements [ServerAdapter]. It sends GET /dreams/global/get.
func (h *httpServerAdapter) GetPublicDreams(ctx context.Context) ([]json.RawMessage, error) {
	req := h.client.R().SetContext(ctx)

	resp, err := h.execute("public dreams", req, http.MethodGet, "/dreams/global/get")
	if err != nil {
		return nil, err
	}
	return decodeList("public dreams", resp)
}

// GetPersonalDreams implements [ServerAdapter]. It targets
// /{username}/dreams/get, or /user/dreams/get when username is empty, and
// attaches the token as a bearer credential when one is given. The request is
// a GET unless filter is set, in which case the filter is POSTed as JSON.
func (h *httpServerAdapter) GetPersonalDreams(ctx context.Context, username, token string, filter *models.DreamFilter) ([]json.RawMessage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", acceptJSON)
	if token != "" {
		req.SetAuthToken(token)
	}

	path := "/user/dreams/get"
	if username != "" {
		path = "/" + url.PathEscape(username) + "/dreams/get"
	}

	method := http.MethodGet
	if filter != nil {
		method = http.MethodPost
		req.SetHeader("Content-Type", "application/json").SetBody(filter)
	}

	resp, err := h.execute("personal dreams", req, method, path)
	if err != nil {
		return nil, err
	}
	return decodeList("personal dreams", resp)
}

// CreateDream implements [ServerAdapter]. It POSTs the dream to
// POST /{username}/dreams/create.
func (h *httpServerAdapter) CreateDream(ctx context.Context, username string, dream models.Dream) (json.RawMessage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dream)

	resp, err := h.execute("create dream", req, http.MethodPost, "/"+url.PathEscape(username)+"/dreams/create")
	if err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || !json.Valid(body) {
		h.logger.Debug().Str("func", "httpServerAdapter.CreateDream").Msg("create response has no JSON body")
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// DeleteDream implements [ServerAdapter]. It sends DELETE /dreams/{id}.
func (h *httpServerAdapter) DeleteDream(ctx context.Context, id models.DreamID) error {
	req := h.client.R().SetContext(ctx)

	_, err := h.execute("delete dream", req, http.MethodDelete, "/dreams/"+url.PathEscape(id.String()))
	return err
}

// execute runs req through the circuit breaker. Transport failures and 5xx
// responses count against the breaker; any other non-2xx status is returned
// as a mapped error without tripping it.
func (h *httpServerAdapter) execute(op string, req *resty.Request, method, path string) (*resty.Response, error) {
	var resp *resty.Response

	_, err := h.breaker.Execute(func() (interface{}, error) {
		var execErr error
		resp, execErr = req.Execute(method, path)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %s request: %w", ErrTransport, op, execErr)
		}
		if isServerFault(resp) {
			return nil, mapHTTPError(resp)
		}
		return nil, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, op, err)
	case err != nil:
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return nil, err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("request rejected")
		return nil, err
	}
	return resp, nil
}

// decodeList normalizes a list response. An empty body is an empty list; a
// body that is not JSON is malformed.
func decodeList(op string, resp *resty.Response) ([]json.RawMessage, error) {
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s: body is not JSON", ErrMalformedResponse, op)
	}
	return Normalize(body), nil
}
