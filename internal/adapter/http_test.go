// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	return newTestAdapterWithConfig(t, config.ClientAdapter{
		HTTPAddress:        serverURL,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: time.Minute,
	})
}

func newTestAdapterWithConfig(t *testing.T, cfg config.ClientAdapter) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "https://dreams.example.com/", "https://dreams.example.com", false},
		{"host only", "localhost:8080", "http://localhost:8080", false},
		{"path kept", "https://example.com/api/", "https://example.com/api", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── LoginInfo ────────────────────────────────────────────────────────────────

func TestLoginInfo_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/user/login_info", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("x-api-token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))
		writeJSON(w, http.StatusOK, `{"data":{"username":"ann","display_name":"Ann","plan":"pro"}}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.LoginInfo(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "ann", got.Username)
	assert.Equal(t, "Ann", got.DisplayName)
	assert.JSONEq(t, `"pro"`, string(got.Fields["plan"]))
}

func TestLoginInfo_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad token"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginInfo(context.Background(), "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsNoResponse(err))
}

func TestLoginInfo_MissingProfile(t *testing.T) {
	for _, body := range []string{`{"data":null}`, `{}`, `not json`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.LoginInfo(context.Background(), "tok")

			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.False(t, IsNoResponse(err))
		})
	}
}

func TestLoginInfo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.LoginInfo(context.Background(), "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsNoResponse(err))
}

// ── LoginTelegram ────────────────────────────────────────────────────────────

func TestLoginTelegram_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/user/login_telegram", func(w http.ResponseWriter, r *http.Request) {
		var req models.TelegramLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hash=abc&auth_date=123", req.InitData)
		writeJSON(w, http.StatusOK, `{"success":true,"apiKey":"k1","user":{"username":"ann"}}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.LoginTelegram(context.Background(), "hash=abc&auth_date=123")

	require.NoError(t, err)
	assert.True(t, got.Succeeded())
	assert.Equal(t, "k1", got.IssuedToken())
	require.NotNil(t, got.User)
	assert.Equal(t, "ann", got.User.Username)
}

func TestLoginTelegram_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginTelegram(context.Background(), "x")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLoginTelegram_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `<html>`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginTelegram(context.Background(), "x")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── GetPublicDreams ──────────────────────────────────────────────────────────

func TestGetPublicDreams_Envelope(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/dreams/global/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"dreams":[{"id":1,"title":"A"}]}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPublicDreams(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"id":1,"title":"A"}`, string(got[0]))
}

func TestGetPublicDreams_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPublicDreams(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetPublicDreams_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPublicDreams(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── GetPersonalDreams ────────────────────────────────────────────────────────

func TestGetPersonalDreams_ByUsername(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{username}/dreams/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ann", chi.URLParam(r, "username"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, `{"data":[{"id":"7"},{"id":"8"}]}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPersonalDreams(context.Background(), "ann", "tok", nil)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetPersonalDreams_EscapesUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/a%2Fb/dreams/get", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPersonalDreams(context.Background(), "a/b", "", nil)
	require.NoError(t, err)
}

func TestGetPersonalDreams_FallbackPathWithoutToken(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/user/dreams/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[]`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPersonalDreams(context.Background(), "", "", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPersonalDreams_FilterIsPosted(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/{username}/dreams/get", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"query":"flying","limit":10}`, string(body))
		writeJSON(w, http.StatusOK, `[{"id":1}]`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPersonalDreams(context.Background(), "ann", "tok", &models.DreamFilter{Query: "flying", Limit: 10})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// ── CreateDream ──────────────────────────────────────────────────────────────

func TestCreateDream_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/{username}/dreams/create", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ann", chi.URLParam(r, "username"))
		assert.Empty(t, r.Header.Get("Authorization"))
		var d models.Dream
		require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
		assert.Equal(t, "Flying", d.Title)
		writeJSON(w, http.StatusCreated, `{"id":42}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateDream(context.Background(), "ann", models.Dream{Title: "Flying"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42}`, string(got))
}

func TestCreateDream_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateDream(context.Background(), "ann", models.Dream{Title: "x"})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateDream_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("db down"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateDream(context.Background(), "ann", models.Dream{Title: "x"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── DeleteDream ──────────────────────────────────────────────────────────────

func TestDeleteDream(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/dreams/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.DeleteDream(context.Background(), "42"))
	assert.ErrorIs(t, a.DeleteDream(context.Background(), "43"), ErrNotFound)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteDream(context.Background(), "1")

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "418")
}

// ── request id ───────────────────────────────────────────────────────────────

func TestRequestIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get(utils.RequestIDHeader))
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPublicDreams(utils.WithRequestID(context.Background(), "req-1"))
	require.NoError(t, err)
}

// ── circuit breaker ──────────────────────────────────────────────────────────

func TestBreaker_OpensOnServerFaults(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapterWithConfig(t, config.ClientAdapter{
		HTTPAddress:        srv.URL,
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Hour,
	})

	for range 2 {
		_, err := a.GetPublicDreams(context.Background())
		assert.ErrorIs(t, err, ErrBadGateway)
	}

	_, err := a.GetPublicDreams(context.Background())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.True(t, IsNoResponse(err))
	assert.Equal(t, int32(2), hits.Load())
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapterWithConfig(t, config.ClientAdapter{
		HTTPAddress:        srv.URL,
		BreakerMaxFailures: 1,
		BreakerOpenTimeout: time.Hour,
	})

	for range 3 {
		_, err := a.LoginInfo(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
	assert.Equal(t, int32(3), hits.Load())
}
