package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusNotFound, "User not found")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"email":"a@b.c"}`, false},
		{"unknown fields ignored", `{"email":"a@b.c","extra":1}`, false},
		{"empty", ``, true},
		{"not json", `email=a`, true},
		{"trailing data", `{"email":"a"}{"email":"b"}`, true},
		{"wrong type", `{"email":5}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := httpx.DecodeJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantErr {
				require.ErrorIs(t, err, httpx.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "a@b.c", dst.Email)
		})
	}
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/", http.NoBody)
	var dst map[string]any
	err := httpx.DecodeJSON(httptest.NewRecorder(), req, &dst)
	require.ErrorIs(t, err, httpx.ErrEmptyBody)
	require.ErrorIs(t, err, httpx.ErrBadRequest)
}

func TestMetricsInstrument(t *testing.T) {
	m := httpx.NewMetrics("passport")
	h := m.Instrument("/api/auth/user")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(),
		`passport_http_requests_total{method="GET",route="/api/auth/user",status="418"} 1`)
	require.Contains(t, rec.Body.String(), "passport_http_request_duration_seconds")
}
