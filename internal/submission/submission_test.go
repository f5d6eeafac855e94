package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/submission"
)

func sample() domain.Submission {
	return domain.Submission{
		SessionID: uuid.MustParse("6f1f8f4e-2d7a-4c3e-9a55-0b8f2c1d9e10"),
		Barcode:   "7891234567895",
		Recipient: domain.RecipientData{
			Name:    "Maria Santos Oliveira",
			Address: "Avenida Brasil, 456 - Bloco B - Copacabana",
			Unit:    "Bloco B - Produção",
		},
		CompletedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHTTPSubmitter_OK(t *testing.T) {
	var (
		gotKey  string
		gotBody domain.Submission
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := submission.NewHTTPSubmitter(srv.URL, time.Second, submission.WithAPIKey("secret"))

	err := s.Submit(context.Background(), sample())

	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, sample(), gotBody)
}

func TestHTTPSubmitter_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := submission.NewHTTPSubmitter(srv.URL, time.Second)

	err := s.Submit(context.Background(), sample())

	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.ErrorContains(t, err, "503")
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestHTTPSubmitter_TransportError(t *testing.T) {
	s := submission.NewHTTPSubmitter("http://submission.invalid", time.Second,
		submission.WithClient(doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})),
	)

	err := s.Submit(context.Background(), sample())

	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.ErrorContains(t, err, "connection refused")
}

func TestHTTPSubmitter_NoAPIKeyHeaderWhenUnset(t *testing.T) {
	var hadKey bool
	s := submission.NewHTTPSubmitter("http://submission.local", time.Second,
		submission.WithClient(doerFunc(func(r *http.Request) (*http.Response, error) {
			_, hadKey = r.Header["X-Api-Key"]
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		})),
	)

	require.NoError(t, s.Submit(context.Background(), sample()))
	assert.False(t, hadKey)
}

func TestLogSubmitter(t *testing.T) {
	var buf bytes.Buffer
	s := submission.NewLogSubmitter(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, s.Submit(context.Background(), sample()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registration submitted", entry["msg"])
	assert.Equal(t, "7891234567895", entry["barcode"])
	assert.Equal(t, "Bloco B - Produção", entry["unit"])
}
