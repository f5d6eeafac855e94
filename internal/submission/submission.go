// Package submission hands completed registrations to the external
// submission service.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/parcel-intake/internal/domain"
)

// Submitter delivers a completed registration.
type Submitter interface {
	Submit(ctx context.Context, s domain.Submission) error
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSubmitter POSTs the submission as JSON to a fixed URL.
type HTTPSubmitter struct {
	url    string
	apiKey string
	client HTTPDoer
	tracer trace.Tracer
}

// Option configures an HTTPSubmitter.
type Option func(*HTTPSubmitter)

// WithClient replaces the default HTTP client.
func WithClient(c HTTPDoer) Option {
	return func(s *HTTPSubmitter) {
		s.client = c
	}
}

// WithAPIKey sets the value sent in the X-API-Key header.
func WithAPIKey(key string) Option {
	return func(s *HTTPSubmitter) {
		s.apiKey = key
	}
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *HTTPSubmitter) {
		s.tracer = t
	}
}

// NewHTTPSubmitter builds a submitter for url. The default client times out
// after timeout.
func NewHTTPSubmitter(url string, timeout time.Duration, opts ...Option) *HTTPSubmitter {
	s := &HTTPSubmitter{url: url}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: timeout}
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("parcel-intake/submission")
	}
	return s
}

// Submit sends sub. Any transport error or non-2xx response is reported as
// domain.ErrSubmissionFailed.
func (s *HTTPSubmitter) Submit(ctx context.Context, sub domain.Submission) (err error) {
	ctx, span := s.tracer.Start(ctx, "submission.submit", trace.WithAttributes(
		attribute.String("session.id", sub.SessionID.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("submission.HTTPSubmitter.Submit: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("submission.HTTPSubmitter.Submit: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: upstream returned %d", domain.ErrSubmissionFailed, resp.StatusCode)
	}
	return nil
}

// LogSubmitter only logs the submission. It is used when no submission URL
// is configured.
type LogSubmitter struct {
	logger *slog.Logger
}

// NewLogSubmitter returns a LogSubmitter writing to logger, or to
// slog.Default() when logger is nil.
func NewLogSubmitter(logger *slog.Logger) *LogSubmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSubmitter{logger: logger}
}

func (s *LogSubmitter) Submit(ctx context.Context, sub domain.Submission) error {
	s.logger.InfoContext(ctx, "registration submitted",
		"session_id", sub.SessionID,
		"barcode", sub.Barcode,
		"recipient_name", sub.Recipient.Name,
		"unit", sub.Recipient.Unit,
	)
	return nil
}

var (
	_ Submitter = (*HTTPSubmitter)(nil)
	_ Submitter = (*LogSubmitter)(nil)
)
