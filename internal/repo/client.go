// Package repo contains all access to the external car-rental API.
// Each resource has its own file with an interface and an HTTP implementation.
// No validation of user input lives here, only transport, status mapping,
// contract checks and JSON mapping.
package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/pkordes/car-rental/web/internal/domain"
	"github.com/pkordes/car-rental/web/spec"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 1 << 20

// Client is the shared transport for every repo. It owns the base endpoint,
// the *http.Client and the compiled payload schemas.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger

	carSchema    *gojsonschema.Schema
	resultSchema *gojsonschema.Schema
}

// NewClient builds a Client for the API rooted at baseURL.
// A nil hc means http.DefaultClient. No timeout is added: cancellation comes
// from the caller's context.
func NewClient(baseURL string, hc *http.Client, log *slog.Logger) (*Client, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	carSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(spec.CarSchema))
	if err != nil {
		return nil, fmt.Errorf("repo.NewClient: car schema: %w", err)
	}
	resultSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(spec.BookingResultSchema))
	if err != nil {
		return nil, fmt.Errorf("repo.NewClient: booking result schema: %w", err)
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         hc,
		log:          log,
		carSchema:    carSchema,
		resultSchema: resultSchema,
	}, nil
}

// call describes one upstream request.
type call struct {
	op       string // "repo.CarRepo.GetByID", used in errors and logs
	method   string
	path     string
	query    url.Values
	body     any
	fallback string // user-facing message when nothing better is available

	// bodyMessage makes a non-2xx response surface the "message" field of
	// its JSON body instead of the fallback.
	bodyMessage bool
}

// do performs c and returns the raw body of a 2xx response.
// Every failure comes back as a *domain.APIError.
func (cl *Client) do(ctx context.Context, c call) ([]byte, error) {
	target := cl.baseURL + c.path
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var reqBody io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return nil, &domain.APIError{Op: c.op, Message: c.fallback, Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, reqBody)
	if err != nil {
		return nil, &domain.APIError{Op: c.op, Message: c.fallback, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := chimiddleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(chimiddleware.RequestIDHeader, requestID)

	resp, err := cl.http.Do(req)
	if err != nil {
		cl.log.WarnContext(ctx, "upstream unreachable", "op", c.op, "request_id", requestID, "error", err)
		return nil, &domain.APIError{Op: c.op, Message: c.fallback, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.APIError{Op: c.op, Status: resp.StatusCode, Message: c.fallback, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := c.fallback
		if c.bodyMessage {
			if m := messageFrom(body); m != "" {
				msg = m
			}
		}
		cl.log.WarnContext(ctx, "upstream rejected request",
			"op", c.op,
			"status", resp.StatusCode,
			"message", msg,
			"request_id", requestID,
		)
		return nil, &domain.APIError{Op: c.op, Status: resp.StatusCode, Message: msg}
	}

	return body, nil
}

// messageFrom extracts the "message" field of a JSON error body.
// Returns "" when the body is not JSON or carries no message.
func messageFrom(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return strings.TrimSpace(e.Message)
}

// conform checks doc against schema and reports the violations as one error.
func conform(schema *gojsonschema.Schema, doc []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("payload violates contract: %s", strings.Join(problems, "; "))
}

// contractError wraps a malformed 2xx payload.
func (cl *Client) contractError(ctx context.Context, c call, err error) error {
	cl.log.WarnContext(ctx, "upstream payload rejected", "op", c.op, "error", err)
	return &domain.APIError{Op: c.op, Status: http.StatusOK, Message: c.fallback, Err: err}
}
