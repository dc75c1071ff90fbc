// Package remote talks to the spreadsheet-backed survey endpoint. The
// endpoint is an opaque HTTP collaborator: a GET returns the full entry
// collection, a form-encoded POST appends one entry. Calls are best-effort
// and never retried; failures are mapped onto the common error taxonomy at
// this boundary and do not propagate as anything else.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/armanazij/mygp-survey/internal/common"
	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/google/uuid"
)

const statusSuccess = "success"

// Client issues read and write requests against the survey endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      logging.Logger
	now      func() time.Time
}

func New(endpoint string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      log,
		now:      time.Now,
	}
}

// payload is the JSON envelope both endpoint operations respond with.
type payload struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// FetchAll retrieves the authoritative entry collection.
//
// The request carries a millisecond timestamp as a cache-busting query
// parameter so intermediate caches cannot serve stale content. Any failure
// is one of common.ErrTransport, common.ErrMalformedResponse or
// common.ErrServerReported.
func (c *Client) FetchAll(ctx context.Context) ([]models.Entry, error) {
	requestID := uuid.NewString()

	u := fmt.Sprintf("%s?action=getData&t=%d", c.endpoint, c.now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug(ctx, "fetching entries", "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", common.ErrTransport, resp.Status)
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		c.log.Debug(ctx, "response body is not valid json", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	if p.Status == "error" {
		return nil, fmt.Errorf("%w: %s", common.ErrServerReported, p.Message)
	}
	if p.Status != statusSuccess || len(p.Data) == 0 {
		return nil, fmt.Errorf("%w: unexpected payload shape", common.ErrMalformedResponse)
	}

	var entries []models.Entry
	if err := json.Unmarshal(p.Data, &entries); err != nil {
		return nil, fmt.Errorf("%w: data is not an entry array: %v", common.ErrMalformedResponse, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: data is not an entry array", common.ErrMalformedResponse)
	}

	c.log.Debug(ctx, "entries fetched", "request_id", requestID, "count", len(entries))
	return entries, nil
}

// Submit appends one entry remotely. Success requires both a 2xx response
// and a success status in the body. Failures are returned but never retried:
// the caller has already cached the entry locally.
func (c *Client) Submit(ctx context.Context, e models.Entry) error {
	requestID := uuid.NewString()

	form := url.Values{}
	form.Set("id", strconv.FormatInt(e.ID, 10))
	form.Set("name", e.Name)
	form.Set("phoneNumber", e.PhoneNumber)
	form.Set("profession", e.Profession)
	form.Set("useMyGP", e.UseMyGP)
	form.Set("reason", e.Reason)
	form.Set("timestamp", e.Timestamp)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.log.Debug(ctx, "submitting entry", "request_id", requestID, "entry_id", e.ID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", common.ErrTransport, resp.Status)
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	if p.Status != statusSuccess {
		return fmt.Errorf("%w: %s", common.ErrServerReported, p.Message)
	}

	return nil
}
