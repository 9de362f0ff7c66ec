// Package fingrid provides a client for the Fingrid Open Data API.
// It builds the outbound request from validated inputs, issues exactly one
// GET per invocation, and classifies the HTTP response into a parsed
// dataset or one of the application's fault kinds. No retry, no backoff:
// a single failure is final and surfaces to the caller immediately.
package fingrid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fingrid-tools/gridview/internal/faults"
	"github.com/fingrid-tools/gridview/internal/logger"
	"github.com/fingrid-tools/gridview/internal/models"
	"github.com/fingrid-tools/gridview/internal/processor"
)

// wireTimeLayout is the timestamp form the API expects in query parameters.
const wireTimeLayout = "2006-01-02T15:04:05Z"

// maxErrorSnippet bounds how much of an error response body is kept for
// fault messages.
const maxErrorSnippet = 200

// Client provides access to the Fingrid Open Data API
type Client struct {
	apiBaseURL string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new Fingrid client. The API key is injected by the
// caller; the client never reads the environment.
func NewClient(apiBaseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchSeries retrieves the observations for one variable over one time
// range and returns them as a sorted dataset. Exactly one outbound request
// is made per invocation.
func (c *Client) FetchSeries(ctx context.Context, variableID int, tr models.TimeRange) (*models.DataSet, error) {
	// A missing key is a local, statically detectable condition; fail
	// before any network I/O so the caller can distinguish it from an
	// API-rejected key.
	if c.apiKey == "" {
		return nil, faults.Authentication(
			"missing API key: set the FINGRID_API_KEY environment variable")
	}
	if err := tr.Validate(); err != nil {
		return nil, faults.ValidationWrap(err, "invalid time range")
	}

	reqURL := fmt.Sprintf("%s/%d/events", c.apiBaseURL, variableID)
	params := url.Values{}
	params.Set("start_time", tr.Start.UTC().Format(wireTimeLayout))
	params.Set("end_time", tr.End.UTC().Format(wireTimeLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, faults.NetworkWrap(err, "failed to build request for variable %d", variableID)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	logger.Debug("Fetching variable %d events (%s .. %s)",
		variableID, params.Get("start_time"), params.Get("end_time"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.timeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp, variableID)
	}

	var raw []models.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, faults.DataProcessingWrap(err, "failed to decode response for variable %d", variableID)
	}

	ds, err := processor.ToDataSet(variableID, tr, raw)
	if err != nil {
		return nil, err
	}

	logger.Info("Fetched %d records for variable %d (query %s)",
		len(ds.Records), variableID, ds.QueryID)
	return ds, nil
}

// classifyTransportError maps transport-level failures to network faults so
// the HTTP client's native error types never escape this package.
func classifyTransportError(err error, timeout time.Duration) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return faults.NetworkWrap(err, "request timed out after %v", timeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return faults.NetworkWrap(err, "request timed out after %v", timeout)
	}
	return faults.NetworkWrap(err, "failed to connect to Fingrid API")
}

// classifyStatus maps non-2xx responses to faults by status family.
// 404 is treated as a user-input problem: the variable ID space is
// externally defined and cannot be validated upfront.
func classifyStatus(resp *http.Response, variableID int) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return faults.Authentication("invalid or unauthorized API key (HTTP %d)", resp.StatusCode)
	case http.StatusNotFound:
		return faults.Validation("variable id %d not found", variableID)
	default:
		return faults.Network("unexpected HTTP status %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}
}

// readSnippet reads a bounded prefix of an error response body.
func readSnippet(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorSnippet))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}
