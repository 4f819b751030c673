// Package api implements the HTTP client for the public-holiday authority.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/datejp/dateinfo/utils/log"
)

const (
	// DefaultBaseURL is the endpoint of the holiday authority.
	// GET <base><YYYY-MM-DD> answers with the holiday for that day,
	// or with 404 when the day is not a holiday.
	DefaultBaseURL = "https://api.national-holidays.jp/"

	// DefaultTimeout bounds one authority round trip. The timeout is the
	// only thing that aborts an in-flight request.
	DefaultTimeout = 4500 * time.Millisecond
)

// ErrUnexpectedResponse is returned when a success payload does not carry a
// holiday name in any of the known shapes.
var ErrUnexpectedResponse = errors.New("unexpected response")

// HTTPError is returned when the authority answers with a non-success
// status other than 404.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// HolidayResponse is the classified answer of the holiday authority.
// Found is false when the authority does not know the day as a holiday.
type HolidayResponse struct {
	Found bool
	Name  string
	Type  string
}

// Client calls the holiday authority and returns the classified response.
type Client interface {
	GetHoliday(ctx context.Context, key string) (HolidayResponse, error)
}

// DefaultClient is the holiday authority client with a timeout-bounded
// http client.
type DefaultClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewDefaultClient initializes the authority client. Empty or zero
// arguments fall back to the package defaults. The date key is appended
// to the base URL, so a missing trailing slash is supplied here.
func NewDefaultClient(baseURL string, timeout time.Duration) *DefaultClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &DefaultClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetHoliday issues GET <base><escaped key> and classifies the outcome:
// 404 means "not a holiday", a success body is decoded for a holiday name,
// and any other status yields an HTTPError.
func (c *DefaultClient) GetHoliday(ctx context.Context, key string) (HolidayResponse, error) {
	apiURL := c.baseURL + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return HolidayResponse{}, errors.Wrap(err, "failed to create an http request")
	}

	log.Debug("[holiday API] request url=%v", apiURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HolidayResponse{}, errors.Wrapf(err, "failed to call the holiday API. url=%v", apiURL)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warn("failed to close the holiday API response body: %v", cerr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return HolidayResponse{Found: false}, nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return HolidayResponse{}, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return HolidayResponse{}, errors.Wrap(err, "failed to read the holiday API response body")
	}

	name, typ, err := decodeHoliday(body)
	if err != nil {
		log.Debug("[holiday API] undecodable payload for %s: %v", key, err)
		return HolidayResponse{}, ErrUnexpectedResponse
	}
	return HolidayResponse{Found: true, Name: name, Type: typ}, nil
}
