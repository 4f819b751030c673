package resolver_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datejp/dateinfo/api"
	"github.com/datejp/dateinfo/cache"
	"github.com/datejp/dateinfo/internal"
	"github.com/datejp/dateinfo/resolver"
)

func newCache() *cache.HolidayCache {
	return cache.New(&internal.MockStore{}, cache.DefaultTTL)
}

func TestResolve_FreshCacheHitSkipsNetwork(t *testing.T) {
	t.Parallel()

	holidayCache := newCache()
	holidayCache.Put("2024-01-01", cache.Entry{
		Status: cache.StatusHoliday, Name: "元日", Type: "national_holiday",
	})
	apiClient := &internal.MockAPIClient{}
	r := resolver.New(apiClient, holidayCache)

	result := r.Resolve(context.Background(), "2024-01-01")

	assert.Equal(t, resolver.StatusHoliday, result.Status)
	assert.Equal(t, "元日", result.Name)
	assert.Equal(t, 0, apiClient.CallCount, "a fresh cache hit must not touch the network")
}

func TestResolve_HolidayIsPersisted(t *testing.T) {
	t.Parallel()

	apiClient := &internal.MockAPIClient{
		Response: api.HolidayResponse{Found: true, Name: "海の日", Type: "national_holiday"},
	}
	r := resolver.New(apiClient, newCache())

	result := r.Resolve(context.Background(), "2024-07-15")
	require.Equal(t, resolver.StatusHoliday, result.Status)
	assert.Equal(t, "海の日", result.Name)
	assert.Equal(t, "national_holiday", result.Type)

	// the second resolution is served from the cache
	result = r.Resolve(context.Background(), "2024-07-15")
	assert.Equal(t, resolver.StatusHoliday, result.Status)
	assert.Equal(t, 1, apiClient.CallCount)
}

func TestResolve_NotFoundMeansNotHolidayAndIsPersisted(t *testing.T) {
	t.Parallel()

	apiClient := &internal.MockAPIClient{Response: api.HolidayResponse{Found: false}}
	r := resolver.New(apiClient, newCache())

	result := r.Resolve(context.Background(), "2024-01-09")
	require.Equal(t, resolver.StatusNotHoliday, result.Status)

	result = r.Resolve(context.Background(), "2024-01-09")
	assert.Equal(t, resolver.StatusNotHoliday, result.Status)
	assert.Equal(t, 1, apiClient.CallCount)
}

func TestResolve_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err         error
		wantMessage string
	}{
		"http status": {
			err:         &api.HTTPError{StatusCode: http.StatusInternalServerError},
			wantMessage: "HTTP 500",
		},
		"wrapped http status": {
			err:         errors.Wrap(&api.HTTPError{StatusCode: http.StatusBadGateway}, "lookup failed"),
			wantMessage: "HTTP 502",
		},
		"undecodable payload": {
			err:         api.ErrUnexpectedResponse,
			wantMessage: "unexpected response",
		},
		"transport fault": {
			err:         errors.Wrap(errors.New("dial tcp: connection refused"), "failed to call the holiday API"),
			wantMessage: "network",
		},
	}
	for name, tt := range tests {
		tt := tt

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			apiClient := &internal.MockAPIClient{Err: tt.err}
			r := resolver.New(apiClient, newCache())

			result := r.Resolve(context.Background(), "2024-01-01")
			assert.Equal(t, resolver.StatusError, result.Status)
			assert.Equal(t, tt.wantMessage, result.Message)

			// transient errors are never persisted
			r.Resolve(context.Background(), "2024-01-01")
			assert.Equal(t, 2, apiClient.CallCount)
		})
	}
}
