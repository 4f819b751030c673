package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHoliday_Holiday(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024-01-01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2024-01-01","name":"元日","type":"national_holiday"}`))
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", time.Second)
	resp, err := c.GetHoliday(context.Background(), "2024-01-01")

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "元日", resp.Name)
	assert.Equal(t, "national_holiday", resp.Type)
}

func TestGetHoliday_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", time.Second)
	resp, err := c.GetHoliday(context.Background(), "2024-01-09")

	require.NoError(t, err, "404 is a regular not-a-holiday answer")
	assert.False(t, resp.Found)
}

func TestGetHoliday_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", time.Second)
	_, err := c.GetHoliday(context.Background(), "2024-01-01")

	require.Error(t, err)
	httpErr, ok := errors.Cause(err).(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "HTTP 500", httpErr.Error())
}

func TestGetHoliday_UnexpectedShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2024-01-01"}`))
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", time.Second)
	_, err := c.GetHoliday(context.Background(), "2024-01-01")

	assert.Equal(t, ErrUnexpectedResponse, errors.Cause(err))
}

func TestGetHoliday_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"name":"too late"}`))
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", 50*time.Millisecond)
	_, err := c.GetHoliday(context.Background(), "2024-01-01")

	assert.Error(t, err, "the per-call timeout is the only thing aborting a request")
}

func TestNewDefaultClient_SuppliesTrailingSlash(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		http.Error(w, "", http.StatusNotFound)
	}))
	defer srv.Close()

	// httptest URLs carry no trailing slash
	c := NewDefaultClient(srv.URL, time.Second)
	_, err := c.GetHoliday(context.Background(), "2024-01-01")

	require.NoError(t, err)
	assert.Equal(t, "/2024-01-01", gotPath)
}

func TestGetHoliday_EscapesKey(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		http.Error(w, "", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewDefaultClient(srv.URL+"/", time.Second)
	_, err := c.GetHoliday(context.Background(), "2024-01-01?x=y")

	require.NoError(t, err)
	assert.Equal(t, "/2024-01-01%3Fx=y", gotPath)
}
