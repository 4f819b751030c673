package internal

import (
	"context"

	"github.com/datejp/dateinfo/api"
)

// ----------------

// MockAPIClient returns a static holiday response and counts calls so
// tests can assert whether the network was consulted.
type MockAPIClient struct {
	Response  api.HolidayResponse
	Err       error
	CallCount int
}

func (m *MockAPIClient) GetHoliday(_ context.Context, _ string) (api.HolidayResponse, error) {
	m.CallCount++
	return m.Response, m.Err
}

// ----------------

// MockStore keeps the cache blob in memory and can simulate load/save
// failures.
type MockStore struct {
	Blob      []byte
	LoadErr   error
	SaveErr   error
	SaveCount int
}

func (m *MockStore) Load() ([]byte, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Blob, nil
}

func (m *MockStore) Save(blob []byte) error {
	m.SaveCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Blob = blob
	return nil
}
