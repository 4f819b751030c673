// Package resolver decides whether a civil date is a public holiday,
// consulting the persisted cache before the holiday authority.
package resolver

import (
	"context"

	"github.com/pkg/errors"

	"github.com/datejp/dateinfo/api"
	"github.com/datejp/dateinfo/cache"
	"github.com/datejp/dateinfo/utils/log"
)

// Status classifies one resolution outcome.
type Status int

const (
	StatusHoliday Status = iota
	StatusNotHoliday
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusHoliday:
		return "holiday"
	case StatusNotHoliday:
		return "not_holiday"
	default:
		return "error"
	}
}

// Messages attached to StatusError results.
const (
	MessageNetwork            = "network"
	MessageUnexpectedResponse = "unexpected response"
)

// Result is the outcome of one holiday resolution. Name and Type are set
// for holidays; Message is set for errors. Error results are transient and
// never persisted.
type Result struct {
	Status  Status
	Name    string
	Type    string
	Message string
}

// Resolver resolves the holiday status of a date key.
type Resolver interface {
	Resolve(ctx context.Context, key string) Result
}

// HolidayResolver combines the TTL cache with a bounded-timeout authority
// lookup. A fresh cache hit short-circuits, so no network call is made.
type HolidayResolver struct {
	apiClient api.Client
	cache     *cache.HolidayCache
}

func New(apiClient api.Client, holidayCache *cache.HolidayCache) *HolidayResolver {
	return &HolidayResolver{apiClient: apiClient, cache: holidayCache}
}

// Resolve runs the CacheCheck -> NetworkLookup state machine for key and
// classifies the outcome. Holiday / NotHoliday results are persisted,
// errors are not.
func (r *HolidayResolver) Resolve(ctx context.Context, key string) Result {
	if entry, ok := r.cache.Get(key); ok {
		log.Debug("holiday cache hit for %s", key)
		return fromEntry(entry)
	}

	resp, err := r.apiClient.GetHoliday(ctx, key)
	if err != nil {
		return classify(err)
	}

	var result Result
	if resp.Found {
		result = Result{Status: StatusHoliday, Name: resp.Name, Type: resp.Type}
	} else {
		result = Result{Status: StatusNotHoliday}
	}
	r.cache.Put(key, toEntry(result))
	return result
}

// classify maps a lookup failure to a transient error result. Timeouts and
// transport faults collapse into a single "network" message.
func classify(err error) Result {
	switch cause := errors.Cause(err).(type) {
	case *api.HTTPError:
		return Result{Status: StatusError, Message: cause.Error()}
	default:
		if errors.Cause(err) == api.ErrUnexpectedResponse {
			return Result{Status: StatusError, Message: MessageUnexpectedResponse}
		}
		return Result{Status: StatusError, Message: MessageNetwork}
	}
}

func toEntry(result Result) cache.Entry {
	status := cache.StatusNotHoliday
	if result.Status == StatusHoliday {
		status = cache.StatusHoliday
	}
	return cache.Entry{Status: status, Name: result.Name, Type: result.Type}
}

func fromEntry(entry cache.Entry) Result {
	if entry.Status == cache.StatusHoliday {
		return Result{Status: StatusHoliday, Name: entry.Name, Type: entry.Type}
	}
	return Result{Status: StatusNotHoliday}
}
