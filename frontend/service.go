// Package frontend exposes the date-context engine to the presentation
// surface, both in-process (listener contract) and over JSON-RPC.
package frontend

import (
	"context"

	"github.com/datejp/dateinfo/calendar"
	"github.com/datejp/dateinfo/configs"
	"github.com/datejp/dateinfo/resolver"
	"github.com/datejp/dateinfo/utils/log"
)

// DefaultZone is the fixed zone "today" is observed in when no zone is
// configured. It follows the configuration default so the two fallbacks
// cannot drift apart.
const DefaultZone = configs.DefaultTimezone

var weekdayLabels = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DateContext carries the synchronously computed facts of one date.
// The holiday determination arrives separately through a HolidayOutcome.
// BusinessDayPending is true while the holiday lookup for a non-weekend day
// is still outstanding; weekend days are conclusively not business days, so
// they never pend.
type DateContext struct {
	Date               string                `json:"date"`
	WeekdayIndex       int                   `json:"weekday_index"`
	Weekday            string                `json:"weekday"`
	Weekend            bool                  `json:"weekend"`
	BusinessDayPending bool                  `json:"business_day_pending"`
	DiffDays           int                   `json:"diff_days"`
	DiffLabel          string                `json:"diff_label"`
	YearWeek           calendar.WeekPosition `json:"year_week"`
	FiscalWeek         calendar.WeekPosition `json:"fiscal_week"`
}

// HolidayOutcome is delivered once the asynchronous holiday resolution of
// the current subject finishes. BusinessDay is meaningful only when the
// result status is not StatusError.
type HolidayOutcome struct {
	Date        string
	Result      resolver.Result
	BusinessDay bool
}

// Listener receives the holiday outcome of the current subject. Superseded
// outcomes are never delivered.
type Listener func(HolidayOutcome)

// DateService computes date contexts. It owns the coordinator that gates
// asynchronous holiday deliveries.
type DateService struct {
	resolver resolver.Resolver
	coord    *Coordinator
	zone     string
	listener Listener

	// todayFunc is replaced in tests.
	todayFunc func(zoneName string) (calendar.Date, error)
}

func NewDateService(r resolver.Resolver, zone string, listener Listener) *DateService {
	if zone == "" {
		zone = DefaultZone
	}
	return &DateService{
		resolver:  r,
		coord:     NewCoordinator(),
		zone:      zone,
		listener:  listener,
		todayFunc: calendar.Today,
	}
}

// ComputeDateContext parses the date key, computes all synchronous fields
// and starts the holiday lookup. The outcome reaches the listener only if
// no newer lookup has been started in the meantime; the underlying network
// call of a superseded lookup is not cancelled, its result is just dropped.
func (s *DateService) ComputeDateContext(ctx context.Context, dateKey string) (*DateContext, error) {
	dc, err := s.buildContext(dateKey)
	if err != nil {
		return nil, err
	}

	token := s.coord.Issue()
	go s.resolveAndDeliver(ctx, dc, token)

	return dc, nil
}

// buildContext computes the synchronous fields. They stay valid regardless
// of how the holiday resolution turns out.
func (s *DateService) buildContext(dateKey string) (*DateContext, error) {
	date, err := calendar.Parse(dateKey)
	if err != nil {
		return nil, err
	}
	today, err := s.todayFunc(s.zone)
	if err != nil {
		return nil, err
	}

	weekdayIndex := calendar.WeekdayIndex(date)
	weekend := calendar.IsWeekend(weekdayIndex)
	diff := calendar.DiffDays(today, date)

	return &DateContext{
		Date:               date.Key(),
		WeekdayIndex:       weekdayIndex,
		Weekday:            weekdayLabels[weekdayIndex],
		Weekend:            weekend,
		BusinessDayPending: !weekend,
		DiffDays:           diff,
		DiffLabel:          calendar.DiffLabel(diff),
		YearWeek:           calendar.WeekPositionIn(date, calendar.CalendarYear(date)),
		FiscalWeek:         calendar.WeekPositionIn(date, calendar.FiscalYear(date)),
	}, nil
}

func (s *DateService) resolveAndDeliver(ctx context.Context, dc *DateContext, token Token) {
	result := s.resolver.Resolve(ctx, dc.Date)

	if !s.coord.Current(token) {
		log.Debug("discarding a superseded holiday result for %s", dc.Date)
		return
	}
	if s.listener == nil {
		return
	}
	s.listener(HolidayOutcome{
		Date:        dc.Date,
		Result:      result,
		BusinessDay: !dc.Weekend && result.Status == resolver.StatusNotHoliday,
	})
}
