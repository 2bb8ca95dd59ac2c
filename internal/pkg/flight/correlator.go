package flight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrScheduleNotFound is reported when the provider has no timetable for a route.
var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleFetcher interface {
	FetchSchedule(ctx context.Context, origin, destination string, year, month int) (*Schedule, error)
}

// FetchResult is the outcome of one route's timetable lookup.
// Exactly one of Schedule and Err is set.
type FetchResult struct {
	Route    *Route
	Schedule *Schedule
	Err      error
}

func (r FetchResult) OK() bool {
	return r.Err == nil
}

// Correlator attaches timetables to routes.
type Correlator struct {
	fetcher     ScheduleFetcher
	timeout     time.Duration
	concurrency int
}

// NewCorrelator creates a correlator issuing at most concurrency fetches at
// once, each bounded by timeout. A non-positive concurrency means sequential
// fetching and a non-positive timeout means no per-fetch deadline.
func NewCorrelator(fetcher ScheduleFetcher, timeout time.Duration, concurrency int) *Correlator {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Correlator{
		fetcher:     fetcher,
		timeout:     timeout,
		concurrency: concurrency,
	}
}

// Correlate fetches the timetable of every route for the given year and month
// and attaches it once all fetches are done. A failed fetch leaves the route
// without schedule and never fails the whole call.
func (c *Correlator) Correlate(ctx context.Context, year, month int, routes []*Route) []FetchResult {
	results := make([]FetchResult, len(routes))

	var group errgroup.Group
	group.SetLimit(c.concurrency)

	for i, route := range routes {
		group.Go(func() error {
			results[i] = c.fetch(ctx, route, year, month)
			return nil
		})
	}

	_ = group.Wait()

	for _, res := range results {
		if !res.OK() {
			slog.WarnContext(ctx, "could not retrieve schedule",
				slog.String("from", res.Route.Origin),
				slog.String("to", res.Route.Destination),
				slog.Int("year", year),
				slog.Int("month", month),
				slog.String("error", res.Err.Error()))
			continue
		}

		res.Route.Schedule = res.Schedule
	}

	return results
}

// fetch runs on its own goroutine, a panicking fetcher becomes a failed result.
func (c *Correlator) fetch(ctx context.Context, route *Route, year, month int) (res FetchResult) {
	defer func() {
		if rvr := recover(); rvr != nil {
			res = FetchResult{Route: route, Err: fmt.Errorf("fetch schedule: panic: %v", rvr)}
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	schedule, err := c.fetcher.FetchSchedule(ctx, route.Origin, route.Destination, year, month)
	if err != nil {
		return FetchResult{Route: route, Err: fmt.Errorf("fetch schedule: %w", err)}
	}

	if schedule == nil {
		return FetchResult{Route: route, Err: ErrScheduleNotFound}
	}

	if schedule.Year == 0 {
		schedule.Year = year
	}

	return FetchResult{Route: route, Schedule: schedule}
}
