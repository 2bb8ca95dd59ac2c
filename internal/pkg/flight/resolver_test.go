//go:build unit

package flight

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestResolveTime(t *testing.T) {
	resolveRequest := func(year, month, day int, clock string, want time.Time, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ResolveTime(year, month, day, clock, time.UTC)
			if (err != nil) != wantErr {
				t.Fatalf("ResolveTime() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr {
				if !errors.Is(err, ErrMalformedSchedule) {
					t.Fatalf("expected ErrMalformedSchedule, got %v", err)
				}
				return
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ResolveTime() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("morning", resolveRequest(2024, 3, 15, "08:00",
		time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), false))
	t.Run("minutes", resolveRequest(2024, 3, 15, "21:25",
		time.Date(2024, 3, 15, 21, 25, 0, 0, time.UTC), false))
	t.Run("midnight", resolveRequest(2024, 12, 31, "00:00",
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false))
	t.Run("leap_day", resolveRequest(2024, 2, 29, "06:05",
		time.Date(2024, 2, 29, 6, 5, 0, 0, time.UTC), false))
	t.Run("empty_clock", resolveRequest(2024, 3, 15, "", time.Time{}, true))
	t.Run("not_a_number", resolveRequest(2024, 3, 15, "ab:cd", time.Time{}, true))
	t.Run("hour_out_of_range", resolveRequest(2024, 3, 15, "25:00", time.Time{}, true))
	t.Run("minute_out_of_range", resolveRequest(2024, 3, 15, "10:75", time.Time{}, true))
	t.Run("day_out_of_month", resolveRequest(2024, 4, 31, "10:00", time.Time{}, true))
	t.Run("no_leap_day", resolveRequest(2023, 2, 29, "10:00", time.Time{}, true))
	t.Run("month_out_of_range", resolveRequest(2024, 13, 1, "10:00", time.Time{}, true))
}

func TestResolveTime_Location(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	got, err := ResolveTime(2024, 3, 15, "08:00", loc)
	if err != nil {
		t.Fatalf("ResolveTime() error = %v", err)
	}

	if got.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, got.Location())
	}

	if got.UTC().Hour() != 7 {
		t.Fatalf("expected 07 UTC, got %v", got.UTC())
	}
}
