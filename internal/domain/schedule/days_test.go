package schedule

import (
	"testing"
	"time"
)

func TestSelectableDaysSkipRestDay(t *testing.T) {
	// 2024-06-08 é sábado; o domingo seguinte não pode aparecer.
	now := time.Date(2024, 6, 8, 15, 30, 0, 0, time.UTC)

	days := SelectableDays(now, DefaultWindowDays)
	if len(days) != DefaultWindowDays {
		t.Fatalf("len = %d, want %d", len(days), DefaultWindowDays)
	}

	if !SameDay(days[0], now) {
		t.Fatalf("window should start today, got %v", days[0])
	}
	for _, d := range days {
		if d.Weekday() == RestDay {
			t.Fatalf("rest day leaked into the window: %v", d)
		}
	}
	for i := 1; i < len(days); i++ {
		if !days[i].After(days[i-1]) {
			t.Fatalf("days out of order at %d: %v, %v", i, days[i-1], days[i])
		}
	}
}

func TestStepDayClamping(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	days := SelectableDays(now, DefaultWindowDays)

	first := days[0]
	last := days[len(days)-1]

	if got := StepDay(days, first, -1); !SameDay(got, first) {
		t.Fatalf("step before first should clamp, got %v", got)
	}
	if got := StepDay(days, last, 1); !SameDay(got, last) {
		t.Fatalf("step after last should clamp, got %v", got)
	}
	if got := StepDay(days, first, 1); !SameDay(got, days[1]) {
		t.Fatalf("step forward = %v, want %v", got, days[1])
	}
	if got := StepDay(days, days[3], -1); !SameDay(got, days[2]) {
		t.Fatalf("step back = %v, want %v", got, days[2])
	}
}

func TestStepDayUnknownCurrent(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	days := SelectableDays(now, DefaultWindowDays)

	outside := now.AddDate(0, 2, 0)
	if got := StepDay(days, outside, 1); !SameDay(got, days[0]) {
		t.Fatalf("unknown current should land on the first day, got %v", got)
	}
}
