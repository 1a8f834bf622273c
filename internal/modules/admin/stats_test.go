package admin

import (
	"context"
	"testing"
	"time"
)

// periodCounts keys stub data by period start day.
type stubCounters struct {
	bookings map[string]int
	revenue  map[string]int64
	users    map[string]int
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (s *stubCounters) CountCreatedBetween(_ context.Context, from, _ time.Time) (int, error) {
	return s.bookings[dayKey(from)], nil
}

func (s *stubCounters) RevenueBetween(_ context.Context, from, _ time.Time) (int64, error) {
	return s.revenue[dayKey(from)], nil
}

type stubUserCounter struct {
	counts map[string]int
}

func (s *stubUserCounter) CountCreatedBetween(_ context.Context, from, _ time.Time) (int, error) {
	return s.counts[dayKey(from)], nil
}

func TestDashboard_MonthOverMonth(t *testing.T) {
	bookings := &stubCounters{
		bookings: map[string]int{"2024-03-01": 30, "2024-02-01": 20},
		revenue:  map[string]int64{"2024-03-01": 500000, "2024-02-01": 1000000},
	}
	users := &stubUserCounter{counts: map[string]int{"2024-03-01": 5, "2024-02-01": 5}}

	svc := NewStatsService(bookings, users)
	svc.now = func() time.Time { return time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC) }

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard() error: %v", err)
	}

	if stats.Bookings.Value != 30 || stats.Bookings.ChangePct != 50 || stats.Bookings.ChangeType != ChangeIncrease {
		t.Errorf("bookings stat = %+v, want 30 / +50%% increase", stats.Bookings)
	}
	if stats.Users.Value != 5 || stats.Users.ChangePct != 0 || stats.Users.ChangeType != ChangeNeutral {
		t.Errorf("users stat = %+v, want 5 / 0%% neutral", stats.Users)
	}
	if stats.Revenue.Value != 500000 || stats.Revenue.ChangePct != -50 || stats.Revenue.ChangeType != ChangeDecrease {
		t.Errorf("revenue stat = %+v, want 500000 / -50%% decrease", stats.Revenue)
	}
}

func TestMakeStat_EdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		curr, prev int64
		wantPct    float64
		wantType   ChangeType
	}{
		{"both zero", 0, 0, 0, ChangeNeutral},
		{"from zero", 10, 0, 100, ChangeIncrease},
		{"to zero", 0, 10, -100, ChangeDecrease},
		{"fractional rounding", 1, 3, -66.7, ChangeDecrease},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := makeStat(tt.curr, tt.prev)
			if st.ChangePct != tt.wantPct || st.ChangeType != tt.wantType {
				t.Errorf("makeStat(%d, %d) = %+v, want %.1f%% %s",
					tt.curr, tt.prev, st, tt.wantPct, tt.wantType)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	got := monthStart(time.Date(2024, 3, 18, 15, 30, 0, 0, time.UTC))
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("monthStart() = %v, want %v", got, want)
	}
}
