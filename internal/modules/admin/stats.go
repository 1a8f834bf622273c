// README: Dashboard stats: month-over-month bookings, sign-ups, revenue.
package admin

import (
	"context"
	"math"
	"time"

	"jatriwheels/internal/types"
)

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// Stat is one dashboard card: the current month-to-date value and its
// percentage change against the full previous month.
type Stat struct {
	Value      int64      `json:"value"`
	ChangePct  float64    `json:"change_pct"`
	ChangeType ChangeType `json:"change_type"`
}

type DashboardStats struct {
	Bookings Stat `json:"bookings"`
	Users    Stat `json:"users"`
	Revenue  Stat `json:"revenue"` // paise
}

// bookingCounter and userCounter are the slices of the booking and
// user modules the stats reader needs.
type bookingCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type userCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

type StatsService struct {
	bookings bookingCounter
	users    userCounter
	now      func() time.Time
}

func NewStatsService(bookings bookingCounter, users userCounter) *StatsService {
	return &StatsService{bookings: bookings, users: users, now: time.Now}
}

// Dashboard compares the current month to date against the whole
// previous calendar month.
func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	now := s.now()
	currStart := monthStart(now)
	prevStart := monthStart(currStart.AddDate(0, 0, -1))

	var out DashboardStats

	currBookings, err := s.bookings.CountCreatedBetween(ctx, currStart, now)
	if err != nil {
		return out, err
	}
	prevBookings, err := s.bookings.CountCreatedBetween(ctx, prevStart, currStart)
	if err != nil {
		return out, err
	}
	out.Bookings = makeStat(int64(currBookings), int64(prevBookings))

	currUsers, err := s.users.CountCreatedBetween(ctx, currStart, now)
	if err != nil {
		return out, err
	}
	prevUsers, err := s.users.CountCreatedBetween(ctx, prevStart, currStart)
	if err != nil {
		return out, err
	}
	out.Users = makeStat(int64(currUsers), int64(prevUsers))

	currRevenue, err := s.bookings.RevenueBetween(ctx, currStart, now)
	if err != nil {
		return out, err
	}
	prevRevenue, err := s.bookings.RevenueBetween(ctx, prevStart, currStart)
	if err != nil {
		return out, err
	}
	out.Revenue = makeStat(currRevenue, prevRevenue)

	return out, nil
}

func makeStat(curr, prev int64) Stat {
	st := Stat{Value: curr}
	switch {
	case prev == 0 && curr == 0:
		st.ChangeType = ChangeNeutral
	case prev == 0:
		st.ChangePct = 100
		st.ChangeType = ChangeIncrease
	default:
		pct := (float64(curr) - float64(prev)) / float64(prev) * 100
		st.ChangePct = math.Round(pct*10) / 10
		switch {
		case st.ChangePct > 0:
			st.ChangeType = ChangeIncrease
		case st.ChangePct < 0:
			st.ChangeType = ChangeDecrease
		default:
			st.ChangeType = ChangeNeutral
		}
	}
	return st
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// RevenueMoney formats the revenue stat for responses.
func (d DashboardStats) RevenueMoney() types.Money {
	return types.INR(d.Revenue.Value)
}
