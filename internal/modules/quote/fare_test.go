package quote

import (
	"errors"
	"testing"

	"jatriwheels/internal/types"
)

func TestFare_BillableDistance(t *testing.T) {
	rate := types.INR(1500)

	q, err := Fare(42.5, OneWay, rate, 5, 20)
	if err != nil {
		t.Fatalf("Fare() error: %v", err)
	}
	if q.TotalKm != 42.5 {
		t.Errorf("one-way TotalKm = %f, want 42.5", q.TotalKm)
	}

	q, err = Fare(42.5, RoundTrip, rate, 5, 20)
	if err != nil {
		t.Fatalf("Fare() error: %v", err)
	}
	if q.TotalKm != 85.0 {
		t.Errorf("round-trip TotalKm = %f, want 85.0", q.TotalKm)
	}
}

func TestFare_ReferenceQuote(t *testing.T) {
	// 180.4 km at ₹15/km, the reference one-way journey.
	rate := types.INR(1500)

	tests := []struct {
		name        string
		tripType    TripType
		wantKm      float64
		wantCost    int64
		wantFee     int64
		wantTotal   int64
		wantAdvance int64
	}{
		{
			name:     "one way",
			tripType: OneWay,
			wantKm:   180.4,
			wantCost: 270600, wantFee: 13530, wantTotal: 284130, wantAdvance: 56826,
		},
		{
			name:     "round trip",
			tripType: RoundTrip,
			wantKm:   360.8,
			wantCost: 541200, wantFee: 27060, wantTotal: 568260, wantAdvance: 113652,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Fare(180.4, tt.tripType, rate, 5, 20)
			if err != nil {
				t.Fatalf("Fare() error: %v", err)
			}
			if q.TotalKm != tt.wantKm {
				t.Errorf("TotalKm = %f, want %f", q.TotalKm, tt.wantKm)
			}
			if q.TripCost.Amount != tt.wantCost {
				t.Errorf("TripCost = %d paise, want %d", q.TripCost.Amount, tt.wantCost)
			}
			if q.PlatformFee.Amount != tt.wantFee {
				t.Errorf("PlatformFee = %d paise, want %d", q.PlatformFee.Amount, tt.wantFee)
			}
			if q.TotalCost.Amount != tt.wantTotal {
				t.Errorf("TotalCost = %d paise, want %d", q.TotalCost.Amount, tt.wantTotal)
			}
			if q.AdvancePayment.Amount != tt.wantAdvance {
				t.Errorf("AdvancePayment = %d paise, want %d", q.AdvancePayment.Amount, tt.wantAdvance)
			}
		})
	}
}

func TestFare_FeeComposition(t *testing.T) {
	// advance == 20% of (trip cost + 5% fee) across a spread of inputs.
	cases := []struct {
		km   float64
		rate int64
	}{
		{10, 1000},
		{55.5, 1200},
		{250, 2000},
		{1, 1},
	}
	for _, c := range cases {
		q, err := Fare(c.km, OneWay, types.INR(c.rate), 5, 20)
		if err != nil {
			t.Fatalf("Fare(%f, %d) error: %v", c.km, c.rate, err)
		}
		wantTotal := q.TripCost.Add(q.PlatformFee)
		if q.TotalCost != wantTotal {
			t.Errorf("TotalCost = %v, want trip cost + fee = %v", q.TotalCost, wantTotal)
		}
		if got, want := q.AdvancePayment, q.TotalCost.Percent(20); got != want {
			t.Errorf("AdvancePayment = %v, want 20%% of total = %v", got, want)
		}
	}
}

func TestFare_ZeroDistance(t *testing.T) {
	for _, tripType := range []TripType{OneWay, RoundTrip} {
		q, err := Fare(0, tripType, types.INR(1500), 5, 20)
		if err != nil {
			t.Fatalf("Fare(0, %s) error: %v", tripType, err)
		}
		if q.TotalCost.Amount != 0 {
			t.Errorf("zero-distance %s TotalCost = %d, want 0", tripType, q.TotalCost.Amount)
		}
		if q.AdvancePayment.Amount != 0 {
			t.Errorf("zero-distance %s AdvancePayment = %d, want 0", tripType, q.AdvancePayment.Amount)
		}
	}
}

func TestFare_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		tripType TripType
		rate     int64
	}{
		{"negative distance", -1, OneWay, 1500},
		{"negative rate", 10, OneWay, -1},
		{"unknown trip type", 10, TripType("there_and_back"), 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fare(tt.km, tt.tripType, types.INR(tt.rate), 5, 20)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Fare() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
