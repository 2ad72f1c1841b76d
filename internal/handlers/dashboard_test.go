package handlers

import (
	"math"
	"testing"
	"time"

	"waiterman-system/internal/database/models"
)

func TestSumRevenue(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{GrandTotal: 219.96, CreatedAt: day.Add(2 * time.Hour)},
		{GrandTotal: 50.00, CreatedAt: day.Add(-3 * time.Hour)},
		{GrandTotal: 10.04, CreatedAt: day},
	}

	total, today := sumRevenue(orders, day)
	if math.Abs(total-280.00) > 0.01 {
		t.Errorf("total = %v, want 280.00", total)
	}
	if math.Abs(today-230.00) > 0.01 {
		t.Errorf("today = %v, want 230.00", today)
	}
}

func TestSumRevenueSingleCompletedOrder(t *testing.T) {
	now := time.Now().UTC()
	orders := []models.Order{{GrandTotal: 219.96, CreatedAt: now}}

	total, today := sumRevenue(orders, startOfTodayUTC(now))
	if math.Abs(total-219.96) > 0.01 {
		t.Errorf("total = %v, want 219.96", total)
	}
	if math.Abs(today-219.96) > 0.01 {
		t.Errorf("today = %v, want 219.96", today)
	}
}

func TestRoundForDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{219.955999999, 219.96},
		{0, 0},
		{199.98 + 19.98, 219.96},
		{10.005, 10.01},
	}

	for _, tt := range tests {
		if got := roundForDisplay(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("roundForDisplay(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStartOfTodayUTC(t *testing.T) {
	in := time.Date(2025, 6, 10, 18, 42, 7, 12345, time.FixedZone("UTC+5", 5*3600))
	got := startOfTodayUTC(in)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("startOfTodayUTC = %v, want %v", got, want)
	}
}
