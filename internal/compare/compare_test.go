package compare

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name          string
		predicted     float64
		actual        float64
		wantDiff      float64
		wantPct       float64
		wantMagnitude float64
		wantDir       Direction
	}{
		{name: "above", predicted: 100, actual: 120, wantDiff: 20, wantPct: 20, wantMagnitude: 20, wantDir: Above},
		{name: "below", predicted: 100, actual: 80, wantDiff: -20, wantPct: -20, wantMagnitude: 20, wantDir: Below},
		{name: "zero prediction", predicted: 0, actual: 5, wantDiff: 5, wantPct: 0, wantMagnitude: 0, wantDir: Above},
		{name: "equal", predicted: 50, actual: 50, wantDiff: 0, wantPct: 0, wantMagnitude: 0, wantDir: Equal},
		{name: "both zero", predicted: 0, actual: 0, wantDiff: 0, wantPct: 0, wantMagnitude: 0, wantDir: Equal},
		{name: "half", predicted: 4, actual: 2, wantDiff: -2, wantPct: -50, wantMagnitude: 50, wantDir: Below},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.predicted, tt.actual)

			if got.Predicted != tt.predicted || got.Actual != tt.actual {
				t.Errorf("inputs not carried through: %+v", got)
			}
			if got.Difference != tt.wantDiff {
				t.Errorf("Difference = %v, want %v", got.Difference, tt.wantDiff)
			}
			if got.PercentageDifference != tt.wantPct {
				t.Errorf("PercentageDifference = %v, want %v", got.PercentageDifference, tt.wantPct)
			}
			if got.Direction != tt.wantDir {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.wantDir)
			}
			if got.Magnitude() != tt.wantMagnitude {
				t.Errorf("Magnitude() = %v, want %v", got.Magnitude(), tt.wantMagnitude)
			}
		})
	}
}

func TestCompareZeroPredictionIsFinite(t *testing.T) {
	for _, actual := range []float64{-3, 0, 5, 1e9} {
		r := Compare(0, actual)
		if math.IsNaN(r.PercentageDifference) || math.IsInf(r.PercentageDifference, 0) {
			t.Errorf("actual %v: percentage difference must be finite, got %v", actual, r.PercentageDifference)
		}
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		predicted float64
		actual    float64
		want      string
	}{
		{100, 120, "The actual energy consumption is above average by 20.00%."},
		{100, 80, "The actual energy consumption is below average by 20.00%."},
		{50, 50, "The actual energy consumption is equal to the average."},
		{0, 5, "The actual energy consumption is above average by 0.00%."},
		{3, 4, "The actual energy consumption is above average by 33.33%."},
	}

	for _, tt := range tests {
		if got := Compare(tt.predicted, tt.actual).Summary(); got != tt.want {
			t.Errorf("Compare(%v, %v).Summary() = %q, want %q", tt.predicted, tt.actual, got, tt.want)
		}
	}
}

func TestPredictedLine(t *testing.T) {
	got := Compare(1.23456, 0).PredictedLine()
	want := "Predicted Energy Consumption: 1.23 kWh"
	if got != want {
		t.Errorf("PredictedLine() = %q, want %q", got, want)
	}
}
