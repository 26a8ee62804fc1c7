// Package compare measures how far an actual consumption reading is from the
// model's prediction.
package compare

import "fmt"

// Direction tells on which side of the prediction the actual reading falls.
type Direction string

const (
	Above Direction = "ABOVE"
	Below Direction = "BELOW"
	Equal Direction = "EQUAL"
)

// Result is the comparison of one actual reading against one prediction.
type Result struct {
	Predicted            float64   `json:"predicted"`
	Actual               float64   `json:"actual"`
	Difference           float64   `json:"difference"`
	PercentageDifference float64   `json:"percentage_difference"`
	Direction            Direction `json:"direction"`
}

// Compare computes actual - predicted and its percentage of predicted.
// A zero prediction yields a zero percentage instead of a division by zero.
func Compare(predicted, actual float64) Result {
	diff := actual - predicted

	pct := 0.0
	if predicted != 0 {
		pct = diff / predicted * 100
	}

	dir := Equal
	switch {
	case diff > 0:
		dir = Above
	case diff < 0:
		dir = Below
	}

	return Result{
		Predicted:            predicted,
		Actual:               actual,
		Difference:           diff,
		PercentageDifference: pct,
		Direction:            dir,
	}
}

// Magnitude is the percentage reported next to the direction label.
func (r Result) Magnitude() float64 {
	switch r.Direction {
	case Above:
		return r.PercentageDifference
	case Below:
		return -r.PercentageDifference
	default:
		return 0
	}
}

// Summary renders the deviation sentence shown to the user.
func (r Result) Summary() string {
	switch r.Direction {
	case Above:
		return fmt.Sprintf("The actual energy consumption is above average by %.2f%%.", r.Magnitude())
	case Below:
		return fmt.Sprintf("The actual energy consumption is below average by %.2f%%.", r.Magnitude())
	default:
		return "The actual energy consumption is equal to the average."
	}
}

// PredictedLine renders the raw prediction in kWh.
func (r Result) PredictedLine() string {
	return fmt.Sprintf("Predicted Energy Consumption: %.2f kWh", r.Predicted)
}
