// Package features turns a calendar hour into the feature vector the
// consumption model was trained on.
package features

import "math"

// Size is the number of features in a Vector.
const Size = 10

// Positions of each feature inside a Vector.
const (
	Hour = iota
	Year
	Day
	Month
	HourSin
	HourCos
	DaySin
	DayCos
	MonthSin
	MonthCos
)

// Names are the training column names, in Vector order. The model artifact
// must declare exactly this list.
var Names = [Size]string{
	"Hour", "Year", "Day", "Month",
	"HourSin", "HourCos", "Day_Sin", "Day_Cos",
	"MonthSin", "MonthCos",
}

// Vector is the fixed-order model input.
type Vector [Size]float64

// Encode maps a timestamp to its feature vector. It does no validation.
//
// The day pair uses the day of the month with a 7 period. Existing models
// were trained on that encoding, so it must not be changed to a weekday.
func Encode(hour, day, month, year int) Vector {
	h, d, m := float64(hour), float64(day), float64(month)
	return Vector{
		Hour:     h,
		Year:     float64(year),
		Day:      d,
		Month:    m,
		HourSin:  math.Sin(2 * math.Pi * h / 24),
		HourCos:  math.Cos(2 * math.Pi * h / 24),
		DaySin:   math.Sin(2 * math.Pi * d / 7),
		DayCos:   math.Cos(2 * math.Pi * d / 7),
		MonthSin: math.Sin(2 * math.Pi * m / 12),
		MonthCos: math.Cos(2 * math.Pi * m / 12),
	}
}

// Map returns the vector keyed by feature name.
func (v Vector) Map() map[string]float64 {
	out := make(map[string]float64, Size)
	for i, name := range Names {
		out[name] = v[i]
	}
	return out
}
