package http

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/compare"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

// predictRequest is bound from both the HTML form and the JSON API. Hour and
// Actual are pointers so that a legitimate zero passes the required check.
type predictRequest struct {
	Year   int      `json:"year" form:"year" binding:"required"`
	Month  int      `json:"month" form:"month" binding:"required,min=1,max=12"`
	Day    int      `json:"day" form:"day" binding:"required,min=1,max=31"`
	Hour   *int     `json:"hour" form:"hour" binding:"required,min=0,max=23"`
	Actual *float64 `json:"actual" form:"actual" binding:"required,finite,min=0"`
}

var registerValidatorsOnce sync.Once

// registerValidators adds the finite tag and the day-in-month rule to gin's
// validator engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("finite", validateFinite)
		v.RegisterStructValidation(validatePredictRequest, predictRequest{})
	})
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return isFinite(f.Float())
	default:
		return true
	}
}

func validatePredictRequest(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(predictRequest)
	if !ok || r.Month < 1 || r.Month > 12 {
		return
	}
	if maxDays := features.MaxDaysInMonth(r.Year, r.Month); r.Day > maxDays {
		sl.ReportError(r.Day, "Day", "Day", "daysinmonth", strconv.Itoa(maxDays))
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (r predictRequest) timestamp() features.Timestamp {
	ts := features.Timestamp{Year: r.Year, Month: r.Month, Day: r.Day}
	if r.Hour != nil {
		ts.Hour = *r.Hour
	}
	return ts
}

func (r predictRequest) actual() float64 {
	if r.Actual == nil {
		return 0
	}
	return *r.Actual
}

type prediction struct {
	Features features.Vector
	Result   compare.Result
}

// evaluate runs encode, predict and compare for one request.
func (s *Server) evaluate(ts features.Timestamp, actual float64) (prediction, error) {
	if ts.Year < s.cfg.MinYear || ts.Year > s.cfg.MaxYear {
		return prediction{}, fmt.Errorf("year must be between %d and %d, got %d", s.cfg.MinYear, s.cfg.MaxYear, ts.Year)
	}
	if err := ts.Validate(); err != nil {
		return prediction{}, err
	}
	if !isFinite(actual) || actual < 0 {
		return prediction{}, fmt.Errorf("actual must be a finite, non-negative number, got %v", actual)
	}

	vec := ts.Encode()
	predicted := s.predictor.Predict(vec)

	return prediction{
		Features: vec,
		Result:   compare.Compare(predicted, actual),
	}, nil
}

// bindErrorMessage turns binding failures into a message fit for the user.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid input: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "finite":
			msgs = append(msgs, field+" must be a finite number")
		case "daysinmonth":
			msgs = append(msgs, fmt.Sprintf("%s must be between 1 and %s for the selected month", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
