package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

// formView is the data rendered by templates/index.tmpl.
type formView struct {
	Location      string
	Years         []int
	Year          int
	Month         int
	Day           int
	Hour          int
	Actual        float64
	MaxDays       int
	Error         string
	Summary       string
	PredictedLine string
}

func (s *Server) newFormView(ts features.Timestamp, actual float64) formView {
	return formView{
		Location: s.cfg.Location,
		Years:    s.cfg.Years(),
		Year:     ts.Year,
		Month:    ts.Month,
		Day:      ts.Day,
		Hour:     ts.Hour,
		Actual:   actual,
		MaxDays:  features.MaxDaysInMonth(ts.Year, ts.Month),
	}
}

// handleForm renders the empty prediction form
// GET /
func (s *Server) handleForm(c *gin.Context) {
	ts := features.Timestamp{Year: s.cfg.MinYear, Month: 1, Day: 1, Hour: 0}
	c.HTML(http.StatusOK, "index.tmpl", s.newFormView(ts, 0))
}

// handleFormPredict renders the form with the comparison for the submitted values
// POST /predict
func (s *Server) handleFormPredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBind(&req); err != nil {
		view := s.newFormView(req.timestamp(), req.actual())
		view.Error = bindErrorMessage(err)
		c.HTML(http.StatusBadRequest, "index.tmpl", view)
		return
	}

	ts := req.timestamp()
	view := s.newFormView(ts, req.actual())

	p, err := s.evaluate(ts, req.actual())
	if err != nil {
		view.Error = err.Error()
		c.HTML(http.StatusBadRequest, "index.tmpl", view)
		return
	}

	view.Summary = p.Result.Summary()
	view.PredictedLine = p.Result.PredictedLine()
	c.HTML(http.StatusOK, "index.tmpl", view)
}
