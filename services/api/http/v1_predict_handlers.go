package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/compare"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

type predictionResponse struct {
	Features map[string]float64 `json:"features"`
	compare.Result
	Magnitude     float64 `json:"magnitude"`
	Summary       string  `json:"summary"`
	PredictedLine string  `json:"predicted_line"`
}

// handleV1MaxDays returns the number of days in a month
// GET /api/v1/calendar/max-days?year=2024&month=2
func (s *Server) handleV1MaxDays(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 1-12"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"year":     year,
			"month":    month,
			"max_days": features.MaxDaysInMonth(year, month),
		},
	})
}

// handleV1Predict predicts consumption for a timestamp and compares it with the actual reading
// POST /api/v1/predict
func (s *Server) handleV1Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	p, err := s.evaluate(req.timestamp(), req.actual())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": predictionResponse{
			Features:      p.Features.Map(),
			Result:        p.Result,
			Magnitude:     p.Result.Magnitude(),
			Summary:       p.Result.Summary(),
			PredictedLine: p.Result.PredictedLine(),
		},
	})
}
