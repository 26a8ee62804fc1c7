package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the JSON API
// Groups: /api/v1/calendar, /api/v1/predict
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	calendar := v1.Group("/calendar")
	{
		calendar.GET("/max-days", s.handleV1MaxDays)
	}

	v1.POST("/predict", s.handleV1Predict)
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
