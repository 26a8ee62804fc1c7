// Package model loads the pre-trained consumption regressor and runs it.
package model

import (
	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

// Format is the artifact format identifier this package understands.
const Format = "energy-regressor/v1"

// Aggregation modes for combining estimator outputs.
const (
	AggregateMean = "mean"
	AggregateSum  = "sum"
)

// Predictor produces a consumption estimate in kWh for a feature vector.
type Predictor interface {
	Predict(v features.Vector) float64
}

type estimator interface {
	score(v features.Vector) float64
}

// Ensemble is a validated, immutable set of estimators. It is safe for
// concurrent use.
type Ensemble struct {
	aggregation string
	baseScore   float64
	estimators  []estimator
}

// Predict scores v with every estimator and combines the results.
func (e *Ensemble) Predict(v features.Vector) float64 {
	total := 0.0
	for _, est := range e.estimators {
		total += est.score(v)
	}
	if e.aggregation == AggregateMean {
		total /= float64(len(e.estimators))
	}
	return e.baseScore + total
}

// Len returns the number of estimators in the ensemble.
func (e *Ensemble) Len() int {
	return len(e.estimators)
}

type linear struct {
	intercept    float64
	coefficients features.Vector
}

func (l linear) score(v features.Vector) float64 {
	sum := l.intercept
	for i, c := range l.coefficients {
		sum += c * v[i]
	}
	return sum
}

type node struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      int
	right     int
}

// tree children always sit at higher indexes than their parent, so the walk
// from the root terminates.
type tree struct {
	nodes []node
}

func (t tree) score(v features.Vector) float64 {
	i := 0
	for {
		n := t.nodes[i]
		if n.leaf {
			return n.value
		}
		if v[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}
