package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

// ErrCorruptArtifact is returned when an artifact cannot be turned into a
// usable model.
var ErrCorruptArtifact = errors.New("corrupt model artifact")

// Artifact is the serialized form of an Ensemble.
type Artifact struct {
	Format       string              `json:"format"`
	FeatureNames []string            `json:"feature_names"`
	Aggregation  string              `json:"aggregation"`
	BaseScore    float64             `json:"base_score"`
	Estimators   []EstimatorArtifact `json:"estimators"`
}

// EstimatorArtifact describes one linear or tree estimator.
type EstimatorArtifact struct {
	Type         string         `json:"type"`
	Intercept    float64        `json:"intercept,omitempty"`
	Coefficients []float64      `json:"coefficients,omitempty"`
	Nodes        []NodeArtifact `json:"nodes,omitempty"`
}

// NodeArtifact is a split or a leaf of a regression tree.
type NodeArtifact struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

// LoadFile reads and validates the artifact at path.
func LoadFile(path string) (*Ensemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes an artifact from r and builds the ensemble.
func Load(r io.Reader) (*Ensemble, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var art Artifact
	if err := dec.Decode(&art); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCorruptArtifact, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, corrupt("trailing data after artifact")
	}
	return art.Build()
}

// Build validates the artifact and converts it into an Ensemble.
func (a Artifact) Build() (*Ensemble, error) {
	if a.Format != Format {
		return nil, corrupt("unsupported format %q", a.Format)
	}
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, err
	}
	if a.Aggregation != AggregateMean && a.Aggregation != AggregateSum {
		return nil, corrupt("unknown aggregation %q", a.Aggregation)
	}
	if !finite(a.BaseScore) {
		return nil, corrupt("base_score is not finite")
	}
	if len(a.Estimators) == 0 {
		return nil, corrupt("no estimators")
	}

	ens := &Ensemble{
		aggregation: a.Aggregation,
		baseScore:   a.BaseScore,
		estimators:  make([]estimator, 0, len(a.Estimators)),
	}
	for i, ea := range a.Estimators {
		est, err := ea.build()
		if err != nil {
			return nil, fmt.Errorf("estimator %d: %w", i, err)
		}
		ens.estimators = append(ens.estimators, est)
	}
	return ens, nil
}

func (ea EstimatorArtifact) build() (estimator, error) {
	switch ea.Type {
	case "linear":
		if len(ea.Coefficients) != features.Size {
			return nil, corrupt("expected %d coefficients, got %d", features.Size, len(ea.Coefficients))
		}
		if !finite(ea.Intercept) {
			return nil, corrupt("intercept is not finite")
		}
		l := linear{intercept: ea.Intercept}
		for i, c := range ea.Coefficients {
			if !finite(c) {
				return nil, corrupt("coefficient %d is not finite", i)
			}
			l.coefficients[i] = c
		}
		return l, nil
	case "tree":
		t, err := buildTree(ea.Nodes)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, corrupt("unknown estimator type %q", ea.Type)
	}
}

func buildTree(nodes []NodeArtifact) (tree, error) {
	if len(nodes) == 0 {
		return tree{}, corrupt("tree has no nodes")
	}

	t := tree{nodes: make([]node, len(nodes))}
	for i, na := range nodes {
		if na.Leaf {
			if !finite(na.Value) {
				return tree{}, corrupt("node %d: leaf value is not finite", i)
			}
			t.nodes[i] = node{leaf: true, value: na.Value}
			continue
		}
		if na.Feature < 0 || na.Feature >= features.Size {
			return tree{}, corrupt("node %d: feature index %d out of range", i, na.Feature)
		}
		if !finite(na.Threshold) {
			return tree{}, corrupt("node %d: threshold is not finite", i)
		}
		for _, child := range []int{na.Left, na.Right} {
			if child <= i || child >= len(nodes) {
				return tree{}, corrupt("node %d: invalid child index %d", i, child)
			}
		}
		t.nodes[i] = node{
			feature:   na.Feature,
			threshold: na.Threshold,
			left:      na.Left,
			right:     na.Right,
		}
	}
	return t, nil
}

func checkFeatureNames(names []string) error {
	if len(names) != features.Size {
		return corrupt("expected %d feature names, got %d", features.Size, len(names))
	}
	for i, name := range names {
		if name != features.Names[i] {
			return corrupt("feature %d is %q, expected %q", i, name, features.Names[i])
		}
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptArtifact, fmt.Sprintf(format, args...))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
