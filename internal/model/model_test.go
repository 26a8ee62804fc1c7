package model

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/features"
)

const namesJSON = `["Hour","Year","Day","Month","HourSin","HourCos","Day_Sin","Day_Cos","MonthSin","MonthCos"]`

func artifactJSON(aggregation string, baseScore string, estimators ...string) string {
	return `{"format":"energy-regressor/v1","feature_names":` + namesJSON +
		`,"aggregation":"` + aggregation + `","base_score":` + baseScore +
		`,"estimators":[` + strings.Join(estimators, ",") + `]}`
}

// hourLinear scores 0.5 + 2*Hour.
const hourLinear = `{"type":"linear","intercept":0.5,"coefficients":[2,0,0,0,0,0,0,0,0,0]}`

// monthTree returns 10 for Month <= 6 and 20 otherwise.
const monthTree = `{"type":"tree","nodes":[
	{"feature":3,"threshold":6,"left":1,"right":2},
	{"leaf":true,"value":10},
	{"leaf":true,"value":20}]}`

func TestPredictLinear(t *testing.T) {
	ens, err := Load(strings.NewReader(artifactJSON("sum", "0", hourLinear)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := ens.Predict(features.Encode(10, 1, 1, 2022))
	if got != 20.5 {
		t.Errorf("Predict() = %v, want 20.5", got)
	}
}

func TestPredictTree(t *testing.T) {
	ens, err := Load(strings.NewReader(artifactJSON("sum", "1", monthTree)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		month int
		want  float64
	}{
		{1, 11},
		{6, 11},
		{7, 21},
		{12, 21},
	}
	for _, tt := range tests {
		if got := ens.Predict(features.Encode(0, 1, tt.month, 2022)); got != tt.want {
			t.Errorf("month %d: Predict() = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestPredictMeanAggregation(t *testing.T) {
	ens, err := Load(strings.NewReader(artifactJSON("mean", "0", hourLinear, monthTree)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ens.Len() != 2 {
		t.Fatalf("expected 2 estimators, got %d", ens.Len())
	}

	// hour 5 scores 10.5 on the linear estimator, month 8 scores 20 on the tree.
	got := ens.Predict(features.Encode(5, 1, 8, 2022))
	if got != 15.25 {
		t.Errorf("Predict() = %v, want 15.25", got)
	}
}

func TestLoadRejectsCorruptArtifacts(t *testing.T) {
	reordered := strings.Replace(artifactJSON("sum", "0", hourLinear), `"Hour","Year"`, `"Year","Hour"`, 1)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "\x80\x04\x95 pickle bytes"},
		{name: "empty", body: ""},
		{name: "trailing bytes", body: artifactJSON("sum", "0", hourLinear) + "\x80\x04garbage"},
		{name: "second document", body: artifactJSON("sum", "0", hourLinear) + artifactJSON("sum", "0", hourLinear)},
		{name: "misspelled node field", body: artifactJSON("sum", "0", strings.Replace(monthTree, `"threshold"`, `"threshhold"`, 1))},
		{name: "unknown top-level field", body: strings.Replace(artifactJSON("sum", "0", hourLinear), `"base_score"`, `"bias":1,"base_score"`, 1)},
		{name: "wrong format", body: strings.Replace(artifactJSON("sum", "0", hourLinear), Format, "other/v9", 1)},
		{name: "reordered features", body: reordered},
		{name: "missing features", body: `{"format":"energy-regressor/v1","feature_names":["Hour"],"aggregation":"sum","estimators":[` + hourLinear + `]}`},
		{name: "unknown aggregation", body: artifactJSON("median", "0", hourLinear)},
		{name: "no estimators", body: artifactJSON("sum", "0")},
		{name: "short coefficients", body: artifactJSON("sum", "0", `{"type":"linear","coefficients":[1,2,3]}`)},
		{name: "unknown estimator", body: artifactJSON("sum", "0", `{"type":"forest"}`)},
		{name: "empty tree", body: artifactJSON("sum", "0", `{"type":"tree","nodes":[]}`)},
		{name: "feature out of range", body: artifactJSON("sum", "0", `{"type":"tree","nodes":[{"feature":10,"threshold":1,"left":1,"right":2},{"leaf":true},{"leaf":true}]}`)},
		{name: "child loops back", body: artifactJSON("sum", "0", `{"type":"tree","nodes":[{"feature":0,"threshold":1,"left":0,"right":1},{"leaf":true}]}`)},
		{name: "child out of range", body: artifactJSON("sum", "0", `{"type":"tree","nodes":[{"feature":0,"threshold":1,"left":1,"right":5},{"leaf":true}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrCorruptArtifact) {
				t.Errorf("expected ErrCorruptArtifact, got %v", err)
			}
		})
	}
}

func TestLoadAcceptsTrailingWhitespace(t *testing.T) {
	if _, err := Load(strings.NewReader(artifactJSON("sum", "0", monthTree) + "\n\n")); err != nil {
		t.Errorf("trailing whitespace should be accepted: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(artifactJSON("sum", "0", hourLinear)), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	ens, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	var _ Predictor = ens

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
