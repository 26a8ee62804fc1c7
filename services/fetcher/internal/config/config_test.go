package config

import "testing"

func TestLoadDryRun(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Setenv("DRY_RUN", tt.value)
		if got := Load().DryRun; got != tt.want {
			t.Errorf("DRY_RUN=%q: DryRun = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLoadArtifactSettings(t *testing.T) {
	t.Setenv("MODEL_LOCAL_PATH", "/var/lib/predictor/model.json")
	t.Setenv("AWS_BUCKET_NAME", "energy-models")
	t.Setenv("MODEL_KEY", "model.json")
	t.Setenv("MODEL_BLOB_BASE_URL", "")

	cfg := Load()
	if cfg.Artifact.LocalPath != "/var/lib/predictor/model.json" {
		t.Errorf("LocalPath = %q", cfg.Artifact.LocalPath)
	}
	if cfg.Artifact.Bucket != "energy-models" || cfg.Artifact.Key != "model.json" {
		t.Errorf("unexpected artifact settings: %+v", cfg.Artifact)
	}
}
