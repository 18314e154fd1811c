package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SampleInterval != 250*time.Millisecond {
		t.Errorf("SampleInterval = %v, want 250ms", cfg.SampleInterval)
	}
	if cfg.DefaultVolume != 1.0 {
		t.Errorf("DefaultVolume = %v, want 1", cfg.DefaultVolume)
	}
	if cfg.Autoplay {
		t.Error("Autoplay = true, want false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EMBERPLAY_SAMPLE_INTERVAL", "100ms")
	t.Setenv("EMBERPLAY_DEFAULT_VOLUME", "0.5")
	t.Setenv("EMBERPLAY_AUTOPLAY", "true")

	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SampleInterval != 100*time.Millisecond {
		t.Errorf("SampleInterval = %v, want 100ms", cfg.SampleInterval)
	}
	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v, want 0.5", cfg.DefaultVolume)
	}
	if !cfg.Autoplay {
		t.Error("Autoplay = false, want true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "sample_interval: 500ms\ndefault_volume: 0.25\nautoplay: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("EMBERPLAY_CONFIG", path)

	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SampleInterval != 500*time.Millisecond {
		t.Errorf("SampleInterval = %v, want 500ms", cfg.SampleInterval)
	}
	if cfg.DefaultVolume != 0.25 {
		t.Errorf("DefaultVolume = %v, want 0.25", cfg.DefaultVolume)
	}
	if !cfg.Autoplay {
		t.Error("Autoplay = false, want true")
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_volume: 0.25\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("EMBERPLAY_CONFIG", path)
	t.Setenv("EMBERPLAY_DEFAULT_VOLUME", "0.75")

	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultVolume != 0.75 {
		t.Errorf("DefaultVolume = %v, want env override 0.75", cfg.DefaultVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Invalid duration", "EMBERPLAY_SAMPLE_INTERVAL", "fast"},
		{"Invalid volume", "EMBERPLAY_DEFAULT_VOLUME", "loud"},
		{"Invalid autoplay", "EMBERPLAY_AUTOPLAY", "sometimes"},
		{"Missing config file", "EMBERPLAY_CONFIG", "/does/not/exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(zap.NewNop()); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestOutOfRangeValuesFallBack(t *testing.T) {
	t.Setenv("EMBERPLAY_SAMPLE_INTERVAL", "-1s")
	t.Setenv("EMBERPLAY_DEFAULT_VOLUME", "1.5")

	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SampleInterval != 250*time.Millisecond {
		t.Errorf("SampleInterval = %v, want default", cfg.SampleInterval)
	}
	if cfg.DefaultVolume != 1.0 {
		t.Errorf("DefaultVolume = %v, want default", cfg.DefaultVolume)
	}
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sample_interval: [broken"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("EMBERPLAY_CONFIG", path)

	if _, err := Load(zap.NewNop()); err == nil {
		t.Error("Load succeeded on invalid YAML, want error")
	}
}
