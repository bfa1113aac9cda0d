package logger

import (
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected stderr, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = &Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = &Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "nope", Format: "json", Output: "stderr"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields("stream", "queue", "count", 3)
	if m["stream"] != "queue" {
		t.Errorf("expected queue, got %v", m["stream"])
	}
	if m["count"] != 3 {
		t.Errorf("expected 3, got %v", m["count"])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("")
	tagged := base.WithComponent("joiner")
	if tagged.component != "joiner" {
		t.Errorf("expected joiner, got %s", tagged.component)
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected custom global logger")
	}
	SetGlobalLogger(nil)
}
