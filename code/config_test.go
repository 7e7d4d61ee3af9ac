package code

import (
	"errors"
	"testing"
	"time"
)

func TestConfig_ValidateRequired_Engine(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for nil Engine")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
	if !containsStr(err.Error(), "Engine") {
		t.Errorf("expected error to mention Engine, got %q", err.Error())
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := Config{Engine: &mockEngine{}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestConfig_Validate_NegativeTimeout(t *testing.T) {
	cfg := Config{
		Engine:  &mockEngine{},
		Timeout: -time.Second,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative Timeout")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestConfig_Validate_NegativeMaxToolCalls(t *testing.T) {
	cfg := Config{
		Engine:       &mockEngine{},
		MaxToolCalls: -1,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative MaxToolCalls")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestConfig_DefaultTimeout(t *testing.T) {
	cfg := Config{Engine: &mockEngine{}}
	cfg.applyDefaults()
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
}

func TestConfig_DefaultTimeout_PreserveExisting(t *testing.T) {
	cfg := Config{
		Engine:  &mockEngine{},
		Timeout: 10 * time.Second,
	}
	cfg.applyDefaults()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected Timeout to remain 10s, got %v", cfg.Timeout)
	}
}

func TestConfig_DefaultMaxToolCalls(t *testing.T) {
	cfg := Config{Engine: &mockEngine{}}
	cfg.applyDefaults()
	if cfg.MaxToolCalls != DefaultMaxToolCalls {
		t.Errorf("expected MaxToolCalls %d, got %d", DefaultMaxToolCalls, cfg.MaxToolCalls)
	}
}

func TestConfig_DefaultMaxToolCalls_PreserveExisting(t *testing.T) {
	cfg := Config{
		Engine:       &mockEngine{},
		MaxToolCalls: 7,
	}
	cfg.applyDefaults()
	if cfg.MaxToolCalls != 7 {
		t.Errorf("expected MaxToolCalls to remain 7, got %d", cfg.MaxToolCalls)
	}
}

func TestConfig_Logger_Optional(t *testing.T) {
	cfg := Config{
		Engine: &mockEngine{},
		Logger: nil, // nil Logger should be valid
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error with nil Logger, got %v", err)
	}
}

func TestConfig_DefaultTimeout_Value(t *testing.T) {
	// The documented default is 300000ms.
	if DefaultTimeout != 5*time.Minute {
		t.Errorf("expected DefaultTimeout of 300000ms, got %v", DefaultTimeout)
	}
}

// containsStr checks if s contains substr
func containsStr(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
