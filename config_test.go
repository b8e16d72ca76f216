// config_test.go: tests for configuration validation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", cfg.Capacity, DefaultCapacity)
	}
	if cfg.Logger == nil {
		t.Error("Logger should not be nil")
	}
	if cfg.TimeProvider == nil {
		t.Error("TimeProvider should not be nil")
	}
	if cfg.MetricsCollector == nil {
		t.Error("MetricsCollector should not be nil")
	}
	if cfg.OnEvict != nil {
		t.Error("OnEvict should be nil by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{name: "one", capacity: 1},
		{name: "default", capacity: DefaultCapacity},
		{name: "zero", capacity: 0, wantErr: true},
		{name: "negative", capacity: -10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Capacity: tt.capacity}
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if GetErrorCode(err) != ErrCodeInvalidCapacity {
					t.Errorf("code = %s, want %s", GetErrorCode(err), ErrCodeInvalidCapacity)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if cfg.Logger == nil || cfg.TimeProvider == nil || cfg.MetricsCollector == nil {
				t.Error("Validate should fill in default collaborators")
			}
		})
	}
}

func TestConfig_ValidateKeepsCollaborators(t *testing.T) {
	logger := &recordingLogger{}
	metrics := &recordingMetrics{}
	clock := &fakeClock{}

	cfg := Config{Capacity: 3, Logger: logger, MetricsCollector: metrics, TimeProvider: clock}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Logger != logger || cfg.MetricsCollector != metrics || cfg.TimeProvider != clock {
		t.Error("Validate replaced caller supplied collaborators")
	}
}

func TestSystemTimeProvider(t *testing.T) {
	tp := &systemTimeProvider{}
	if tp.Now() <= 0 {
		t.Error("Now() should return a positive timestamp")
	}
}
