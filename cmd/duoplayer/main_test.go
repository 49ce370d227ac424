package main

import (
	"testing"
	"time"

	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	if err := fx.ValidateApp(AppOptions); err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	logger, err := newLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	logger.Info("Test logger initialization")
}

func TestFlagsFrom(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "Unset flags leave the environment in charge",
			args: nil,
		},
		{
			name: "Explicit flags override",
			args: []string{"--instant-swap=false", "--fade=250ms", "--debounce=0s", "--diag-addr=127.0.0.1:9100", "--priority=false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			f := flagsFrom(cmd)

			if len(tt.args) == 0 {
				if f.InstantSwap != nil || f.Fade != nil || f.Debounce != nil || f.DiagAddr != nil || f.RaisePriority != nil {
					t.Errorf("expected no overrides, got %+v", f)
				}
				return
			}

			if f.InstantSwap == nil || *f.InstantSwap {
				t.Error("instant-swap: expected false")
			}
			if f.Fade == nil || *f.Fade != 250*time.Millisecond {
				t.Error("fade: expected 250ms")
			}
			if f.Debounce == nil || *f.Debounce != 0 {
				t.Error("debounce: expected 0")
			}
			if f.DiagAddr == nil || *f.DiagAddr != "127.0.0.1:9100" {
				t.Error("diag-addr: unexpected value")
			}
			if f.RaisePriority == nil || *f.RaisePriority {
				t.Error("priority: expected false")
			}
		})
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
