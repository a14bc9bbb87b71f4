package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test display defaults
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.PaceUnit != "min/km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "min/km")
	}

	// Test import defaults
	if cfg.Import.DateLayout != "2006-01-02" {
		t.Errorf("Import.DateLayout = %q, want %q", cfg.Import.DateLayout, "2006-01-02")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "empty config is valid",
			config:      Config{},
			expectError: false,
		},
		{
			name:        "defaults are valid",
			config:      DefaultConfig(),
			expectError: false,
		},
		{
			name: "miles units",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"},
			},
			expectError: false,
		},
		{
			name: "bad distance unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			expectError: true,
		},
		{
			name: "bad pace unit",
			config: Config{
				Display: DisplayConfig{PaceUnit: "sec/m"},
			},
			expectError: true,
		},
		{
			name: "slash date layout",
			config: Config{
				Import: ImportConfig{DateLayout: "02/01/2006"},
			},
			expectError: false,
		},
		{
			name: "nonsense date layout",
			config: Config{
				Import: ImportConfig{DateLayout: "not a layout"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
