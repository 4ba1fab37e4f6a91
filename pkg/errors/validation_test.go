package errors

import (
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "out.svg", false},
		{"valid nested", "images/out.svg", false},
		{"valid absolute", "/tmp/out.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar.svg", true},
		{"control char", "foo\x01bar.svg", true},
		{"newline", "foo\nbar.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means transparent", "", false},
		{"palette name", "red", false},
		{"none", "none", false},
		{"hex lower", "#a0b1c2", false},
		{"hex upper", "#A0B1C2", false},

		{"hex too short", "#abc", true},
		{"hex too long", "#a0b1c2d3", true},
		{"hex bad digit", "#a0b1cg", true},
		{"name with digits", "red2", true},
		{"name with space", "dark red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
