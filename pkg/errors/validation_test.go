package errors

import (
	"strings"
	"testing"
)

func TestValidatePanelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid default name", "ReducedDimensionPlot1", false},
		{"valid with spaces", "my plot", false},
		{"valid empty", "", false},

		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " foo", true},
		{"trailing tab", "foo\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePanelID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePanelID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		width int
		code  Code
	}{
		{1, ""},
		{4, ""},
		{12, ""},
		{0, ErrCodeInvalidInput},
		{-3, ErrCodeInvalidInput},
		{13, ErrCodeOversizedPanel},
		{24, ErrCodeOversizedPanel},
	}

	for _, tt := range tests {
		err := ValidateWidth(tt.width)
		if tt.code == "" {
			if err != nil {
				t.Errorf("ValidateWidth(%d) unexpected error: %v", tt.width, err)
			}
			continue
		}
		if !Is(err, tt.code) {
			t.Errorf("ValidateWidth(%d) = %v, want code %s", tt.width, err, tt.code)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "panels.json", false},
		{"absolute", "/tmp/panels.yaml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"#3565AA", false},
		{"#fff", false},
		{"#440154FF", false},
		{"black", false},
		{"grey50", false},

		{"#12", true},
		{"#zzzzzz", true},
		{"rgb(1,2,3)", true},
		{"two words", true},
	}

	for _, tt := range tests {
		err := ValidateColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
