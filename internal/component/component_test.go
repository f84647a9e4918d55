package component

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"button", "date-picker", "card2", "a", "tab-group-v2"}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			if err := ValidateName(name); err != nil {
				t.Errorf("ValidateName(%q) error: %v", name, err)
			}
		})
	}

	invalid := []string{"", "Button", "2card", "-button", "button-", "my--button", "my_button", "../etc", "a b", `x"onload`}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			err := ValidateName(name)
			if err == nil {
				t.Fatalf("ValidateName(%q) expected error", name)
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", name, err)
			}
		})
	}
}

func TestNaming(t *testing.T) {
	tests := []struct {
		name      string
		pascal    string
		className string
		selector  string
	}{
		{"button", "Button", "ButtonComponent", "app-button"},
		{"date-picker", "DatePicker", "DatePickerComponent", "app-date-picker"},
		{"tab-group-v2", "TabGroupV2", "TabGroupV2Component", "app-tab-group-v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PascalName(tt.name); got != tt.pascal {
				t.Errorf("PascalName() = %q, want %q", got, tt.pascal)
			}
			if got := ClassName(tt.name); got != tt.className {
				t.Errorf("ClassName() = %q, want %q", got, tt.className)
			}
			if got := Selector(tt.name); got != tt.selector {
				t.Errorf("Selector() = %q, want %q", got, tt.selector)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("button", "spec.ts"); got != "button.component.spec.ts" {
		t.Errorf("FileName() = %q", got)
	}
}
