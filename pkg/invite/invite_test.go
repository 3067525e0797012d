package invite

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase without dash", "abc123", "ABC-123"},
		{"uppercase without dash", "XYZ789", "XYZ-789"},
		{"already formatted", "ABC-123", "ABC-123"},
		{"lowercase with dash", "abc-123", "ABC-123"},
		{"surrounding whitespace", "  abc123  ", "ABC-123"},
		{"inner whitespace", "abc 123", "ABC-123"},
		{"tab and newline", "\tabc123\n", "ABC-123"},
		{"too short passes through", "abc12", "ABC12"},
		{"too long passes through", "abc1234", "ABC1234"},
		{"empty input", "", ""},
		{"dash never reformatted even if malformed", "ab-c123", "AB-C123"},
		{"dash in wrong place kept", "a-bc123", "A-BC123"},
		{"non-alphanumeric passes through", "abc!23", "ABC!23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSplitsSixCharacterInputs(t *testing.T) {
	inputs := []string{"AAAAAA", "000000", "A1B2C3", "zzz999"}
	for _, s := range inputs {
		got := Normalize(s)
		up := strings.ToUpper(s)
		want := up[:3] + "-" + up[3:]
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ABC-123", true},
		{"abc123", true},
		{" abc 123 ", true},
		{"abc-123", true},
		{"ABC123", true},
		{"AB-C123", false},
		{"ABC-12", false},
		{"ABC-1234", false},
		{"ABC_123", false},
		{"", false},
		{"ABC-12!", false},
	}

	for _, tt := range tests {
		if got := IsValidFormat(tt.input); got != tt.want {
			t.Errorf("IsValidFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !IsValidFormat(code) {
			t.Errorf("generated code %q has invalid format", code)
		}
		if Normalize(code) != code {
			t.Errorf("generated code %q is not already normalized", code)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code generated after %d iterations: %s", i, code)
		}
		seen[code] = true
	}
}
