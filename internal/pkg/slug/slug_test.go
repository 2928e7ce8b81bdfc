package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Emma Watson",
			expected: "emma-watson",
		},
		{
			name:     "trailing punctuation",
			input:    "Emma Watson!!",
			expected: "emma-watson",
		},
		{
			name:     "hyphens and repeated spaces",
			input:    " --Multiple   Spaces-- ",
			expected: "multiple-spaces",
		},
		{
			name:     "inner punctuation becomes hyphen",
			input:    "Rock'n'Roll",
			expected: "rock-n-roll",
		},
		{
			name:     "event title with year",
			input:    "Met Gala 2024",
			expected: "met-gala-2024",
		},
		{
			name:     "accents",
			input:    "Penélope Cruz",
			expected: "penelope-cruz",
		},
		{
			name:     "only punctuation",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case",
			input:    "ZeNdAyA",
			expected: "zendaya",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Make(tt.input)
			if result != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	for _, input := range []string{"Emma Watson!!", "Met Gala 2024", "Café résumé"} {
		once := Make(input)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"emma-watson", true},
		{"met-gala-2024", true},
		{"", false},
		{"Emma-Watson", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.input); got != tt.expected {
			t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
