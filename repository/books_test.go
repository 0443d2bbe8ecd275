package repository

import "testing"

func TestLikeEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "dune", "dune"},
		{"percent is literal", "50%", `50\%`},
		{"underscore is literal", "a_c", `a\_c`},
		{"backslash is doubled", `a\c`, `a\\c`},
		{"mixed metacharacters", `100%_\`, `100\%\_\\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likeEscape(tt.input); got != tt.want {
				t.Errorf("likeEscape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
