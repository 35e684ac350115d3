package md2html

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"windows endings", "a\r\nb", "a\nb"},
		{"old mac endings", "a\rb", "a\nb"},
		{"mixed endings", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"already normalized", "a\nb", "a\nb"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three newlines", "a\n\n\nb", "a\n\nb"},
		{"many newlines", "a\n\n\n\n\nb", "a\n\nb"},
		{"two newlines untouched", "a\n\nb", "a\n\nb"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompressBlankLines(tt.input); got != tt.want {
				t.Errorf("CompressBlankLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
