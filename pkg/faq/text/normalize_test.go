package text

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "tone marks dropped",
			input: "แก้ไขที่อยู่",
			want:  "แกไขทีอยู",
		},
		{
			name:  "punctuation becomes spaces",
			input: "สมัครสมาชิก, อย่างไร?",
			want:  "สมัครสมาชิก อยางไร",
		},
		{
			name:  "latin lowercased",
			input: "Reset Password!",
			want:  "reset password",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  อีเมล   ใหม่  ",
			want:  "อีเมล ใหม",
		},
		{
			name:  "digits kept",
			input: "โทร 02-123-4567",
			want:  "โทร 02 123 4567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"สวัสดีครับ!!",
		"  แก้ไข  ที่อยู่ ",
		"Hello, World! สมัครสมาชิก",
		"ไม่ได้ ๆๆๆ",
		"faq_12",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
