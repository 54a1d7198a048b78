package intent

import (
	"testing"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name  string
		input string
		want  []Detection
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "no intent matched",
			input: "แมวน้อยตัวกลม",
			want:  nil,
		},
		{
			name:  "single intent",
			input: "อยากสมัครสมาชิก",
			want:  []Detection{{Name: Registration, Score: 1}},
		},
		{
			name:  "sorted by keyword count descending",
			input: "ลืมรหัสผ่าน เข้าระบบไม่ได้",
			want: []Detection{
				{Name: AccessProblem, Score: 2},
				{Name: Account, Score: 1},
			},
		},
		{
			name:  "repeated keyword counts once",
			input: "อีเมล อีเมล อีเมล",
			want:  []Detection{{Name: Account, Score: 1}},
		},
		{
			name:  "greeting keywords stack",
			input: "สวัสดีครับ",
			want:  []Detection{{Name: Greeting, Score: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Detect(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectWithCustomTaxonomy(t *testing.T) {
	// Taxonomy keywords carry tone marks; matching must still work because
	// both sides are normalized.
	d := NewDetectorWithTaxonomy([]Category{
		{Name: "billing", Keywords: []string{"ใบแจ้งหนี้", "ค่าบริการ"}},
	})

	got := d.Detect("ขอดูใบแจ้งหนี้เดือนนี้")
	if len(got) != 1 || got[0].Name != "billing" || got[0].Score != 1 {
		t.Errorf("Detect = %v, want [{billing 1}]", got)
	}
}
