package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := NewTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "stopwords and particles dropped",
			input: "ผม อยาก สมัคร ครับ",
			want:  []string{"สมัคร"},
		},
		{
			name:  "single rune tokens dropped",
			input: "ก สมัคร ข",
			want:  []string{"สมัคร"},
		},
		{
			name:  "stopword matched after tone mark strip",
			input: "เอกสาร ค่ะ",
			want:  []string{"เอกสาร"},
		},
		{
			name:  "order preserved",
			input: "เปลี่ยน อีเมล ใหม่",
			want:  []string{"เปลียน", "อีเมล", "ใหม"},
		},
		{
			name:  "only stopwords",
			input: "ครับ ค่ะ นะ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandCanonicalToken(t *testing.T) {
	tok := NewTokenizer()

	sequence, set := tok.Expand([]string{"สมัคร"})

	wantSeq := []string{"สมัคร", "ลงทะเบียน", "สมัครสมาชิก", "register", "signup"}
	if !reflect.DeepEqual(sequence, wantSeq) {
		t.Errorf("Expand sequence = %v, want %v", sequence, wantSeq)
	}
	for _, term := range wantSeq {
		if _, ok := set[term]; !ok {
			t.Errorf("Expand set missing %q", term)
		}
	}
}

func TestExpandVariantPullsInWholeCluster(t *testing.T) {
	tok := NewTokenizer()

	// Matching a variant must pull in the canonical term and siblings.
	_, set := tok.Expand([]string{"ลงทะเบียน"})

	for _, term := range []string{"ลงทะเบียน", "สมัคร", "สมัครสมาชิก", "register", "signup"} {
		if _, ok := set[term]; !ok {
			t.Errorf("Expand set missing %q", term)
		}
	}
}

func TestExpandSetIsSuperset(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("แก้ไข อีเมล สมาชิก ใหม่")

	_, set := tok.Expand(tokens)
	for _, tk := range tokens {
		if _, ok := set[tk]; !ok {
			t.Errorf("expanded set does not contain original token %q", tk)
		}
	}
}

func TestNGrams(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "empty",
			tokens: nil,
			want:   nil,
		},
		{
			name:   "single token",
			tokens: []string{"a"},
			want:   []string{"a"},
		},
		{
			name:   "three tokens yield all windows",
			tokens: []string{"a", "b", "c"},
			want:   []string{"a", "b", "c", "a b", "b c", "a b c"},
		},
		{
			name:   "four tokens cap at trigrams",
			tokens: []string{"a", "b", "c", "d"},
			want:   []string{"a", "b", "c", "d", "a b", "b c", "c d", "a b c", "b c d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NGrams(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NGrams(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestGramWidth(t *testing.T) {
	if got := GramWidth("อีเมล"); got != 1 {
		t.Errorf("GramWidth(unigram) = %d, want 1", got)
	}
	if got := GramWidth("เปลียน อีเมล"); got != 2 {
		t.Errorf("GramWidth(bigram) = %d, want 2", got)
	}
	if got := GramWidth("a b c"); got != 3 {
		t.Errorf("GramWidth(trigram) = %d, want 3", got)
	}
}
