package text

import "strings"

// NGrams derives all 1-, 2- and 3-word windows from the token sequence.
// Multi-word grams join adjacent tokens with a single space. Weighting by
// gram width is the scorer's concern, not done here.
func NGrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	grams := make([]string, 0, len(tokens)*3)
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// GramWidth reports how many words a gram spans.
func GramWidth(gram string) int {
	return strings.Count(gram, " ") + 1
}
