package rank

import "github.com/davidwl/keyhint/pkg/keyconfig"

// BuildSpans groups the characters of text into maximal runs of matched and
// unmatched characters, in order. matched holds ascending indexes into text;
// indexes past the end are ignored. The concatenation of the returned spans'
// text always reproduces text exactly. Empty text yields no spans.
func BuildSpans(text string, matched []int) []keyconfig.Span {
	if text == "" {
		return nil
	}

	isMatch := make([]bool, len(text))
	for _, idx := range matched {
		if idx >= 0 && idx < len(text) {
			isMatch[idx] = true
		}
	}

	var spans []keyconfig.Span
	start := 0
	for i := 1; i <= len(text); i++ {
		if i == len(text) || isMatch[i] != isMatch[start] {
			spans = append(spans, keyconfig.Span{
				Text:    text[start:i],
				Matched: isMatch[start],
			})
			start = i
		}
	}
	return spans
}
