package rank

import (
	"strings"
	"testing"

	"github.com/davidwl/keyhint/pkg/keyconfig"
)

func TestBuildSpans(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		matched []int
		want    []keyconfig.Span
	}{
		{
			name: "empty text yields no spans",
			text: "",
		},
		{
			name: "no matches is one unmatched run",
			text: "abdc",
			want: []keyconfig.Span{{Text: "abdc"}},
		},
		{
			name:    "fully matched is one matched run",
			text:    "group1",
			matched: []int{0, 1, 2, 3, 4, 5},
			want:    []keyconfig.Span{{Text: "group1", Matched: true}},
		},
		{
			name:    "prefix match splits once",
			text:    "group1",
			matched: []int{0, 1, 2},
			want:    []keyconfig.Span{{Text: "gro", Matched: true}, {Text: "up1"}},
		},
		{
			name:    "alternating runs",
			text:    "abdc",
			matched: []int{0, 1, 3},
			want: []keyconfig.Span{
				{Text: "ab", Matched: true},
				{Text: "d"},
				{Text: "c", Matched: true},
			},
		},
		{
			name:    "out of range indexes are ignored",
			text:    "ab",
			matched: []int{-1, 1, 7},
			want:    []keyconfig.Span{{Text: "a"}, {Text: "b", Matched: true}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildSpans(tc.text, tc.matched)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d spans %v, want %d", len(got), got, len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("span %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// Concatenating the spans must reproduce the field text exactly, whatever
// the matched index set looks like.
func TestBuildSpansRoundTrip(t *testing.T) {
	texts := []string{"a", "abdc", "move workspace to output left", "x y z"}
	indexSets := [][]int{nil, {0}, {0, 1}, {1, 3}, {0, 2, 4}, {0, 1, 2, 3, 4}}

	for _, text := range texts {
		for _, matched := range indexSets {
			var b strings.Builder
			for _, sp := range BuildSpans(text, matched) {
				b.WriteString(sp.Text)
			}
			if b.String() != text {
				t.Errorf("round-trip broken for %q with %v: got %q", text, matched, b.String())
			}
		}
	}
}
