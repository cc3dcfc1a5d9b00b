package rank

import (
	"strings"
	"testing"

	"github.com/davidwl/keyhint/pkg/keyconfig"
)

func parseSample(t *testing.T, text string) *keyconfig.Metadata {
	t.Helper()
	meta, err := keyconfig.Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return meta
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	meta := parseSample(t, `## wm // move window // $mod+shift+Left ##
## wm // focus window // $mod+Left ##
## apps // open terminal // $mod+Return ##`)

	results := Filter(meta, "", keyconfig.Modifiers{})
	if len(results) != 3 {
		t.Fatalf("empty query must return all entries, got %d", len(results))
	}
	// source order retained, spans a single unmatched run
	for i, e := range results {
		if e != meta.Entries()[i] {
			t.Errorf("result %d not in source order", i)
		}
		if len(e.GroupSpans) != 1 || e.GroupSpans[0].Matched {
			t.Errorf("entry %d: expected one unmatched group span, got %v", i, e.GroupSpans)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	meta := parseSample(t, `## group1 // description1 // keys1 ##
## group2 // description2 // keys2 ##`)

	results := Filter(meta, "qwz", keyconfig.Modifiers{})
	if len(results) != 0 {
		t.Errorf("expected empty result, got %d entries", len(results))
	}
}

func TestFilterSubsequenceMatch(t *testing.T) {
	meta := parseSample(t, `## group1 // description1 // keys1 ##
## group2 // description2 // keys2 ##`)

	results := Filter(meta, "dsc1", keyconfig.Modifiers{})
	if len(results) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(results))
	}
	if results[0].Description != "description1" {
		t.Errorf("matched wrong entry: %q", results[0].Description)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	meta := parseSample(t, "## WM // Move Workspace // $mod+Ctrl+Left ##")

	if results := Filter(meta, "move work", keyconfig.Modifiers{}); len(results) != 1 {
		t.Errorf("lowercase query must match capitalized text, got %d results", len(results))
	}
}

// The exact text must outrank an interleaved subsequence match.
func TestFilterScoringOrder(t *testing.T) {
	meta := parseSample(t, `## g // abdc // k1 ##
## g // abc // k2 ##`)

	results := Filter(meta, "abc", keyconfig.Modifiers{})
	if len(results) != 2 {
		t.Fatalf("expected both entries to match, got %d", len(results))
	}
	if results[0].Description != "abc" {
		t.Errorf("exact match must rank first, got %q", results[0].Description)
	}
}

// A perfect fuzzy match without the required marker is still excluded.
func TestFilterModifierGateIndependentOfScore(t *testing.T) {
	meta := parseSample(t, `## wm // move window // $mod+Left ##
## wm // move window // $mod+ctrl+Left ##`)

	results := Filter(meta, "move window", keyconfig.Modifiers{Control: true})
	if len(results) != 1 {
		t.Fatalf("expected exactly one gated result, got %d", len(results))
	}
	if results[0].Keys != "$mod+ctrl+Left" {
		t.Errorf("wrong entry passed the gate: %q", results[0].Keys)
	}
}

func TestFilterModifierGateOnEmptyQuery(t *testing.T) {
	meta := parseSample(t, `## wm // move window // $mod+shift+Left ##
## apps // open terminal // $mod+Return ##`)

	results := Filter(meta, "", keyconfig.Modifiers{Shift: true})
	if len(results) != 1 || results[0].Group != "wm" {
		t.Fatalf("modifier gate must apply to empty queries too, got %d results", len(results))
	}
}

func TestFilterHighlightSplit(t *testing.T) {
	meta := parseSample(t, "## group1 // abdc // keys1 ##")

	results := Filter(meta, "gro", keyconfig.Modifiers{})
	if len(results) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(results))
	}
	e := results[0]

	wantGroup := []keyconfig.Span{{Text: "gro", Matched: true}, {Text: "up1"}}
	if len(e.GroupSpans) != 2 || e.GroupSpans[0] != wantGroup[0] || e.GroupSpans[1] != wantGroup[1] {
		t.Errorf("group spans = %v, want %v", e.GroupSpans, wantGroup)
	}
	if len(e.DescriptionSpans) != 1 || e.DescriptionSpans[0] != (keyconfig.Span{Text: "abdc"}) {
		t.Errorf("description spans = %v, want single unmatched run", e.DescriptionSpans)
	}
}

// A query spanning both fields matches each fully; the joining space is
// never part of either span set.
func TestFilterCrossFieldQuery(t *testing.T) {
	meta := parseSample(t, "## group1 // abdc // keys1 ##")

	results := Filter(meta, "group1 abdc", keyconfig.Modifiers{})
	if len(results) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(results))
	}
	e := results[0]

	if len(e.GroupSpans) != 1 || !e.GroupSpans[0].Matched || e.GroupSpans[0].Text != "group1" {
		t.Errorf("group spans = %v, want one fully matched run", e.GroupSpans)
	}
	if len(e.DescriptionSpans) != 1 || !e.DescriptionSpans[0].Matched || e.DescriptionSpans[0].Text != "abdc" {
		t.Errorf("description spans = %v, want one fully matched run", e.DescriptionSpans)
	}
}

// Spans from an earlier pass are dropped when an entry stops matching.
func TestFilterClearsStaleSpans(t *testing.T) {
	meta := parseSample(t, `## group1 // abdc // keys1 ##
## other // thing // keys2 ##`)

	if results := Filter(meta, "gro", keyconfig.Modifiers{}); len(results) != 1 {
		t.Fatalf("setup pass expected 1 result, got %d", len(results))
	}
	if results := Filter(meta, "thing", keyconfig.Modifiers{}); len(results) != 1 {
		t.Fatalf("second pass expected 1 result, got %d", len(results))
	}

	stale := meta.Entries()[0]
	if stale.GroupSpans != nil || stale.DescriptionSpans != nil {
		t.Errorf("non-matching entry kept stale spans: %v %v", stale.GroupSpans, stale.DescriptionSpans)
	}
}

// Whatever the query, concatenating each field's spans reproduces the field.
func TestFilterRoundTrip(t *testing.T) {
	meta := parseSample(t, `## wm // move workspace to output left // $mod+Ctrl+$alt+Left ##
## apps // open terminal // $mod+grave ##
## group1 // abdc // keys1 ##`)

	queries := []string{"", "a", "wm", "move", "group1 abdc", "ter", "o o"}
	for _, q := range queries {
		for _, e := range Filter(meta, q, keyconfig.Modifiers{}) {
			if got := joinSpans(e.GroupSpans); got != e.Group {
				t.Errorf("query %q: group round-trip got %q, want %q", q, got, e.Group)
			}
			if got := joinSpans(e.DescriptionSpans); got != e.Description {
				t.Errorf("query %q: description round-trip got %q, want %q", q, got, e.Description)
			}
		}
	}
}

func joinSpans(spans []keyconfig.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func TestFilterDoesNotReorderStorage(t *testing.T) {
	meta := parseSample(t, `## zz // zz // k1 ##
## aa // aa // k2 ##`)

	before := append([]*keyconfig.Entry(nil), meta.Entries()...)
	Filter(meta, "a", keyconfig.Modifiers{})
	for i, e := range meta.Entries() {
		if e != before[i] {
			t.Fatalf("backing storage was reordered at %d", i)
		}
	}
}
