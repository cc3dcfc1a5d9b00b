// Package keyconfig extracts annotated keybinding metadata from i3 config text.
//
// Bindings are described by tagged comment lines of the form
//
//	## group // description // keys ##
//
// which i3 itself ignores but Parse collects into an ordered Metadata set.
package keyconfig

// Span is a contiguous run of field text, tagged as matched or not by the
// last filter pass. Concatenating a field's span texts in order yields the
// original field string exactly.
type Span struct {
	Text    string
	Matched bool
}

// Entry is one parsed keybinding record. Group, Description and Keys are
// fixed at parse time. GroupSpans and DescriptionSpans are transient
// highlight annotations, rewritten on every filter pass and nil before the
// first one.
type Entry struct {
	Group       string
	Description string
	Keys        string

	GroupSpans       []Span
	DescriptionSpans []Span
}

// Target returns the text the fuzzy matcher runs against: group and
// description joined by a single space.
func (e *Entry) Target() string {
	return e.Group + " " + e.Description
}

// ClearSpans drops any highlight annotations from a previous filter pass.
func (e *Entry) ClearSpans() {
	e.GroupSpans = nil
	e.DescriptionSpans = nil
}

// Metadata is the ordered collection of entries parsed from one config text.
// It is owned by a single caller; filter passes mutate only the entries'
// span fields and never add, remove or reorder entries.
type Metadata struct {
	entries []*Entry
}

// Entries returns the backing entry list in source order.
func (m *Metadata) Entries() []*Entry {
	return m.entries
}

// Len returns the number of parsed entries.
func (m *Metadata) Len() int {
	return len(m.entries)
}
