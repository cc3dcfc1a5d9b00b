// Package rank filters and orders keybinding entries against a query and the
// currently held modifier keys, annotating matches for highlighting.
package rank

import (
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/sahilm/fuzzy"
)

// entrySource adapts a Metadata entry list to fuzzy.Source. The match target
// for each entry is its group and description joined by one space.
type entrySource []*keyconfig.Entry

func (s entrySource) String(i int) string { return s[i].Target() }
func (s entrySource) Len() int            { return len(s) }

// Filter runs one complete pass over meta: every entry is fuzzy-matched
// against query, gated on mods, and annotated with fresh match spans. The
// returned view is ordered by descending match score and shares the
// underlying entries with meta; nothing is copied or reordered in storage.
//
// An empty query matches every entry (modifier gating still applies). A
// result of length zero is a normal outcome, not an error.
//
// Filter mutates the entries' span fields, so concurrent passes over the
// same Metadata are not allowed.
func Filter(meta *keyconfig.Metadata, query string, mods keyconfig.Modifiers) []*keyconfig.Entry {
	entries := meta.Entries()
	for _, e := range entries {
		e.ClearSpans()
	}

	if query == "" {
		results := make([]*keyconfig.Entry, 0, len(entries))
		for _, e := range entries {
			if !mods.Satisfied(e.Keys) {
				continue
			}
			annotate(e, nil)
			results = append(results, e)
		}
		return results
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))

	// fuzzy.FindFrom already sorts by descending score, so collecting in
	// match order keeps the ranking.
	var results []*keyconfig.Entry
	for _, m := range matches {
		e := entries[m.Index]
		if !mods.Satisfied(e.Keys) {
			continue
		}
		annotate(e, m.MatchedIndexes)
		results = append(results, e)
	}
	return results
}

// annotate rebuilds both span sequences of e from the matched indexes into
// its concatenated target text. Indexes below len(Group) belong to the
// group, the one equal to it is the joining space and is dropped, and the
// rest shift down into description-local positions.
func annotate(e *keyconfig.Entry, indexes []int) {
	split := len(e.Group)
	var groupIdx, descIdx []int
	for _, idx := range indexes {
		switch {
		case idx < split:
			groupIdx = append(groupIdx, idx)
		case idx > split:
			descIdx = append(descIdx, idx-split-1)
		}
	}
	e.GroupSpans = BuildSpans(e.Group, groupIdx)
	e.DescriptionSpans = BuildSpans(e.Description, descIdx)
}
