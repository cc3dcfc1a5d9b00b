// Package suggest completes query words from the vocabulary of the parsed
// bindings, so a user can Tab through group and description words instead of
// typing them out.
package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/davidwl/keyhint/internal/utils"
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is one vocabulary word with the number of bindings it occurs in.
type Suggestion struct {
	Word  string
	Count int
}

// Vocabulary indexes the words of all entry groups and descriptions in a
// patricia trie, keyed lowercase, with occurrence counts as items.
type Vocabulary struct {
	trie       *patricia.Trie
	totalWords int
}

// NewVocabulary builds the vocabulary for an already parsed Metadata set.
func NewVocabulary(meta *keyconfig.Metadata) *Vocabulary {
	v := &Vocabulary{trie: patricia.NewTrie()}
	for _, e := range meta.Entries() {
		for _, word := range utils.SplitWords(e.Target()) {
			v.add(word)
		}
	}
	log.Debugf("vocabulary indexed %d distinct words", v.totalWords)
	return v
}

func (v *Vocabulary) add(word string) {
	prefix := patricia.Prefix(word)
	if item := v.trie.Get(prefix); item != nil {
		v.trie.Set(prefix, item.(int)+1)
		return
	}
	v.trie.Insert(prefix, 1)
	v.totalWords++
}

// Complete returns up to limit vocabulary words starting with prefix,
// most frequent first. The prefix itself is excluded: completing a word the
// user already finished typing is useless. Empty prefix yields nothing.
func (v *Vocabulary) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" || v.trie == nil {
		return nil
	}
	lower := utils.SplitWords(prefix)
	if len(lower) != 1 {
		return nil
	}
	lowerPrefix := lower[0]

	var suggestions []Suggestion
	err := v.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}
		count, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			count = 1
		}
		suggestions = append(suggestions, Suggestion{Word: word, Count: count})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Count > suggestions[j].Count
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Stats returns statistics about the indexed vocabulary
func (v *Vocabulary) Stats() map[string]int {
	return map[string]int{
		"totalWords": v.totalWords,
	}
}
