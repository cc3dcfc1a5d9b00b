// Package tui is the interactive picker: a query line over the ranked
// binding list, re-filtered on every keystroke.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/davidwl/keyhint/internal/utils"
	"github.com/davidwl/keyhint/pkg/config"
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/davidwl/keyhint/pkg/rank"
	"github.com/davidwl/keyhint/pkg/suggest"
)

// Model drives the picker. The selected row is an index into the ranked
// view, never a field on an entry, so a shrinking result set cannot leave a
// dangling selection.
type Model struct {
	input   textinput.Model
	meta    *keyconfig.Metadata
	vocab   *suggest.Vocabulary
	cfg     *config.Config
	styles  Styles
	results []*keyconfig.Entry
	mods    keyconfig.Modifiers
	sel     int
	width   int

	// Chosen holds the keys of the accepted binding once the user hits
	// Enter; the caller reads it off the final model.
	Chosen string
}

// NewModel builds the picker over an already parsed Metadata set.
func NewModel(meta *keyconfig.Metadata, vocab *suggest.Vocabulary, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter search here..."
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		input:  ti,
		meta:   meta,
		vocab:  vocab,
		cfg:    cfg,
		styles: NewStyles(cfg.UI),
	}
	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refilter runs one full filter pass and clamps the selection into the new
// view.
func (m *Model) refilter() {
	m.results = rank.Filter(m.meta, m.input.Value(), m.mods)
	if max := m.cfg.UI.MaxResults; max > 0 && len(m.results) > max {
		m.results = m.results[:max]
	}
	if m.sel >= len(m.results) {
		m.sel = len(m.results) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

// completeWord replaces the word under the cursor with the top vocabulary
// completion.
func (m *Model) completeWord() {
	word, start := utils.LastWord(m.input.Value())
	if word == "" {
		return
	}
	suggestions := m.vocab.Complete(word, 1)
	if len(suggestions) == 0 {
		return
	}
	completed := m.input.Value()[:start] + suggestions[0].Word
	m.input.SetValue(completed)
	m.input.SetCursor(len(completed))
	log.Debugf("completed %q to %q", word, suggestions[0].Word)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.sel < len(m.results) {
				m.Chosen = m.results[m.sel].Keys
			}
			return m, tea.Quit
		case "up":
			if m.sel > 0 {
				m.sel--
			}
			return m, nil
		case "down":
			if m.sel < len(m.results)-1 {
				m.sel++
			}
			return m, nil
		case "tab":
			m.completeWord()
			m.refilter()
			return m, nil
		case "ctrl+s":
			m.mods.Shift = !m.mods.Shift
			m.refilter()
			return m, nil
		case "ctrl+t":
			m.mods.Control = !m.mods.Control
			m.refilter()
			return m, nil
		case "ctrl+a":
			m.mods.Alt = !m.mods.Alt
			m.refilter()
			return m, nil
		case "ctrl+d":
			m.mods.Meta = !m.mods.Meta
			m.refilter()
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.refilter()
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.modifierLine())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(m.styles.Dim.Render("no results"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range m.results {
		cursor := "  "
		if i == m.sel {
			cursor = m.styles.Selected.Render("> ")
		}
		line := cursor +
			m.styles.Group.Render(m.renderSpans(e.GroupSpans)) +
			"  " +
			m.renderSpans(e.DescriptionSpans) +
			"  " +
			m.styles.Keys.Render(e.Keys)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("↑/↓ select · enter accept · tab complete · ^s/^t/^a/^d toggle shift/ctrl/alt/mod · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// modifierLine shows which modifier filters are held.
func (m Model) modifierLine() string {
	if !m.mods.Any() {
		return m.styles.Dim.Render("modifiers: none")
	}
	var held []string
	if m.mods.Shift {
		held = append(held, "shift")
	}
	if m.mods.Control {
		held = append(held, "ctrl")
	}
	if m.mods.Alt {
		held = append(held, "alt")
	}
	if m.mods.Meta {
		held = append(held, "mod")
	}
	return m.styles.Modifier.Render("modifiers: " + strings.Join(held, "+"))
}

// renderSpans styles the matched runs of a field.
func (m Model) renderSpans(spans []keyconfig.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Matched {
			b.WriteString(m.styles.Matched.Render(sp.Text))
		} else {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}
