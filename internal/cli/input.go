// Package cli handles cmd line input and ranked results for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/davidwl/keyhint/pkg/rank"
)

// InputHandler processes query lines from stdin and prints the ranked
// bindings. Lines starting with ':' toggle the modifier gate between
// queries (:shift :ctrl :alt :mod :clear).
type InputHandler struct {
	meta         *keyconfig.Metadata
	mods         keyconfig.Modifiers
	resultLimit  int
	maxQueryLen  int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(meta *keyconfig.Metadata, limit, maxQueryLen int) *InputHandler {
	return &InputHandler{
		meta:        meta,
		resultLimit: limit,
		maxQueryLen: maxQueryLen,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("KeyHint CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter to see matching bindings (Ctrl+C to exit):")

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			h.handleInput(query)
			continue
		}
		if strings.HasPrefix(query, ":") {
			h.toggleModifier(query)
			continue
		}
		h.handleInput(query)
	}
}

// toggleModifier flips one held-modifier flag for subsequent queries.
func (h *InputHandler) toggleModifier(cmd string) {
	switch cmd {
	case ":shift":
		h.mods.Shift = !h.mods.Shift
	case ":ctrl":
		h.mods.Control = !h.mods.Control
	case ":alt":
		h.mods.Alt = !h.mods.Alt
	case ":mod":
		h.mods.Meta = !h.mods.Meta
	case ":clear":
		h.mods = keyconfig.Modifiers{}
	default:
		log.Warnf("Unknown toggle: %s", cmd)
		return
	}
	log.Printf("modifiers: shift=%v ctrl=%v alt=%v mod=%v",
		h.mods.Shift, h.mods.Control, h.mods.Alt, h.mods.Meta)
}

// handleInput runs a single filter pass for the query.
// Results are formatted and printed to the log with the matched
// characters highlighted.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	if len(query) > h.maxQueryLen {
		log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	results := rank.Filter(h.meta, query, h.mods)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		log.Warnf("No bindings found for query: '%s'", query)
		return
	}
	if len(results) > h.resultLimit && h.resultLimit > 0 {
		results = results[:h.resultLimit]
	}

	log.Printf("Found %d bindings for query '%s':", len(results), query)
	for i, e := range results {
		target := highlightSpans(e.GroupSpans) + " " + highlightSpans(e.DescriptionSpans)
		log.Printf("%2d. %-60s (%s)", i+1, target, e.Keys)
	}
}

// highlightSpans renders a span sequence with matched runs colored.
func highlightSpans(spans []keyconfig.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Matched {
			fmt.Fprintf(&b, "\033[38;5;75m%s\033[0m", sp.Text)
		} else {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}
