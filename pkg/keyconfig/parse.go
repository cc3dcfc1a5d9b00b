package keyconfig

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrMalformed reports that the tag grammar itself could not be constructed.
// Per-line non-matches are never an error, they are ordinary config lines.
var ErrMalformed = fmt.Errorf("keyconfig: malformed tag grammar")

const tagPattern = `^##(?P<group>.*)//(?P<description>.*)//(?P<keys>.*?)##`

// Parse scans config text line by line and collects every tagged comment
// into a Metadata set, in source order. Lines that do not carry a tag are
// skipped. Duplicate tags stay distinct. Empty input yields an empty,
// non-error result.
func Parse(text string) (*Metadata, error) {
	re, err := regexp.Compile(tagPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	meta := &Metadata{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		// A plain comment starts with a single '#'. It never carries a
		// tag, even if '##' shows up later in the line.
		if !strings.HasPrefix(line, "##") {
			continue
		}
		fields := re.FindStringSubmatch(line)
		if fields == nil {
			continue
		}
		meta.entries = append(meta.entries, &Entry{
			Group:       strings.TrimSpace(fields[re.SubexpIndex("group")]),
			Description: strings.TrimSpace(fields[re.SubexpIndex("description")]),
			Keys:        strings.TrimSpace(fields[re.SubexpIndex("keys")]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keyconfig: scanning config text: %w", err)
	}

	log.Debugf("parsed %d tagged bindings", len(meta.entries))
	return meta, nil
}
