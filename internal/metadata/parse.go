package metadata

import (
	"bytes"
	"regexp"
	"strings"
)

var (
	headerRegex = regexp.MustCompile(`(?s)//[ \t]*==UserScript==[ \t]*\r?\n(.*?)//[ \t]*==/UserScript==[ \t]*(?:\r?\n|$)`)
	entryRegex  = regexp.MustCompile(`^//[ \t]*@(\S+)(?:[ \t]+(.*?))?[ \t]*$`)

	// trailerRegex matches what Compile writes after the closing delimiter:
	// an optional strict directive, an optional CSS constant and one blank line.
	trailerRegex = regexp.MustCompile("^(?:'use strict';\\r?\\n)?(?:const " + CSSVariable + " = `(?:[^`\\\\]|\\\\.)*`;\\r?\\n)?(?:\\r?\\n)?")
)

// Entry is one "@tag value" line of a header.
type Entry struct {
	Tag   string
	Value string
}

// Header is a parsed UserScript block.
type Header struct {
	Entries []Entry

	// Start and End are the byte offsets of the block in the parsed content,
	// End being just past the closing delimiter line.
	Start, End int
}

// Values returns the values of every entry with tag, in order.
func (h *Header) Values(tag string) []string {
	var out []string
	for _, e := range h.Entries {
		if e.Tag == tag {
			out = append(out, e.Value)
		}
	}
	return out
}

// Get returns the first value for tag.
func (h *Header) Get(tag string) (string, bool) {
	for _, e := range h.Entries {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return "", false
}

// Parse extracts the first UserScript block from content.
// Returns ErrNoHeader when there is none.
func Parse(content []byte) (*Header, error) {
	loc := headerRegex.FindSubmatchIndex(content)
	if loc == nil {
		return nil, ErrNoHeader
	}

	h := &Header{Start: loc[0], End: loc[1]}
	body := string(content[loc[2]:loc[3]])
	for _, line := range strings.Split(body, "\n") {
		m := entryRegex.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		h.Entries = append(h.Entries, Entry{Tag: m[1], Value: m[2]})
	}
	return h, nil
}

// Strip removes a leading UserScript block, together with the strict
// directive, CSS constant and blank line Compile appends to it. Content
// that does not start with a header (leading whitespace aside) is returned
// unchanged.
func Strip(content []byte) []byte {
	h, err := Parse(content)
	if err != nil || len(bytes.TrimSpace(content[:h.Start])) != 0 {
		return content
	}
	rest := content[h.End:]
	trailer := trailerRegex.Find(rest)
	return rest[len(trailer):]
}
