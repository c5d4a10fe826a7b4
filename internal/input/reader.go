// Package input yields normalized lines from a UTF-8 text stream.
// Whitespace is runs of ASCII space and tab only: other Unicode space
// characters are token content for the analyzer, never separators.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Lines longer than maxLineBytes fail the read instead of being
// silently truncated.
const maxLineBytes = 4 << 20

// Line is one input line after whitespace normalization. RuneCount is
// the codepoint count of the raw line, before normalization.
type Line struct {
	Number    uint64
	Location  string
	Text      string
	RuneCount uint64
}

// Reader reads lines, strips and collapses ASCII whitespace, and
// assigns locations: the 1-based line number, or the line's first
// field when sentence-ID mode is on.
type Reader struct {
	scanner     *bufio.Scanner
	sentenceIDs bool
	lineNo      uint64
}

// NewReader wraps r. sentenceIDs selects sentence-ID location mode.
func NewReader(r io.Reader, sentenceIDs bool) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &Reader{scanner: sc, sentenceIDs: sentenceIDs}
}

// Next returns the next line. The boolean is false at end of input.
func (r *Reader) Next() (Line, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Line{}, false, fmt.Errorf("read input: %w", err)
		}
		return Line{}, false, nil
	}
	r.lineNo++
	raw := r.scanner.Text()
	runeCount, err := safecast.Conv[uint64](utf8.RuneCountInString(raw))
	if err != nil {
		return Line{}, false, fmt.Errorf("line %d length overflow: %w", r.lineNo, err)
	}
	text := Normalize(raw)
	ln := Line{
		Number:    r.lineNo,
		Location:  strconv.FormatUint(r.lineNo, 10),
		Text:      text,
		RuneCount: runeCount,
	}
	if r.sentenceIDs {
		if id, rest, ok := strings.Cut(text, " "); ok {
			ln.Location = id
			ln.Text = rest
		} else if text != "" {
			ln.Location = text
			ln.Text = ""
		}
	}
	return ln, true, nil
}

// Normalize strips leading and trailing ASCII space/tab and collapses
// internal runs to single spaces.
func Normalize(s string) string {
	var b strings.Builder
	inRun := true // swallow leading whitespace
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			if !inRun {
				pendingSpace = true
				inRun = true
			}
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteByte(c)
		inRun = false
	}
	return b.String()
}

// Split cuts a normalized line into tokens. The input must already be
// normalized, so tokens are simply the space-separated fields.
func Split(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
