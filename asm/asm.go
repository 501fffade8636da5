// Package asm assembles a hand-written hex byte listing into raw machine
// code. CPUDIAG-family ROMs are not redistributable, so test and demo
// fixtures for this module are written by hand as byte listings and
// assembled with this package instead.
//
// A listing line looks like "XXXX OP A1 A2": a 4-hex-digit address column
// (kept for readability, not otherwise interpreted — bytes are emitted in
// listing order, not seeked to their column) followed by up to three
// space-separated hex byte tokens. Anything from a tab or a "(*" comment
// marker onward is ignored, and lines that don't start with an address
// column (blank lines, stray text) are skipped entirely.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var addrLine = regexp.MustCompile(`^[0-9A-Fa-f]{4}\s+(.*)$`)

// Assemble reads a hex listing from r and returns the assembled bytes,
// zero-filled from 0 up to offset before the listing's own bytes begin.
func Assemble(r io.Reader, offset int) ([]byte, error) {
	out := make([]byte, offset)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		m := addrLine.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rest := m[1]
		if i := strings.IndexAny(rest, "\t("); i >= 0 {
			rest = rest[:i]
		}
		toks := strings.Fields(rest)
		if len(toks) > 3 {
			return nil, fmt.Errorf("line %d: too many byte tokens: %q", line, text)
		}
		for _, tok := range toks {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, text, err)
			}
			out = append(out, byte(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
