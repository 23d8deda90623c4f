package machine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLine parses one input line into a Machine.
//
// Tokens are whitespace-separated. A token wrapped in parentheses is a
// button, one wrapped in braces is the target vector, one wrapped in
// brackets is the light toggle pattern; every other token is ignored.
// Numbers are read by digit accumulation, so stray non-digit bytes inside
// a token are skipped rather than failing the whole line.
//
// A line without a {…} token yields ErrMissingTarget; everything else is
// best-effort (an unparseable button degrades to an empty, no-op button).
func ParseLine(line string) (*Machine, error) {
	m := &Machine{}
	haveTarget := false

	for _, tok := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(tok, "("):
			m.Buttons = append(m.Buttons, Button(scanInts(tok)))
		case strings.HasPrefix(tok, "{"):
			m.Target = scanInts(tok)
			haveTarget = true
		case strings.HasPrefix(tok, "["):
			m.Lights = scanPattern(tok)
		}
	}

	if !haveTarget {
		return nil, ErrMissingTarget
	}

	return m, nil
}

// ParseReader parses one machine per non-empty line of r. Lines that fail
// to parse are skipped (best-effort batch recovery); use ParseLine
// directly when per-line diagnostics are needed. An I/O failure from r is
// returned as-is; a fully empty input yields ErrEmptyInput.
func ParseReader(r io.Reader) ([]*Machine, error) {
	var machines []*Machine

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			continue
		}
		machines = append(machines, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("machine: reading input: %w", err)
	}
	if len(machines) == 0 {
		return nil, ErrEmptyInput
	}

	return machines, nil
}

// scanInts accumulates every maximal digit run in tok into an integer.
// "(1,13)" → [1 13]; "()" → nil; "{3,x5}" → [3 5].
func scanInts(tok string) []int {
	var (
		out []int
		num int
		in  bool
	)
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			in = true
			continue
		}
		if in {
			out = append(out, num)
			num, in = 0, false
		}
	}
	if in {
		out = append(out, num)
	}

	return out
}

// scanPattern reads a light toggle target: '#' means the light ends on,
// '.' (or anything else) off. The surrounding brackets are dropped.
func scanPattern(tok string) []bool {
	tok = strings.TrimPrefix(tok, "[")
	tok = strings.TrimSuffix(tok, "]")
	out := make([]bool, len(tok))
	for i := 0; i < len(tok); i++ {
		out[i] = tok[i] == '#'
	}

	return out
}
