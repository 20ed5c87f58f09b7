package fsmfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// FormatSequence renders an input sequence the way batch-run logs and
// CSV diagnostics print one: comma-joined, each fsm.StoutInput element
// spelled "S" and every other input as its decimal value.
func FormatSequence(seq []fsm.Input) string {
	parts := make([]string, len(seq))
	for i, in := range seq {
		if in == fsm.StoutInput {
			parts[i] = "S"
			continue
		}
		parts[i] = strconv.Itoa(int(in))
	}
	return strings.Join(parts, ",")
}

// ParseSequence is FormatSequence's inverse. An empty string parses as
// an empty (zero-length) sequence.
func ParseSequence(s string) ([]fsm.Input, error) {
	if s == "" {
		return nil, nil
	}
	tokens := strings.Split(s, ",")
	seq := make([]fsm.Input, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "S" {
			seq[i] = fsm.StoutInput
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: sequence token %q: %v", ErrMalformed, tok, err)
		}
		seq[i] = fsm.Input(v)
	}
	return seq, nil
}
