package fsmfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// Load reads a DFSM from path. A malformed or inconsistent file
// returns a non-nil error and a nil model.
func Load(path string) (*fsm.DFSM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsmfile: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses r in this package's `.fsm` format (see doc.go).
func LoadReader(r io.Reader) (*fsm.DFSM, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	header, err := nextFields(sc)
	if err != nil {
		return nil, err
	}
	if len(header) != 4 {
		return nil, fmt.Errorf("%w: header needs 4 fields, got %d", ErrMalformed, len(header))
	}
	numStates, e1 := strconv.Atoi(header[0])
	numInputs, e2 := strconv.Atoi(header[1])
	numOutputs, e3 := strconv.Atoi(header[2])
	kindInt, e4 := strconv.Atoi(header[3])
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return nil, fmt.Errorf("%w: non-numeric header field", ErrMalformed)
	}
	kind, ok := kindFromInt(kindInt)
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformed, kindInt)
	}

	m := fsm.Create(kind, numStates, numInputs, numOutputs)
	for i := 0; i < numStates; i++ {
		if _, err := m.AddState(fsm.DefaultOutput); err != nil {
			return nil, fmt.Errorf("%w: adding state %d: %v", ErrMalformed, i, err)
		}
	}

	if m.IsOutputState() {
		fields, err := nextFields(sc)
		if err != nil {
			return nil, err
		}
		if len(fields) != numStates {
			return nil, fmt.Errorf("%w: state-output row needs %d fields, got %d", ErrMalformed, numStates, len(fields))
		}
		for s, tok := range fields {
			out, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: state output %q: %v", ErrMalformed, tok, err)
			}
			if err := m.SetOutput(fsm.State(s), fsm.Output(out)); err != nil {
				return nil, fmt.Errorf("%w: state %d output %d: %v", ErrMalformed, s, out, err)
			}
		}
	}

	width := numInputs
	if m.IsOutputTransition() {
		width = numInputs * 2
	}
	for s := 0; s < numStates; s++ {
		fields, err := nextFields(sc)
		if err != nil {
			return nil, err
		}
		if len(fields) != width {
			return nil, fmt.Errorf("%w: state %d transition row needs %d fields, got %d", ErrMalformed, s, width, len(fields))
		}
		for i := 0; i < numInputs; i++ {
			target, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("%w: target %q: %v", ErrMalformed, fields[i], err)
			}
			if target < 0 {
				continue // absent transition sentinel
			}
			out := fsm.DefaultOutput
			if m.IsOutputTransition() {
				o, err := strconv.Atoi(fields[numInputs+i])
				if err != nil {
					return nil, fmt.Errorf("%w: output %q: %v", ErrMalformed, fields[numInputs+i], err)
				}
				out = fsm.Output(o)
			}
			if err := m.SetTransition(fsm.State(s), fsm.Input(i), fsm.State(target), out); err != nil {
				return nil, fmt.Errorf("%w: state %d input %d: %v", ErrMalformed, s, i, err)
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fsmfile: read: %w", err)
	}
	return m, nil
}

// nextFields returns the whitespace-split fields of the next
// non-blank line, or ErrMalformed if the reader is exhausted first.
func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		return strings.Fields(line), nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fsmfile: read: %w", err)
	}
	return nil, fmt.Errorf("%w: unexpected end of file", ErrMalformed)
}

func kindFromInt(i int) (fsm.Kind, bool) {
	switch fsm.Kind(i) {
	case fsm.Mealy, fsm.Moore, fsm.DFA, fsm.DFSM:
		return fsm.Kind(i), true
	default:
		return 0, false
	}
}
