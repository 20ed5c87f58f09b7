package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// minimizeCopy returns a minimized clone of m, leaving m itself
// untouched (fsm.DFSM.Minimize mutates its receiver in place).
func minimizeCopy(m *fsm.DFSM) *fsm.DFSM {
	clone := fsm.Create(m.Kind(), m.NumStates(), m.NumInputs(), m.NumOutputs())
	for s := 0; s < m.NumStates(); s++ {
		clone.AddState(fsm.DefaultOutput)
		if m.IsOutputState() {
			clone.SetOutput(fsm.State(s), m.GetOutput(fsm.State(s), fsm.StoutInput))
		}
	}
	for s := 0; s < m.NumStates(); s++ {
		for i := 0; i < m.NumInputs(); i++ {
			if !m.HasTransition(fsm.State(s), fsm.Input(i)) {
				continue
			}
			t := m.GetNextState(fsm.State(s), fsm.Input(i))
			to := fsm.DefaultOutput
			if m.IsOutputTransition() {
				to = m.GetOutput(fsm.State(s), fsm.Input(i))
			}
			clone.SetTransition(fsm.State(s), fsm.Input(i), t, to)
		}
	}
	clone.SetInitialState(m.InitialState())
	clone.Minimize()
	return clone
}

// splitLines splits text into non-blank, trimmed lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitCSVList splits a comma-separated flag value, trimming
// whitespace and dropping empty entries.
func splitCSVList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// kindNames maps the machine-type-mask vocabulary to fsm.Kind.
var kindNames = map[string]fsm.Kind{
	"mealy": fsm.Mealy,
	"moore": fsm.Moore,
	"dfa":   fsm.DFA,
	"dfsm":  fsm.DFSM,
}

func kindName(k fsm.Kind) string {
	for name, kk := range kindNames {
		if kk == k {
			return name
		}
	}
	return strconv.Itoa(int(k))
}

// parseKindMask parses a comma-separated machine-type-mask
// ("mealy,moore" or "all") into a set of accepted kinds.
func parseKindMask(mask string) (map[fsm.Kind]bool, error) {
	out := map[fsm.Kind]bool{}
	if mask == "" || mask == "all" {
		for _, k := range kindNames {
			out[k] = true
		}
		return out, nil
	}
	for _, name := range splitCSVList(mask) {
		k, ok := kindNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("fsmlearn: unknown machine type %q", name)
		}
		out[k] = true
	}
	return out, nil
}

// intRange is an inclusive [Min, Max] bound parsed from "min-max" or
// a bare "n" (meaning Min == Max == n).
type intRange struct {
	Min, Max int
}

func (r intRange) contains(n int) bool { return n >= r.Min && n <= r.Max }

func parseIntRange(s string, defaultMin, defaultMax int) (intRange, error) {
	if s == "" {
		return intRange{defaultMin, defaultMax}, nil
	}
	if !strings.Contains(s, "-") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return intRange{}, fmt.Errorf("fsmlearn: invalid range %q: %w", s, err)
		}
		return intRange{n, n}, nil
	}
	parts := strings.SplitN(s, "-", 2)
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return intRange{}, fmt.Errorf("fsmlearn: invalid range %q", s)
	}
	return intRange{lo, hi}, nil
}

// inFilenameRange reports whether name falls within [start, end]
// lexicographically; an empty bound means unbounded on that side.
func inFilenameRange(name, start, end string) bool {
	if start != "" && name < start {
		return false
	}
	if end != "" && name > end {
		return false
	}
	return true
}
