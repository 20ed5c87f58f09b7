package lstar

import (
	"errors"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// ErrNotResettable is returned when the teacher's black box cannot be
// reset; L*'s observation table construction assumes every row can be
// queried from a clean start.
var ErrNotResettable = errors.New("lstar: teacher's black box must be resettable")

// CEPolicy turns a counterexample into an enlargement of S and/or E.
// It must guarantee the table is no longer closed/consistent in the
// way the counterexample exposed, without adding a suffix already in
// E. See the policies in policies.go for the five named strategies.
type CEPolicy func(ce []fsm.Input, t *table, S, E *[][]fsm.Input)

// Learn runs L* against teacher, using policy to process
// counterexamples and checkConsistency to decide whether to run the
// consistency check (disabling it trades extra EQs for cheaper rounds
// on teachers where inconsistency is rare).
func Learn(teacher blackbox.Teacher, policy CEPolicy, checkConsistency bool) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}
	numInputs := teacher.NumInputs()
	kind := teacher.ModelType()
	probe := fsm.Create(kind, 0, 0, 0)
	isOutputState := probe.IsOutputState()
	isOutputTransition := probe.IsOutputTransition()

	// capacity 0: unbounded, since the conjecture grows a state at a
	// time as L* discovers them.
	conjecture := fsm.Create(kind, 0, numInputs, teacher.NumOutputs())

	var S, E [][]fsm.Input
	S = append(S, []fsm.Input{})
	t := newTable()
	t.setRow([]fsm.Input{}, nil)
	for i := 0; i < numInputs; i++ {
		t.setRow([]fsm.Input{fsm.Input(i)}, nil)
	}
	if isOutputState {
		E = append(E, []fsm.Input{fsm.StoutInput})
	} else {
		for i := 0; i < numInputs; i++ {
			E = append(E, []fsm.Input{fsm.Input(i)})
		}
	}
	fillRowsOnE(teacher, t, E)

	if isOutputState {
		firstOut := t.row([]fsm.Input{})[0][0]
		conjecture.AddState(firstOut)
	} else {
		conjecture.AddState(fsm.DefaultOutput)
	}

	unlearned := true
	for unlearned {
		if checkConsistency {
			checkConsistencyPass(teacher, t, S, &E, numInputs)
		}
		grew := closeTable(teacher, conjecture, t, &S, E, numInputs, isOutputState, isOutputTransition)
		if grew {
			continue
		}

		ce := teacher.EquivalenceQuery(conjecture)
		if len(ce) == 0 {
			unlearned = false
			continue
		}
		if isOutputState && !isOutputTransition && len(ce) > 0 && ce[len(ce)-1] == fsm.StoutInput {
			ce = ce[:len(ce)-1]
		}
		sizeBefore := len(S)
		policy(ce, t, &S, &E)
		for i := sizeBefore; i < len(S); i++ {
			fillRowOnS(teacher, t, E, S[i])
		}
		if len(t.row(S[0])) != len(E) {
			fillRowsOnE(teacher, t, E)
		}
	}
	return conjecture, nil
}

// closeTable runs one pass of L*'s "make closed" step: for every
// state access sequence and every input, it checks whether the
// resulting row already matches some known state's row; if not, a new
// state is added to the conjecture (and its own one-step extensions
// are pre-populated in the table, matching the invariant that every
// element of S has all its one-step extensions already present).
// Returns true iff at least one new state was added.
func closeTable(teacher blackbox.Teacher, conjecture *fsm.DFSM, t *table, S *[][]fsm.Input, E [][]fsm.Input, numInputs int, isOutputState, isOutputTransition bool) bool {
	grew := false
	for state := 0; state < len(*S); state++ {
		for input := 0; input < numInputs; input++ {
			nextStateSeq := append(append([]fsm.Input{}, (*S)[state]...), fsm.Input(input))
			nextState := -1
			for ref := 0; ref < len(*S); ref++ {
				if distinguishingColumn(t, nextStateSeq, (*S)[ref]) == -1 {
					nextState = ref
					break
				}
			}
			curNext := conjecture.GetNextState(fsm.State(state), fsm.Input(input))
			if nextState == -1 {
				for i := 0; i < numInputs; i++ {
					ext := append(append([]fsm.Input{}, nextStateSeq...), fsm.Input(i))
					fillRowOnS(teacher, t, E, ext)
				}
				out := fsm.DefaultOutput
				if isOutputState {
					out = t.row(nextStateSeq)[0][0]
				}
				id, _ := conjecture.AddState(out)
				trOut := fsm.DefaultOutput
				if isOutputTransition {
					full := append(append([]fsm.Input{}, (*S)[state]...), fsm.Input(input))
					outs := teacher.ResetAndQuerySeq(full)
					trOut = outs[len(full)-1]
				}
				conjecture.SetTransition(fsm.State(state), fsm.Input(input), id, trOut)
				*S = append(*S, nextStateSeq)
				grew = true
			} else if curNext == fsm.NullState {
				trOut := fsm.DefaultOutput
				if isOutputTransition {
					full := append(append([]fsm.Input{}, (*S)[state]...), fsm.Input(input))
					outs := teacher.ResetAndQuerySeq(full)
					trOut = outs[len(full)-1]
				}
				conjecture.SetTransition(fsm.State(state), fsm.Input(input), fsm.State(nextState), trOut)
			} else if curNext != fsm.State(nextState) {
				trOut := fsm.DefaultOutput
				if isOutputTransition {
					trOut = conjecture.GetOutput(fsm.State(state), fsm.Input(input))
				}
				conjecture.SetTransition(fsm.State(state), fsm.Input(input), fsm.State(nextState), trOut)
			}
		}
	}
	return grew
}

func fillRowsOnE(teacher blackbox.Teacher, t *table, E [][]fsm.Input) {
	for key, row := range t.rows {
		prefix := decodeKey(key)
		for i := len(row); i < len(E); i++ {
			full := append(append([]fsm.Input{}, prefix...), E[i]...)
			outs := teacher.ResetAndQuerySeq(full)
			row = append(row, append([]fsm.Output{}, outs[len(prefix):]...))
		}
		t.rows[key] = row
	}
}

func fillRowOnS(teacher blackbox.Teacher, t *table, E [][]fsm.Input, seq []fsm.Input) {
	row := make([][]fsm.Output, len(E))
	for i, suf := range E {
		full := append(append([]fsm.Input{}, seq...), suf...)
		outs := teacher.ResetAndQuerySeq(full)
		row[i] = append([]fsm.Output{}, outs[len(seq):]...)
	}
	t.setRow(seq, row)
}

func decodeKey(key string) []fsm.Input {
	if key == "" {
		return nil
	}
	var out []fsm.Input
	n := 0
	neg := false
	for i := 0; i <= len(key); i++ {
		if i == len(key) || key[i] == ',' {
			if neg {
				n = -n
			}
			out = append(out, fsm.Input(n))
			n, neg = 0, false
			continue
		}
		if key[i] == '-' {
			neg = true
			continue
		}
		n = n*10 + int(key[i]-'0')
	}
	return out
}

// checkConsistencyPass enforces L*'s consistency property: for every
// two access sequences whose rows currently agree, their one-step
// extensions under every input must agree too; if not, the
// distinguishing suffix found on the extension (prefixed by that
// input) is added to E and the table is refilled.
func checkConsistencyPass(teacher blackbox.Teacher, t *table, S [][]fsm.Input, E *[][]fsm.Input, numInputs int) {
	for i := 0; i < len(S); i++ {
		for j := i + 1; j < len(S); j++ {
			if distinguishingColumn(t, S[i], S[j]) != -1 {
				continue
			}
			for input := 0; input < numInputs; input++ {
				ns1 := append(append([]fsm.Input{}, S[i]...), fsm.Input(input))
				ns2 := append(append([]fsm.Input{}, S[j]...), fsm.Input(input))
				idx := distinguishingColumn(t, ns1, ns2)
				if idx == -1 {
					continue
				}
				dist := append([]fsm.Input{fsm.Input(input)}, (*E)[idx]...)
				*E = append(*E, dist)
				fillRowsOnE(teacher, t, *E)
				break
			}
		}
	}
}
