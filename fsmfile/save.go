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

// Save writes m to path in this package's `.fsm` format, creating or
// truncating the file.
func Save(path string, m *fsm.DFSM) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fsmfile: create %s: %w", path, err)
	}
	defer f.Close()
	if err := SaveWriter(f, m); err != nil {
		return err
	}
	return f.Close()
}

// SaveWriter writes m to w in this package's `.fsm` format.
func SaveWriter(w io.Writer, m *fsm.DFSM) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d %d\n", m.NumStates(), m.NumInputs(), m.NumOutputs(), int(m.Kind()))

	if m.IsOutputState() {
		row := make([]string, m.NumStates())
		for s := 0; s < m.NumStates(); s++ {
			row[s] = strconv.Itoa(int(m.GetOutput(fsm.State(s), fsm.StoutInput)))
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}

	for s := 0; s < m.NumStates(); s++ {
		targets := make([]string, m.NumInputs())
		outputs := make([]string, 0, m.NumInputs())
		for i := 0; i < m.NumInputs(); i++ {
			if !m.HasTransition(fsm.State(s), fsm.Input(i)) {
				targets[i] = "-1"
				if m.IsOutputTransition() {
					outputs = append(outputs, "-1")
				}
				continue
			}
			targets[i] = strconv.Itoa(int(m.GetNextState(fsm.State(s), fsm.Input(i))))
			if m.IsOutputTransition() {
				outputs = append(outputs, strconv.Itoa(int(m.GetOutput(fsm.State(s), fsm.Input(i)))))
			}
		}
		row := targets
		if m.IsOutputTransition() {
			row = append(row, outputs...)
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}

	return bw.Flush()
}
