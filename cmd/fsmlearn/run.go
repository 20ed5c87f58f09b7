package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/fsmfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runFlags struct {
	target          string
	algorithm       string
	algorithmMask   string
	minExtraStates  int
	maxExtraStates  int
	machineTypeMask string
	stateRange      string
	inputRange      string
	checkCorrect    bool
	startFilename   string
	endFilename     string
	outputCSV       string
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Learn one or more FSM files with the selected algorithm(s)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.target, "file", "", "path to a .fsm file or a directory of them")
	fl.StringVar(&f.algorithm, "algorithm", "", "single algorithm id (see algorithm-mask for the full list); overrides algorithm-mask")
	fl.StringVar(&f.algorithmMask, "algorithm-mask", "all", "comma-separated algorithm ids, or \"all\"")
	fl.IntVar(&f.minExtraStates, "min-extra-states", 0, "minimum extra-states bound to sweep")
	fl.IntVar(&f.maxExtraStates, "max-extra-states", 2, "maximum extra-states bound to sweep")
	fl.StringVar(&f.machineTypeMask, "machine-type-mask", "all", "comma-separated machine kinds (mealy,moore,dfa,dfsm), or \"all\"")
	fl.StringVar(&f.stateRange, "state-range", "", "inclusive min-max filter on a file's state count")
	fl.StringVar(&f.inputRange, "input-range", "", "inclusive min-max filter on a file's input count")
	fl.BoolVar(&f.checkCorrect, "check-correctness", true, "verify the conjecture against the loaded reference via minimize+isomorphism")
	fl.StringVar(&f.startFilename, "start-filename", "", "skip files lexicographically before this name")
	fl.StringVar(&f.endFilename, "end-filename", "", "skip files lexicographically after this name")
	fl.StringVar(&f.outputCSV, "output-csv", "", "CSV output path (default: stdout)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runRun(f runFlags) error {
	kinds, err := parseKindMask(f.machineTypeMask)
	if err != nil {
		return errors.Wrap(err, "invalid machine-type-mask")
	}
	stateRange, err := parseIntRange(f.stateRange, 0, 1<<30)
	if err != nil {
		return errors.Wrap(err, "invalid state-range")
	}
	inputRange, err := parseIntRange(f.inputRange, 0, 1<<30)
	if err != nil {
		return errors.Wrap(err, "invalid input-range")
	}

	var algs []algorithmEntry
	if f.algorithm != "" {
		a, err := lookupAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		algs = []algorithmEntry{a}
	} else {
		algs, err = selectAlgorithms(f.algorithmMask)
		if err != nil {
			return err
		}
	}

	paths, err := targetFiles(f.target, f.startFilename, f.endFilename)
	if err != nil {
		return errors.Wrap(err, "resolving target files")
	}

	out := os.Stdout
	if f.outputCSV != "" {
		file, err := os.Create(f.outputCSV)
		if err != nil {
			return errors.Wrap(err, "creating output-csv")
		}
		defer file.Close()
		out = file
	}
	rw := newResultWriter(out)

	for _, path := range paths {
		ref, err := fsmfile.Load(path)
		if err != nil {
			logger.Warn("skipping malformed fsm file", "path", path, "error", err)
			continue
		}
		if !kinds[ref.Kind()] || !stateRange.contains(ref.NumStates()) || !inputRange.contains(ref.NumInputs()) {
			continue
		}

		for es := f.minExtraStates; es <= f.maxExtraStates; es++ {
			for _, alg := range algs {
				row := runOneAlgorithm(ref, path, alg, es, f.checkCorrect)
				if err := rw.Write(row); err != nil {
					return errors.Wrap(err, "writing csv row")
				}
			}
		}
	}
	return rw.Flush()
}

func runOneAlgorithm(ref *fsm.DFSM, path string, alg algorithmEntry, extraStates int, checkCorrect bool) resultRow {
	teacher := blackbox.NewModelTeacher(ref)
	start := time.Now()
	conjecture, err := alg.run(teacher, extraStates)
	elapsed := time.Since(start)

	correct := "n/a"
	if err != nil {
		correct = "error: " + err.Error()
	} else if checkCorrect {
		correct = fmt.Sprintf("%v", fsm.AreIsomorphic(minimizeCopy(conjecture), minimizeCopy(ref)))
	}

	size := 0
	if conjecture != nil {
		size = conjecture.NumStates()
	}

	return resultRow{
		CorrectOrIndistMachines: correct,
		FSMtype:                 kindName(ref.Kind()),
		States:                  ref.NumStates(),
		Inputs:                  ref.NumInputs(),
		Outputs:                 ref.NumOutputs(),
		ExtraStates:             extraStates,
		Resets:                  teacher.AppliedResetCount(),
		Symbols:                 teacher.QueriedSymbolsCount(),
		Size:                    size,
		Exploration:             teacher.OQCount() + teacher.EQCount(),
		Seconds:                 elapsed.Seconds(),
		AlgorithmType:           alg.algType,
		Algorithm:               alg.name,
		AlgID:                   alg.algID,
		FileName:                filepath.Base(path),
		RunID:                   uuid.New(),
	}
}

// targetFiles resolves target to a sorted list of `.fsm` file paths:
// the file itself if target is a file, or ListDir's result filtered
// to [start, end] if target is a directory.
func targetFiles(target, start, end string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	all, err := fsmfile.ListDir(target)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range all {
		if inFilenameRange(filepath.Base(p), start, end) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, errNoFsmFiles
	}
	return out, nil
}
