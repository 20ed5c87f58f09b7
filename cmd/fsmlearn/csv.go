package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// resultRow is one row of the output CSV: one (FSM file, extraStates,
// algorithm) combination.
type resultRow struct {
	CorrectOrIndistMachines string
	FSMtype                 string
	States                  int
	Inputs                  int
	Outputs                 int
	ExtraStates             int
	Resets                  int
	Symbols                 int
	Size                    int
	Exploration             int
	Seconds                 float64
	AlgorithmType           string
	Algorithm               string
	AlgID                   string
	FileName                string
	RunID                   uuid.UUID
}

var csvHeader = []string{
	"Correct/IndistMachines", "FSMtype", "States", "Inputs", "Outputs",
	"ES", "Resets", "Symbols", "Size", "Exploration", "seconds",
	"AlgorithmType", "Algorithm", "AlgId", "fileName", "runId",
}

// resultWriter streams resultRow values as CSV, flushing the header
// exactly once on the first Write.
type resultWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func newResultWriter(w io.Writer) *resultWriter {
	return &resultWriter{w: csv.NewWriter(w)}
}

func (rw *resultWriter) Write(row resultRow) error {
	if !rw.wroteHeader {
		if err := rw.w.Write(csvHeader); err != nil {
			return err
		}
		rw.wroteHeader = true
	}
	record := []string{
		row.CorrectOrIndistMachines,
		row.FSMtype,
		strconv.Itoa(row.States),
		strconv.Itoa(row.Inputs),
		strconv.Itoa(row.Outputs),
		strconv.Itoa(row.ExtraStates),
		strconv.Itoa(row.Resets),
		strconv.Itoa(row.Symbols),
		strconv.Itoa(row.Size),
		strconv.Itoa(row.Exploration),
		strconv.FormatFloat(row.Seconds, 'f', 6, 64),
		row.AlgorithmType,
		row.Algorithm,
		row.AlgID,
		row.FileName,
		row.RunID.String(),
	}
	return rw.w.Write(record)
}

func (rw *resultWriter) Flush() error {
	rw.w.Flush()
	return rw.w.Error()
}
