package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// batchConfig is the YAML shape `batch` loads: a full experiment
// sweep description, so a batch can be checked into version control
// and re-run identically instead of reconstructing a long flag line.
type batchConfig struct {
	Directory       string `yaml:"directory"`
	AlgorithmMask   string `yaml:"algorithmMask"`
	MinExtraStates  int    `yaml:"minExtraStates"`
	MaxExtraStates  int    `yaml:"maxExtraStates"`
	MachineTypeMask string `yaml:"machineTypeMask"`
	StateRange      string `yaml:"stateRange"`
	InputRange      string `yaml:"inputRange"`
	CheckCorrect    bool   `yaml:"checkCorrectness"`
	StartFilename   string `yaml:"startFilename"`
	EndFilename     string `yaml:"endFilename"`
	OutputCSV       string `yaml:"outputCsv"`
}

func loadBatchConfig(path string) (batchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchConfig{}, err
	}
	var cfg batchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return batchConfig{}, err
	}
	if cfg.MaxExtraStates == 0 {
		cfg.MaxExtraStates = 2
	}
	if cfg.AlgorithmMask == "" {
		cfg.AlgorithmMask = "all"
	}
	if cfg.MachineTypeMask == "" {
		cfg.MachineTypeMask = "all"
	}
	return cfg, nil
}

func (cfg batchConfig) toRunFlags() runFlags {
	return runFlags{
		target:          cfg.Directory,
		algorithmMask:   cfg.AlgorithmMask,
		minExtraStates:  cfg.MinExtraStates,
		maxExtraStates:  cfg.MaxExtraStates,
		machineTypeMask: cfg.MachineTypeMask,
		stateRange:      cfg.StateRange,
		inputRange:      cfg.InputRange,
		checkCorrect:    cfg.CheckCorrect,
		startFilename:   cfg.StartFilename,
		endFilename:     cfg.EndFilename,
		outputCSV:       cfg.OutputCSV,
	}
}
