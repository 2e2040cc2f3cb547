package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"neurovis/internal/model"
	"neurovis/internal/storage"
)

const runFile = "run.json"

// ExportRun writes a training-run record to <dir>/<run-id>/run.json and
// returns the run's directory.
func ExportRun(dir string, run model.TrainingRun) (string, error) {
	if run.ID == "" {
		return "", fmt.Errorf("training run has no id")
	}

	runDir := filepath.Join(dir, run.ID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	path := filepath.Join(runDir, runFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return runDir, nil
}

// LoadRun reads a run.json artifact back into a record, enforcing the
// storage codec's version check.
func LoadRun(path string) (model.TrainingRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TrainingRun{}, err
	}
	return storage.DecodeTrainingRun(data)
}
