package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTrainRequestFromConfig(t *testing.T) {
	path := writeConfig(t, `{
		"seed": 1234,
		"learning_rate": 0.05,
		"max_epochs": 50,
		"threshold": "sign"
	}`)

	req, err := loadTrainRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if req.Seed != 1234 {
		t.Fatalf("unexpected seed: %d", req.Seed)
	}
	if req.LearningRate != 0.05 {
		t.Fatalf("unexpected learning rate: %g", req.LearningRate)
	}
	if req.MaxEpochs != 50 {
		t.Fatalf("unexpected epochs: %d", req.MaxEpochs)
	}
	if req.Threshold != "sign" {
		t.Fatalf("unexpected threshold: %s", req.Threshold)
	}
}

func TestLoadTrainRequestRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{"seed": 1, "population": 50}`)
	if _, err := loadTrainRequestFromConfig(path); err == nil {
		t.Fatal("expected error for unknown config key")
	}
}

func TestLoadTrainRequestIgnoresFractionalIntegers(t *testing.T) {
	path := writeConfig(t, `{"max_epochs": 12.5}`)
	req, err := loadTrainRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if req.MaxEpochs != 0 {
		t.Fatalf("fractional epoch count must not coerce: %d", req.MaxEpochs)
	}
}

func TestLoadTrainRequestMissingFile(t *testing.T) {
	if _, err := loadTrainRequestFromConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadTrainRequestMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := loadTrainRequestFromConfig(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
