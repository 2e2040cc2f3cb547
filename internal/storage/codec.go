package storage

import (
	"encoding/json"
	"errors"

	"neurovis/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeTrainingRun(run model.TrainingRun) ([]byte, error) {
	return json.Marshal(run)
}

func DecodeTrainingRun(data []byte) (model.TrainingRun, error) {
	var run model.TrainingRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.TrainingRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.TrainingRun{}, err
	}
	return run, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
