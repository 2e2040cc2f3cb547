package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// TrainingExample is one labeled sample. Target is +1 or -1.
type TrainingExample struct {
	Inputs []float64 `json:"inputs"`
	Target int       `json:"target"`
}

// PredictionRecord pairs a dataset case with the model's output for it.
type PredictionRecord struct {
	Inputs    []float64 `json:"inputs"`
	Target    int       `json:"target"`
	Predicted int       `json:"predicted"`
}

// TrainingRun is the persisted outcome of one training session.
type TrainingRun struct {
	VersionedRecord
	ID              string             `json:"id"`
	CreatedAtUTC    string             `json:"created_at_utc"`
	Seed            int64              `json:"seed"`
	LearningRate    float64            `json:"learning_rate"`
	MaxEpochs       int                `json:"max_epochs"`
	EpochsRun       int                `json:"epochs_run"`
	Converged       bool               `json:"converged"`
	Threshold       string             `json:"threshold"`
	Weights         []float64          `json:"weights"`
	MismatchHistory []int              `json:"mismatch_history"`
	Predictions     []PredictionRecord `json:"predictions"`
}
