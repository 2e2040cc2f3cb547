package trainer

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"neurovis/internal/dataset"
	"neurovis/internal/model"
	"neurovis/internal/nn"
	"neurovis/internal/storage"
)

// Trainer runs one training session over the fixed dataset. Zero-valued
// fields fall back to the demo constants.
type Trainer struct {
	LearningRate float64
	MaxEpochs    int
	Seed         int64
	Threshold    string
}

// Run builds the dataset and a seeded model, trains it, and assembles the
// session record including post-training predictions for every case.
// Exhausting the epoch budget is recorded, not reported as an error.
func (t Trainer) Run(ctx context.Context) (*nn.Perceptron, model.TrainingRun, error) {
	learningRate := t.LearningRate
	if learningRate == 0 {
		learningRate = dataset.LearningRate
	}
	maxEpochs := t.MaxEpochs
	if maxEpochs == 0 {
		maxEpochs = dataset.MaxEpochs
	}
	threshold := t.Threshold
	if threshold == "" {
		threshold = "sign"
	}
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cases, err := dataset.Cases("gt")
	if err != nil {
		return nil, model.TrainingRun{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	perceptron, err := nn.NewWithThreshold(dataset.NumInputs, learningRate, threshold, rng)
	if err != nil {
		return nil, model.TrainingRun{}, err
	}

	report, err := perceptron.Train(ctx, cases, maxEpochs)
	if err != nil {
		return nil, model.TrainingRun{}, err
	}

	_, predictions, err := dataset.Mismatches(ctx, perceptron.Predict, cases)
	if err != nil {
		return nil, model.TrainingRun{}, err
	}

	run := model.TrainingRun{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:              uuid.NewString(),
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		Seed:            seed,
		LearningRate:    learningRate,
		MaxEpochs:       maxEpochs,
		EpochsRun:       report.EpochsRun,
		Converged:       report.Converged,
		Threshold:       threshold,
		Weights:         perceptron.Weights(),
		MismatchHistory: report.MismatchHistory,
		Predictions:     predictions,
	}
	return perceptron, run, nil
}
