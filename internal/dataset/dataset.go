package dataset

import (
	"context"
	"fmt"
	"strings"

	"neurovis/internal/model"
)

// Fixed configuration for the demo session. The four-case parity set is
// not linearly separable, so a single-layer perceptron is expected to
// exhaust its epoch budget without converging on it.
const (
	NumInputs    = 2
	LearningRate = 0.1
	MaxEpochs    = 100
)

func baseCases() []model.TrainingExample {
	return []model.TrainingExample{
		{Inputs: []float64{0, 0}, Target: 1},
		{Inputs: []float64{0, 1}, Target: -1},
		{Inputs: []float64{1, 0}, Target: -1},
		{Inputs: []float64{1, 1}, Target: 1},
	}
}

// Cases returns the dataset for an evaluation mode. "gt" is the training
// ground truth; validation and test reorder and repeat cases.
func Cases(mode string) ([]model.TrainingExample, error) {
	base := baseCases()

	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "gt":
		return base, nil
	case "validation":
		return []model.TrainingExample{
			base[1], base[2], base[0], base[3], base[1], base[2],
		}, nil
	case "test":
		return []model.TrainingExample{
			base[3], base[2], base[1], base[0], base[3], base[0], base[2], base[1],
		}, nil
	default:
		return nil, fmt.Errorf("unsupported dataset mode: %s", mode)
	}
}

// PredictFunc evaluates one input vector to a class label.
type PredictFunc func(inputs []float64) (int, error)

// Mismatches runs predict over cases and returns the mismatch count with a
// per-case record of targets and predictions.
func Mismatches(ctx context.Context, predict PredictFunc, cases []model.TrainingExample) (int, []model.PredictionRecord, error) {
	mismatches := 0
	records := make([]model.PredictionRecord, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		predicted, err := predict(c.Inputs)
		if err != nil {
			return 0, nil, err
		}
		if predicted != c.Target {
			mismatches++
		}
		records = append(records, model.PredictionRecord{
			Inputs:    append([]float64(nil), c.Inputs...),
			Target:    c.Target,
			Predicted: predicted,
		})
	}
	return mismatches, records, nil
}
