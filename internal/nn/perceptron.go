package nn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"neurovis/internal/model"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Perceptron is a single-layer, single-output classifier with a step
// activation. The weight vector carries one slot beyond the input count;
// prediction and training zip over the inputs actually supplied, so the
// trailing slot stays untouched unless a caller appends a bias input itself.
type Perceptron struct {
	weights       []float64
	learningRate  float64
	threshold     ThresholdFunc
	thresholdName string
}

// TrainReport describes how a training session ended. Exhausting the epoch
// budget with mismatches left is an outcome, not an error.
type TrainReport struct {
	Converged       bool
	EpochsRun       int
	MismatchHistory []int
}

// New allocates a perceptron with numInputs+1 weights drawn uniformly from
// [0,1). A nil rng falls back to the shared math/rand source.
func New(numInputs int, learningRate float64, rng *rand.Rand) (*Perceptron, error) {
	return NewWithThreshold(numInputs, learningRate, "sign", rng)
}

func NewWithThreshold(numInputs int, learningRate float64, thresholdName string, rng *rand.Rand) (*Perceptron, error) {
	if numInputs < 1 {
		return nil, fmt.Errorf("%w: num inputs must be >= 1, got %d", ErrInvalidArgument, numInputs)
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("%w: learning rate must be positive, got %f", ErrInvalidArgument, learningRate)
	}
	fn, err := GetThreshold(thresholdName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	weights := make([]float64, numInputs+1)
	for i := range weights {
		if rng != nil {
			weights[i] = rng.Float64()
		} else {
			weights[i] = rand.Float64()
		}
	}
	return &Perceptron{
		weights:       weights,
		learningRate:  learningRate,
		threshold:     fn,
		thresholdName: thresholdName,
	}, nil
}

// Restore rebuilds a perceptron around an existing weight vector, such as
// one loaded from a stored training run.
func Restore(weights []float64, learningRate float64, thresholdName string) (*Perceptron, error) {
	if len(weights) < 2 {
		return nil, fmt.Errorf("%w: weight vector too short: %d", ErrInvalidArgument, len(weights))
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("%w: learning rate must be positive, got %f", ErrInvalidArgument, learningRate)
	}
	if thresholdName == "" {
		thresholdName = "sign"
	}
	fn, err := GetThreshold(thresholdName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return &Perceptron{
		weights:       append([]float64(nil), weights...),
		learningRate:  learningRate,
		threshold:     fn,
		thresholdName: thresholdName,
	}, nil
}

// Predict computes the dot product of the supplied inputs against the
// leading weights and thresholds the sum. Weight slots beyond len(inputs)
// do not contribute. Pure: never mutates the weights.
func (p *Perceptron) Predict(inputs []float64) (int, error) {
	if len(inputs) > len(p.weights) {
		return 0, fmt.Errorf("%w: %d inputs exceed %d weights", ErrInvalidArgument, len(inputs), len(p.weights))
	}
	sum := 0.0
	for i, in := range inputs {
		sum += in * p.weights[i]
	}
	return p.threshold(sum), nil
}

// Train runs up to maxEpochs online passes over examples, adjusting weights
// on every misclassified sample, and stops early after a zero-mismatch
// pass. The returned report records the per-epoch mismatch counts.
func (p *Perceptron) Train(ctx context.Context, examples []model.TrainingExample, maxEpochs int) (TrainReport, error) {
	if maxEpochs < 1 {
		return TrainReport{}, fmt.Errorf("%w: max epochs must be >= 1, got %d", ErrInvalidArgument, maxEpochs)
	}

	report := TrainReport{MismatchHistory: make([]int, 0, maxEpochs)}
	for epoch := 0; epoch < maxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		mismatches := 0
		for _, example := range examples {
			predicted, err := p.Predict(example.Inputs)
			if err != nil {
				return report, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			delta := example.Target - predicted
			if delta == 0 {
				continue
			}
			mismatches++
			for i, in := range example.Inputs {
				p.weights[i] += p.learningRate * float64(delta) * in
			}
		}

		report.EpochsRun++
		report.MismatchHistory = append(report.MismatchHistory, mismatches)
		if mismatches == 0 {
			report.Converged = true
			return report, nil
		}
	}
	return report, nil
}

// Weights returns a copy of the weight vector.
func (p *Perceptron) Weights() []float64 {
	return append([]float64(nil), p.weights...)
}

// Weight returns the weight at index i.
func (p *Perceptron) Weight(i int) (float64, error) {
	if i < 0 || i >= len(p.weights) {
		return 0, fmt.Errorf("%w: weight index %d out of range [0,%d)", ErrInvalidArgument, i, len(p.weights))
	}
	return p.weights[i], nil
}

// NumWeights reports the weight vector length, input count plus one.
func (p *Perceptron) NumWeights() int {
	return len(p.weights)
}

func (p *Perceptron) LearningRate() float64 {
	return p.learningRate
}

func (p *Perceptron) ThresholdName() string {
	return p.thresholdName
}
