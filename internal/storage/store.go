package storage

import (
	"context"

	"neurovis/internal/model"
)

// Store defines persistence operations for training-session records.
type Store interface {
	Init(ctx context.Context) error
	SaveTrainingRun(ctx context.Context, run model.TrainingRun) error
	GetTrainingRun(ctx context.Context, id string) (model.TrainingRun, bool, error)
	ListTrainingRuns(ctx context.Context) ([]model.TrainingRun, error)
	DeleteTrainingRun(ctx context.Context, id string) error
}
