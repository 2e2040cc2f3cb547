package neurovis

import (
	"context"
	"fmt"

	"neurovis/internal/artifacts"
	"neurovis/internal/dataset"
	"neurovis/internal/model"
	"neurovis/internal/nn"
	"neurovis/internal/storage"
	"neurovis/internal/trainer"
)

const (
	defaultExportsDir = "exports"
	defaultDBPath     = "neurovis.db"
)

type Options struct {
	StoreKind  string
	DBPath     string
	ExportsDir string
}

// Client is the embeddable facade over training sessions and their
// persisted records.
type Client struct {
	store      storage.Store
	exportsDir string
}

func New(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}
	return &Client{store: store, exportsDir: exportsDir}, nil
}

// NewWithStore wraps an already-initialized store; used by tests and by
// callers that manage the store lifecycle themselves.
func NewWithStore(store storage.Store) *Client {
	return &Client{store: store, exportsDir: defaultExportsDir}
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

type TrainRequest struct {
	Seed         int64
	LearningRate float64
	MaxEpochs    int
	Threshold    string
}

type TrainSummary struct {
	RunID           string
	Seed            int64
	Converged       bool
	EpochsRun       int
	FinalMismatches int
	Weights         []float64
}

// Train runs one session over the fixed dataset and persists the record.
func (c *Client) Train(ctx context.Context, req TrainRequest) (TrainSummary, error) {
	t := trainer.Trainer{
		LearningRate: req.LearningRate,
		MaxEpochs:    req.MaxEpochs,
		Seed:         req.Seed,
		Threshold:    req.Threshold,
	}
	_, run, err := t.Run(ctx)
	if err != nil {
		return TrainSummary{}, err
	}
	if err := c.store.SaveTrainingRun(ctx, run); err != nil {
		return TrainSummary{}, err
	}

	final := 0
	if n := len(run.MismatchHistory); n > 0 {
		final = run.MismatchHistory[n-1]
	}
	return TrainSummary{
		RunID:           run.ID,
		Seed:            run.Seed,
		Converged:       run.Converged,
		EpochsRun:       run.EpochsRun,
		FinalMismatches: final,
		Weights:         run.Weights,
	}, nil
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID        string
	CreatedAtUTC string
	Seed         int64
	LearningRate float64
	MaxEpochs    int
	EpochsRun    int
	Converged    bool
}

func (c *Client) Runs(ctx context.Context, req RunsRequest) ([]RunItem, error) {
	runs, err := c.store.ListTrainingRuns(ctx)
	if err != nil {
		return nil, err
	}
	if req.Limit > 0 && len(runs) > req.Limit {
		runs = runs[:req.Limit]
	}

	items := make([]RunItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, RunItem{
			RunID:        run.ID,
			CreatedAtUTC: run.CreatedAtUTC,
			Seed:         run.Seed,
			LearningRate: run.LearningRate,
			MaxEpochs:    run.MaxEpochs,
			EpochsRun:    run.EpochsRun,
			Converged:    run.Converged,
		})
	}
	return items, nil
}

// GetRun fetches one stored run by id.
func (c *Client) GetRun(ctx context.Context, id string) (model.TrainingRun, error) {
	run, ok, err := c.store.GetTrainingRun(ctx, id)
	if err != nil {
		return model.TrainingRun{}, err
	}
	if !ok {
		return model.TrainingRun{}, fmt.Errorf("training run not found: %s", id)
	}
	return run, nil
}

type PredictRequest struct {
	RunID  string
	Latest bool
	Mode   string
}

type PredictSummary struct {
	RunID       string
	Mode        string
	Mismatches  int
	Predictions []model.PredictionRecord
}

// Predict rebuilds a model from a stored run's weights and evaluates the
// dataset in the requested mode.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (PredictSummary, error) {
	runID, err := c.resolveRunID(ctx, req.RunID, req.Latest)
	if err != nil {
		return PredictSummary{}, err
	}
	run, err := c.GetRun(ctx, runID)
	if err != nil {
		return PredictSummary{}, err
	}

	perceptron, err := nn.Restore(run.Weights, run.LearningRate, run.Threshold)
	if err != nil {
		return PredictSummary{}, err
	}

	mode := req.Mode
	if mode == "" {
		mode = "gt"
	}
	cases, err := dataset.Cases(mode)
	if err != nil {
		return PredictSummary{}, err
	}

	mismatches, records, err := dataset.Mismatches(ctx, perceptron.Predict, cases)
	if err != nil {
		return PredictSummary{}, err
	}
	return PredictSummary{
		RunID:       runID,
		Mode:        mode,
		Mismatches:  mismatches,
		Predictions: records,
	}, nil
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
}

type ExportSummary struct {
	RunID     string
	Directory string
}

// Export writes a stored run's artifact files under the exports directory.
func (c *Client) Export(ctx context.Context, req ExportRequest) (ExportSummary, error) {
	runID, err := c.resolveRunID(ctx, req.RunID, req.Latest)
	if err != nil {
		return ExportSummary{}, err
	}
	run, err := c.GetRun(ctx, runID)
	if err != nil {
		return ExportSummary{}, err
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = c.exportsDir
	}
	dir, err := artifacts.ExportRun(outDir, run)
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{RunID: runID, Directory: dir}, nil
}

func (c *Client) resolveRunID(ctx context.Context, runID string, latest bool) (string, error) {
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", fmt.Errorf("run id is required unless latest is requested")
	}
	runs, err := c.store.ListTrainingRuns(ctx)
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no training runs recorded")
	}
	return runs[0].ID, nil
}
