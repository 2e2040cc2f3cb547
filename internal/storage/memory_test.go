package storage

import (
	"context"
	"testing"

	"neurovis/internal/model"
)

func testRun(id, createdAt string) model.TrainingRun {
	return model.TrainingRun{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		CreatedAtUTC:    createdAt,
		Seed:            42,
		LearningRate:    0.1,
		MaxEpochs:       100,
		EpochsRun:       100,
		Threshold:       "sign",
		Weights:         []float64{0.3, -0.5, 0.7},
		MismatchHistory: []int{2, 1, 2},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	run := testRun("run-1", "2024-01-01T00:00:00Z")
	if err := store.SaveTrainingRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.GetTrainingRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected run to be found")
	}
	if got.Seed != 42 || len(got.Weights) != 3 {
		t.Fatalf("unexpected run record: %+v", got)
	}

	if _, ok, err := store.GetTrainingRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing run lookup: ok=%t err=%v", ok, err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, r := range []model.TrainingRun{
		testRun("run-old", "2024-01-01T00:00:00Z"),
		testRun("run-new", "2024-06-01T00:00:00Z"),
		testRun("run-mid", "2024-03-01T00:00:00Z"),
	} {
		if err := store.SaveTrainingRun(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	runs, err := store.ListTrainingRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-new" || runs[1].ID != "run-mid" || runs[2].ID != "run-old" {
		t.Fatalf("unexpected order: %s %s %s", runs[0].ID, runs[1].ID, runs[2].ID)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.SaveTrainingRun(ctx, testRun("run-1", "2024-01-01T00:00:00Z")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.DeleteTrainingRun(ctx, "run-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := store.GetTrainingRun(ctx, "run-1"); err != nil || ok {
		t.Fatalf("expected run to be gone: ok=%t err=%v", ok, err)
	}
}
