package dataset

import (
	"context"
	"errors"
	"testing"
)

func TestGroundTruthCases(t *testing.T) {
	cases, err := Cases("gt")
	if err != nil {
		t.Fatalf("gt cases: %v", err)
	}
	if len(cases) != 4 {
		t.Fatalf("expected 4 cases, got %d", len(cases))
	}

	wantTargets := map[[2]float64]int{
		{0, 0}: 1,
		{0, 1}: -1,
		{1, 0}: -1,
		{1, 1}: 1,
	}
	for _, c := range cases {
		key := [2]float64{c.Inputs[0], c.Inputs[1]}
		want, ok := wantTargets[key]
		if !ok {
			t.Fatalf("unexpected case inputs: %v", c.Inputs)
		}
		if c.Target != want {
			t.Fatalf("case %v: target %d, want %d", c.Inputs, c.Target, want)
		}
		delete(wantTargets, key)
	}
	if len(wantTargets) != 0 {
		t.Fatalf("missing cases: %v", wantTargets)
	}
}

func TestModeRouting(t *testing.T) {
	validation, err := Cases("validation")
	if err != nil {
		t.Fatalf("validation cases: %v", err)
	}
	if len(validation) != 6 {
		t.Fatalf("expected 6 validation cases, got %d", len(validation))
	}

	test, err := Cases(" TEST ")
	if err != nil {
		t.Fatalf("test cases with padding: %v", err)
	}
	if len(test) != 8 {
		t.Fatalf("expected 8 test cases, got %d", len(test))
	}

	if _, err := Cases("benchmarkish"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestEmptyModeIsGroundTruth(t *testing.T) {
	cases, err := Cases("")
	if err != nil {
		t.Fatalf("empty mode: %v", err)
	}
	if len(cases) != 4 {
		t.Fatalf("expected gt cases for empty mode, got %d", len(cases))
	}
}

func TestMismatches(t *testing.T) {
	cases, err := Cases("gt")
	if err != nil {
		t.Fatalf("gt cases: %v", err)
	}

	alwaysPositive := func(inputs []float64) (int, error) { return 1, nil }
	mismatches, records, err := Mismatches(context.Background(), alwaysPositive, cases)
	if err != nil {
		t.Fatalf("mismatches: %v", err)
	}
	if mismatches != 2 {
		t.Fatalf("always-positive should miss the two negative cases, got %d", mismatches)
	}
	if len(records) != 4 {
		t.Fatalf("expected a record per case, got %d", len(records))
	}
	for _, r := range records {
		if r.Predicted != 1 {
			t.Fatalf("unexpected prediction record: %+v", r)
		}
	}
}

func TestMismatchesPropagatesPredictError(t *testing.T) {
	cases, err := Cases("gt")
	if err != nil {
		t.Fatalf("gt cases: %v", err)
	}

	wantErr := errors.New("boom")
	failing := func(inputs []float64) (int, error) { return 0, wantErr }
	if _, _, err := Mismatches(context.Background(), failing, cases); !errors.Is(err, wantErr) {
		t.Fatalf("expected predict error to propagate, got %v", err)
	}
}

func TestMismatchesHonorsContext(t *testing.T) {
	cases, err := Cases("gt")
	if err != nil {
		t.Fatalf("gt cases: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := func(inputs []float64) (int, error) { return 1, nil }
	if _, _, err := Mismatches(ctx, ok, cases); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
