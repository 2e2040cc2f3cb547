package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"neurovis/internal/storage"
	nvapi "neurovis/pkg/neurovis"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "train":
		return runTrain(ctx, args[1:])
	case "predict":
		return runPredict(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func newClient(ctx context.Context, storeKind, dbPath string) (*nvapi.Client, error) {
	return nvapi.New(ctx, nvapi.Options{StoreKind: storeKind, DBPath: dbPath})
}

func runTrain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "neurovis.db", "sqlite database path")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	learningRate := fs.Float64("learning-rate", 0, "learning rate (0 = default 0.1)")
	epochs := fs.Int("epochs", 0, "epoch budget (0 = default 100)")
	threshold := fs.String("threshold", "", "threshold function (default sign)")
	configPath := fs.String("config", "", "JSON config file; flags override it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := nvapi.TrainRequest{}
	if *configPath != "" {
		loaded, err := loadTrainRequestFromConfig(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	}
	if *seed != 0 {
		req.Seed = *seed
	}
	if *learningRate != 0 {
		req.LearningRate = *learningRate
	}
	if *epochs != 0 {
		req.MaxEpochs = *epochs
	}
	if *threshold != "" {
		req.Threshold = *threshold
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Train(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run=%s seed=%d epochs=%d converged=%t final_mismatches=%d\n",
		summary.RunID, summary.Seed, summary.EpochsRun, summary.Converged, summary.FinalMismatches)
	for i, w := range summary.Weights {
		fmt.Printf("  w[%d]=%g\n", i, w)
	}
	return nil
}

func runPredict(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "neurovis.db", "sqlite database path")
	runID := fs.String("run", "", "training run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	mode := fs.String("mode", "gt", "dataset mode: gt|validation|test")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Predict(ctx, nvapi.PredictRequest{RunID: *runID, Latest: *latest, Mode: *mode})
	if err != nil {
		return err
	}

	fmt.Printf("run=%s mode=%s mismatches=%d/%d\n",
		summary.RunID, summary.Mode, summary.Mismatches, len(summary.Predictions))
	for _, p := range summary.Predictions {
		mark := "ok"
		if p.Predicted != p.Target {
			mark = "miss"
		}
		fmt.Printf("  %v -> %+d (want %+d) %s\n", p.Inputs, p.Predicted, p.Target, mark)
	}
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "neurovis.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Runs(ctx, nvapi.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no training runs recorded")
		return nil
	}

	for _, item := range items {
		age := item.CreatedAtUTC
		if created, err := time.Parse(time.RFC3339, item.CreatedAtUTC); err == nil {
			age = humanize.Time(created)
		}
		fmt.Printf("%s  %s  seed=%d lr=%g epochs=%s/%s converged=%t\n",
			item.RunID, age, item.Seed, item.LearningRate,
			humanize.Comma(int64(item.EpochsRun)), humanize.Comma(int64(item.MaxEpochs)),
			item.Converged)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "neurovis.db", "sqlite database path")
	runID := fs.String("run", "", "training run id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("show requires -run")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runRecord, err := client.GetRun(ctx, *runID)
	if err != nil {
		return err
	}

	fmt.Printf("run=%s created=%s seed=%d\n", runRecord.ID, runRecord.CreatedAtUTC, runRecord.Seed)
	fmt.Printf("learning_rate=%g max_epochs=%d epochs_run=%d converged=%t threshold=%s\n",
		runRecord.LearningRate, runRecord.MaxEpochs, runRecord.EpochsRun, runRecord.Converged, runRecord.Threshold)
	for i, w := range runRecord.Weights {
		fmt.Printf("  w[%d]=%g\n", i, w)
	}
	if n := len(runRecord.MismatchHistory); n > 0 {
		fmt.Printf("mismatches: first=%d last=%d\n", runRecord.MismatchHistory[0], runRecord.MismatchHistory[n-1])
	}
	for _, p := range runRecord.Predictions {
		fmt.Printf("  %v -> %+d (want %+d)\n", p.Inputs, p.Predicted, p.Target)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "neurovis.db", "sqlite database path")
	runID := fs.String("run", "", "training run id")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", "", "output directory (default exports)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Export(ctx, nvapi.ExportRequest{RunID: *runID, Latest: *latest, OutDir: *outDir})
	if err != nil {
		return err
	}

	fmt.Printf("exported run=%s dir=%s\n", summary.RunID, summary.Directory)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: neurovisctl <train|predict|runs|show|export> [flags]", msg)
}
