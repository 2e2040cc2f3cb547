package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"neurovis/internal/scene"
	"neurovis/internal/trainer"
)

func main() {
	var seed int64
	var learningRate float64
	var epochs int
	var headless bool
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	flag.Float64Var(&learningRate, "learning-rate", 0, "learning rate (0 = default 0.1)")
	flag.IntVar(&epochs, "epochs", 0, "epoch budget (0 = default 100)")
	flag.BoolVar(&headless, "headless", false, "train and print diagnostics without a window")
	flag.Parse()

	if err := run(context.Background(), seed, learningRate, epochs, headless); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seed int64, learningRate float64, epochs int, headless bool) error {
	t := trainer.Trainer{Seed: seed, LearningRate: learningRate, MaxEpochs: epochs}
	perceptron, trainingRun, err := t.Run(ctx)
	if err != nil {
		return err
	}

	if headless {
		fmt.Printf("run=%s seed=%d epochs=%d converged=%t\n",
			trainingRun.ID, trainingRun.Seed, trainingRun.EpochsRun, trainingRun.Converged)
		for _, p := range trainingRun.Predictions {
			fmt.Printf("  %v -> %+d (want %+d)\n", p.Inputs, p.Predicted, p.Target)
		}
		return nil
	}

	s, err := scene.Build(perceptron)
	if err != nil {
		return err
	}

	g := newGame(s, trainingRun)
	ebiten.SetWindowTitle("neurovis")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
