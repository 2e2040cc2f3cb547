package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neurovis/internal/model"
	"neurovis/internal/scene"
)

const (
	screenWidth  = 540
	screenHeight = 340
)

type game struct {
	scene   *scene.Scene
	run     model.TrainingRun
	display scene.DisplayState
}

func newGame(s *scene.Scene, run model.TrainingRun) *game {
	return &game{
		scene:   s,
		run:     run,
		display: s.Controller.Handle(scene.Miss()),
	}
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.display = g.scene.Controller.Handle(g.scene.PickAt(float64(x), float64(y)))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	colors := make(map[scene.EntityID]color.RGBA, len(g.display.Highlights))
	for _, h := range g.display.Highlights {
		colors[h.ID] = color.RGBA{R: h.Color.R, G: h.Color.G, B: h.Color.B, A: h.Color.A}
	}

	// Edges first so nodes draw on top of their endpoints.
	for _, e := range g.scene.Entities {
		seg, ok := e.Shape.(scene.Segment)
		if !ok {
			continue
		}
		vector.StrokeLine(screen,
			float32(seg.X1), float32(seg.Y1), float32(seg.X2), float32(seg.Y2),
			float32(seg.Width), colors[e.ID], true)
	}
	for _, e := range g.scene.Entities {
		c, ok := e.Shape.(scene.Circle)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), colors[e.ID], true)
	}

	status := fmt.Sprintf("epochs=%d converged=%t", g.run.EpochsRun, g.run.Converged)
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	if g.display.HasSelected {
		ebitenutil.DebugPrintAt(screen, "Selected: "+g.display.Label, 8, 24)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
