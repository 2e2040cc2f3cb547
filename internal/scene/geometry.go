package scene

import "math"

// Shape is pointer hit-test geometry for one entity.
type Shape interface {
	Contains(x, y float64) bool
}

// Circle is a filled disc used for node entities.
type Circle struct {
	X, Y, R float64
}

func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Segment is a thick line used for weight-edge entities. Width is the
// full stroke width; points within half of it count as hits.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

func (s Segment) Contains(x, y float64) bool {
	return s.distance(x, y) <= s.Width/2
}

func (s Segment) distance(x, y float64) float64 {
	dx := s.X2 - s.X1
	dy := s.Y2 - s.Y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(x-s.X1, y-s.Y1)
	}
	t := ((x-s.X1)*dx + (y-s.Y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(x-(s.X1+t*dx), y-(s.Y1+t*dy))
}
