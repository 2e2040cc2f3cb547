package scene

import "fmt"

// Layout constants for the demo scene, in screen pixels.
const (
	NodeRadius  = 28.0
	EdgeWidth   = 10.0
	inputX      = 110.0
	outputX     = 420.0
	outputY     = 170.0
	inputYFirst = 90.0
	inputYStep  = 160.0
)

// Entity binds a registered id to its role and hit-test geometry.
type Entity struct {
	ID    EntityID
	Role  Role
	Shape Shape
}

// Scene is the assembled interactive layout: a populated registry, the
// selection controller, and the per-entity geometry in registration order.
type Scene struct {
	Registry   *EntityRegistry
	Controller *SelectionController
	Entities   []Entity
}

// Build lays out one input node per model input, the output node, and a
// weight edge per input connecting it to the output. Nodes are registered
// before edges, so an overlapping click near a node prefers the node.
func Build(model WeightReader) (*Scene, error) {
	numInputs := model.NumWeights() - 1
	if numInputs < 1 {
		return nil, fmt.Errorf("model has no input weights")
	}

	registry := NewRegistry(model.NumWeights())
	s := &Scene{
		Registry:   registry,
		Controller: NewController(registry, model),
	}

	nextID := EntityID(1)
	add := func(role Role, shape Shape) error {
		if err := registry.Register(nextID, role); err != nil {
			return err
		}
		s.Entities = append(s.Entities, Entity{ID: nextID, Role: role, Shape: shape})
		nextID++
		return nil
	}

	inputs := make([]Circle, numInputs)
	for i := 0; i < numInputs; i++ {
		inputs[i] = Circle{X: inputX, Y: inputYFirst + float64(i)*inputYStep, R: NodeRadius}
		if err := add(Role{Kind: RoleInputNode, Index: i}, inputs[i]); err != nil {
			return nil, err
		}
	}

	output := Circle{X: outputX, Y: outputY, R: NodeRadius}
	if err := add(Role{Kind: RoleOutputNode}, output); err != nil {
		return nil, err
	}

	for i := 0; i < numInputs; i++ {
		edge := Segment{
			X1: inputs[i].X, Y1: inputs[i].Y,
			X2: output.X, Y2: output.Y,
			Width: EdgeWidth,
		}
		if err := add(Role{Kind: RoleWeightEdge, Index: i}, edge); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// PickAt runs the hit test for every entity and returns the pick result
// for a pointer position. The controller applies the registration-order
// tie-break; candidates here are reported in that same order.
func (s *Scene) PickAt(x, y float64) PickResult {
	var candidates []EntityID
	for _, e := range s.Entities {
		if e.Shape.Contains(x, y) {
			candidates = append(candidates, e.ID)
		}
	}
	return PickResult{Candidates: candidates}
}
