package scene

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidRole      = errors.New("invalid entity role")
	ErrWeightOutOfRange = errors.New("weight edge index out of range")
)

// EntityID is an opaque identifier for a selectable scene element.
type EntityID int

type RoleKind int

const (
	RoleInputNode RoleKind = iota + 1
	RoleOutputNode
	RoleWeightEdge
)

// Role describes what a scene entity represents. Index is the input slot
// for input nodes and the weight slot for weight edges.
type Role struct {
	Kind  RoleKind
	Index int
}

// WeightReader is the model surface the registry needs for live labels.
type WeightReader interface {
	Weight(i int) (float64, error)
	NumWeights() int
}

// EntityRegistry maps entity ids to roles and preserves registration order,
// which doubles as pick priority: when several entities report a hit for
// one pointer position, the first-registered one wins.
type EntityRegistry struct {
	numWeights int
	order      []EntityID
	roles      map[EntityID]Role
}

// NewRegistry builds a registry for a model with numWeights weight slots;
// the bound is enforced on every weight-edge registration.
func NewRegistry(numWeights int) *EntityRegistry {
	return &EntityRegistry{
		numWeights: numWeights,
		roles:      make(map[EntityID]Role),
	}
}

// Register inserts or overwrites the role for id. Overwriting keeps the
// id's original position in the pick order.
func (r *EntityRegistry) Register(id EntityID, role Role) error {
	switch role.Kind {
	case RoleInputNode:
		if role.Index < 0 {
			return fmt.Errorf("%w: input node index %d", ErrInvalidRole, role.Index)
		}
	case RoleOutputNode:
	case RoleWeightEdge:
		if role.Index < 0 || role.Index >= r.numWeights {
			return fmt.Errorf("%w: index %d, have %d weights", ErrWeightOutOfRange, role.Index, r.numWeights)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidRole, role.Kind)
	}

	if _, exists := r.roles[id]; !exists {
		r.order = append(r.order, id)
	}
	r.roles[id] = role
	return nil
}

// Resolve looks up the role for id.
func (r *EntityRegistry) Resolve(id EntityID) (Role, bool) {
	role, ok := r.roles[id]
	return role, ok
}

// Ordered returns all registered ids in registration order.
func (r *EntityRegistry) Ordered() []EntityID {
	return append([]EntityID(nil), r.order...)
}

func (r *EntityRegistry) Len() int {
	return len(r.order)
}

// LabelFor renders the display string for a role. Weight edges read the
// live weight value from the model; this is the only place weight values
// become user-visible.
func LabelFor(role Role, model WeightReader) (string, error) {
	switch role.Kind {
	case RoleInputNode:
		return fmt.Sprintf("Input %d", role.Index+1), nil
	case RoleOutputNode:
		return "Output Node", nil
	case RoleWeightEdge:
		w, err := model.Weight(role.Index)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(w, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrInvalidRole, role.Kind)
	}
}
