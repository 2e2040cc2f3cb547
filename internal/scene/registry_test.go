package scene

import (
	"errors"
	"fmt"
	"testing"
)

type stubModel struct {
	weights []float64
}

func (m stubModel) Weight(i int) (float64, error) {
	if i < 0 || i >= len(m.weights) {
		return 0, fmt.Errorf("weight index %d out of range", i)
	}
	return m.weights[i], nil
}

func (m stubModel) NumWeights() int {
	return len(m.weights)
}

func TestRegisterAndResolve(t *testing.T) {
	r := NewRegistry(3)
	if err := r.Register(10, Role{Kind: RoleInputNode, Index: 0}); err != nil {
		t.Fatalf("register input: %v", err)
	}
	if err := r.Register(20, Role{Kind: RoleOutputNode}); err != nil {
		t.Fatalf("register output: %v", err)
	}

	role, ok := r.Resolve(10)
	if !ok || role.Kind != RoleInputNode || role.Index != 0 {
		t.Fatalf("unexpected resolved role: %+v ok=%t", role, ok)
	}
	if _, ok := r.Resolve(99); ok {
		t.Fatal("resolve must miss for unregistered id")
	}
	if r.Len() != 2 {
		t.Fatalf("unexpected registry size: %d", r.Len())
	}
}

func TestRegisterValidatesRoles(t *testing.T) {
	r := NewRegistry(3)
	if err := r.Register(1, Role{Kind: RoleWeightEdge, Index: 3}); !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected weight range error, got %v", err)
	}
	if err := r.Register(1, Role{Kind: RoleWeightEdge, Index: -1}); !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected weight range error for negative index, got %v", err)
	}
	if err := r.Register(1, Role{Kind: RoleInputNode, Index: -2}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role for negative input index, got %v", err)
	}
	if err := r.Register(1, Role{Kind: 0}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role for unknown kind, got %v", err)
	}
}

func TestRegisterOverwriteKeepsOrder(t *testing.T) {
	r := NewRegistry(3)
	if err := r.Register(1, Role{Kind: RoleInputNode, Index: 0}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(2, Role{Kind: RoleOutputNode}); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Last write wins for the role, first registration wins for priority.
	if err := r.Register(1, Role{Kind: RoleWeightEdge, Index: 1}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	ordered := r.Ordered()
	if len(ordered) != 2 || ordered[0] != 1 || ordered[1] != 2 {
		t.Fatalf("unexpected order after overwrite: %v", ordered)
	}
	role, ok := r.Resolve(1)
	if !ok || role.Kind != RoleWeightEdge || role.Index != 1 {
		t.Fatalf("overwrite did not take: %+v", role)
	}
}

func TestLabelFor(t *testing.T) {
	m := stubModel{weights: []float64{0.37, -1.25, 0.08}}

	label, err := LabelFor(Role{Kind: RoleInputNode, Index: 0}, m)
	if err != nil || label != "Input 1" {
		t.Fatalf("unexpected input label: %q, %v", label, err)
	}
	label, err = LabelFor(Role{Kind: RoleInputNode, Index: 1}, m)
	if err != nil || label != "Input 2" {
		t.Fatalf("unexpected input label: %q, %v", label, err)
	}
	label, err = LabelFor(Role{Kind: RoleOutputNode}, m)
	if err != nil || label != "Output Node" {
		t.Fatalf("unexpected output label: %q, %v", label, err)
	}
	label, err = LabelFor(Role{Kind: RoleWeightEdge, Index: 0}, m)
	if err != nil || label != "0.37" {
		t.Fatalf("unexpected weight label: %q, %v", label, err)
	}
	label, err = LabelFor(Role{Kind: RoleWeightEdge, Index: 1}, m)
	if err != nil || label != "-1.25" {
		t.Fatalf("unexpected weight label: %q, %v", label, err)
	}

	if _, err := LabelFor(Role{Kind: RoleWeightEdge, Index: 9}, m); err == nil {
		t.Fatal("expected error for out-of-range weight read")
	}
	if _, err := LabelFor(Role{Kind: 0}, m); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}
