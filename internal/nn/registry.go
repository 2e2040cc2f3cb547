package nn

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

const (
	SupportedSchemaVersion = 1
	SupportedCodecVersion  = 1
)

var (
	ErrThresholdExists   = errors.New("threshold already registered")
	ErrThresholdNotFound = errors.New("threshold not found")
	ErrThresholdVersion  = errors.New("threshold version mismatch")
)

// ThresholdFunc maps a weighted sum to a discrete class label.
type ThresholdFunc func(sum float64) int

type ThresholdSpec struct {
	Name          string
	Func          ThresholdFunc
	SchemaVersion int
	CodecVersion  int
}

type registeredThreshold struct {
	fn            ThresholdFunc
	schemaVersion int
	codecVersion  int
}

var thresholdRegistry = struct {
	mu sync.RWMutex
	m  map[string]registeredThreshold
}{
	m: make(map[string]registeredThreshold),
}

func init() {
	initializeBuiltInThresholds()
}

func initializeBuiltInThresholds() {
	// sign is the step activation the demo trains with: >= 0 maps to +1.
	MustRegisterThreshold("sign", func(sum float64) int {
		if sum >= 0 {
			return 1
		}
		return -1
	})
	MustRegisterThreshold("binary", func(sum float64) int {
		if sum >= 0 {
			return 1
		}
		return 0
	})
}

func RegisterThreshold(name string, fn ThresholdFunc) error {
	return RegisterThresholdWithSpec(ThresholdSpec{
		Name:          name,
		Func:          fn,
		SchemaVersion: SupportedSchemaVersion,
		CodecVersion:  SupportedCodecVersion,
	})
}

func MustRegisterThreshold(name string, fn ThresholdFunc) {
	if err := RegisterThreshold(name, fn); err != nil {
		panic(err)
	}
}

func RegisterThresholdWithSpec(spec ThresholdSpec) error {
	if spec.Name == "" {
		return errors.New("threshold name is required")
	}
	if spec.Func == nil {
		return errors.New("threshold function is required")
	}
	if spec.SchemaVersion != SupportedSchemaVersion || spec.CodecVersion != SupportedCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrThresholdVersion, spec.SchemaVersion, spec.CodecVersion)
	}

	thresholdRegistry.mu.Lock()
	defer thresholdRegistry.mu.Unlock()

	if _, exists := thresholdRegistry.m[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrThresholdExists, spec.Name)
	}

	thresholdRegistry.m[spec.Name] = registeredThreshold{
		fn:            spec.Func,
		schemaVersion: spec.SchemaVersion,
		codecVersion:  spec.CodecVersion,
	}
	return nil
}

func GetThreshold(name string) (ThresholdFunc, error) {
	thresholdRegistry.mu.RLock()
	entry, ok := thresholdRegistry.m[name]
	thresholdRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThresholdNotFound, name)
	}
	if entry.schemaVersion != SupportedSchemaVersion || entry.codecVersion != SupportedCodecVersion {
		return nil, fmt.Errorf("%w: %s", ErrThresholdVersion, name)
	}
	return entry.fn, nil
}

func ListThresholds() []string {
	thresholdRegistry.mu.RLock()
	defer thresholdRegistry.mu.RUnlock()

	names := make([]string, 0, len(thresholdRegistry.m))
	for name := range thresholdRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resetThresholdRegistryForTests() {
	thresholdRegistry.mu.Lock()
	thresholdRegistry.m = make(map[string]registeredThreshold)
	thresholdRegistry.mu.Unlock()
	initializeBuiltInThresholds()
}
