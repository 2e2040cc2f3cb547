package storage

import "fmt"

// NewStore builds the training-run store for a backend kind. The memory
// backend is always available; sqlite needs the sqlite build tag.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported training-run store backend %q (want memory or sqlite)", kind)
	}
}

// CloseIfSupported releases backends that hold external resources, such as
// the sqlite database handle; the memory store has nothing to close.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
