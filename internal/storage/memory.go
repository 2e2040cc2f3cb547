package storage

import (
	"context"
	"sort"
	"sync"

	"neurovis/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]model.TrainingRun
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.TrainingRun)
	return nil
}

func (s *MemoryStore) SaveTrainingRun(_ context.Context, run model.TrainingRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runs == nil {
		s.runs = make(map[string]model.TrainingRun)
	}
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetTrainingRun(_ context.Context, id string) (model.TrainingRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListTrainingRuns(_ context.Context) ([]model.TrainingRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.TrainingRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAtUTC != runs[j].CreatedAtUTC {
			return runs[i].CreatedAtUTC > runs[j].CreatedAtUTC
		}
		return runs[i].ID > runs[j].ID
	})
	return runs, nil
}

func (s *MemoryStore) DeleteTrainingRun(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.runs, id)
	return nil
}
