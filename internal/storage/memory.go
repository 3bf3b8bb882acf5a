package storage

import (
	"context"
	"sync"

	"github.com/yourname/fittracker/internal"
)

// MemoryStorage keeps the encoded document in memory. Writes can be made to
// fail with FailWrites.
type MemoryStorage struct {
	mu       sync.Mutex
	data     []byte
	writeErr error
	saves    int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) LoadState(ctx context.Context) (*internal.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeState(s.data)
}

func (s *MemoryStorage) SaveState(ctx context.Context, state *internal.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

func (s *MemoryStorage) ClearState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

func (s *MemoryStorage) Close() error { return nil }

// FailWrites makes every later SaveState return err. Pass nil to recover.
func (s *MemoryStorage) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Raw replaces the stored bytes, e.g. with a corrupt document.
func (s *MemoryStorage) Raw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Saves counts successful writes.
func (s *MemoryStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var _ StateRepository = (*MemoryStorage)(nil)
