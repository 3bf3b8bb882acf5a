package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourname/fittracker/internal"
)

type FileStorage struct {
	path   string
	mu     sync.RWMutex
	logger internal.Logger
}

func NewFileStorage(path string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Errorf("storage: failed to create data dir: %v", err)
		return nil, err
	}
	return &FileStorage{path: path, logger: logger}, nil
}

func (s *FileStorage) LoadState(ctx context.Context) (*internal.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return decodeState(data)
}

func (s *FileStorage) SaveState(ctx context.Context, state *internal.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return atomicWriteFileJSON(s.path, state)
}

func (s *FileStorage) ClearState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStorage) Close() error { return nil }

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

var _ StateRepository = (*FileStorage)(nil)
