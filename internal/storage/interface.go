package storage

import (
	"context"
	"errors"

	"github.com/yourname/fittracker/internal"
)

// DefaultKey is the well-known key the state document is stored under.
const DefaultKey = "fitness_app_data"

var (
	ErrStateNotFound = errors.New("storage: state not found")
	// ErrCorruptState means the stored document exists but cannot be decoded.
	ErrCorruptState = errors.New("storage: corrupt state")
)

// StateRepository persists the single state document. Implementations
// replace the whole document on every save.
type StateRepository interface {
	LoadState(ctx context.Context) (*internal.State, error)
	SaveState(ctx context.Context, state *internal.State) error
	ClearState(ctx context.Context) error
	Close() error
}
