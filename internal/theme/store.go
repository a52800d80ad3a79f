// Package theme holds the light/dark preference: applying, persisting and
// toggling it.
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Applier is the style-system seam: whatever presents the UI reacts here
// when the active theme changes.
type Applier interface {
	Apply(theme Theme)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(Theme)

func (f ApplierFunc) Apply(theme Theme) { f(theme) }

type snapshot struct {
	CurrentTheme Theme `json:"currentTheme"`
}

type Store struct {
	repo         storage.Repository
	log          logging.Logger
	applier      Applier
	defaultTheme Theme

	mu      sync.RWMutex
	current Theme
}

func NewStore(repo storage.Repository, applier Applier, defaultTheme Theme, log logging.Logger) *Store {
	if defaultTheme == "" {
		defaultTheme = Light
	}
	return &Store{
		repo:         repo,
		log:          log.With("store", "theme"),
		applier:      applier,
		defaultTheme: defaultTheme,
		current:      defaultTheme,
	}
}

// Init reads the persisted preference and applies it; without one it
// applies the default. Re-applying on every call is intentional: the style
// system may have been reset since the last run.
func (s *Store) Init(ctx context.Context) error {
	data, err := s.repo.Get(ctx, storage.KeyTheme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	saved := s.defaultTheme
	if data != nil {
		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to decode theme snapshot: %w", err)
		}
		if snap.CurrentTheme != "" {
			saved = snap.CurrentTheme
		}
	}

	return s.ApplyTheme(ctx, saved)
}

// ApplyTheme notifies the style system, persists the choice once, and
// updates the in-memory value. This is the single write path for the
// preference.
func (s *Store) ApplyTheme(ctx context.Context, theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applier.Apply(theme)

	data, err := json.Marshal(snapshot{CurrentTheme: theme})
	if err != nil {
		return fmt.Errorf("failed to encode theme snapshot: %w", err)
	}
	if err := s.repo.Set(ctx, storage.KeyTheme, data); err != nil {
		s.log.Error(ctx, "failed to persist theme", "error", err)
		return fmt.Errorf("failed to persist theme: %w", err)
	}

	s.current = theme
	return nil
}

// ToggleTheme flips light<->dark through ApplyTheme.
func (s *Store) ToggleTheme(ctx context.Context) error {
	next := Light
	if s.Current() != Dark {
		next = Dark
	}
	return s.ApplyTheme(ctx, next)
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
