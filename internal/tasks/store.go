// Package tasks owns the per-user task lists: add/toggle/edit/delete plus
// search and status filtering. Every operation scopes to the current
// session; without one, mutators silently do nothing and reads see an
// empty list.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
	"github.com/dmitrijs2005/taskkeeper/internal/users"
)

// SessionSource yields the active session. The users store satisfies it;
// tests can provide a stub.
type SessionSource interface {
	Current() *users.Session
}

type snapshot struct {
	AllTasks map[string][]Task `json:"allTasks"`
}

type Store struct {
	repo     storage.Repository
	log      logging.Logger
	sessions SessionSource

	mu          sync.RWMutex
	allTasks    map[string][]Task
	searchQuery string
	filter      Filter
	initialized bool
}

func NewStore(repo storage.Repository, sessions SessionSource, log logging.Logger) *Store {
	return &Store{
		repo:     repo,
		log:      log.With("store", "tasks"),
		sessions: sessions,
		allTasks: make(map[string][]Task),
		filter:   FilterAll,
	}
}

// Init loads the persisted task map. It runs at most once.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	data, err := s.repo.Get(ctx, storage.KeyTasks)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	if data != nil {
		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to decode tasks snapshot: %w", err)
		}
		if snap.AllTasks != nil {
			s.allTasks = snap.AllTasks
		}
	}

	s.initialized = true
	return nil
}

// Tasks returns the current user's task list in insertion order, or an
// empty slice when no session is active.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Task(nil), s.currentList()...)
}

// FilteredTasks applies two independent predicates to Tasks: a
// case-insensitive substring match of the search query against the task
// text (an empty query matches everything), and the status filter. Any
// filter value other than "all" or "complete" selects incomplete tasks.
func (s *Store) FilteredTasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(s.searchQuery)

	var result []Task
	for _, t := range s.currentList() {
		if query != "" && !strings.Contains(strings.ToLower(t.Text), query) {
			continue
		}

		var matches bool
		switch s.filter {
		case FilterAll:
			matches = true
		case FilterComplete:
			matches = t.Completed
		default:
			matches = !t.Completed
		}
		if matches {
			result = append(result, t)
		}
	}
	return result
}

// TotalTasks counts the current user's tasks regardless of search or filter.
func (s *Store) TotalTasks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.currentList())
}

// CompletedTasks counts completed tasks over the unfiltered list.
func (s *Store) CompletedTasks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.currentList() {
		if t.Completed {
			count++
		}
	}
	return count
}

// IncompletedTasks counts incomplete tasks over the unfiltered list.
func (s *Store) IncompletedTasks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.currentList() {
		if !t.Completed {
			count++
		}
	}
	return count
}

// AddTask appends a new incomplete task to the current user's list,
// creating the list on first use. Without a session it does nothing and
// returns nil.
func (s *Store) AddTask(ctx context.Context, text string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Current()
	if session == nil {
		return nil, nil
	}

	task := Task{
		ID:     common.NewID(),
		Text:   text,
		UserID: session.UserID,
	}
	s.allTasks[session.UserID] = append(s.allTasks[session.UserID], task)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "task added", "taskID", task.ID, "userID", session.UserID)
	return &task, nil
}

// ToggleTask flips the completed flag on the matching task in the current
// user's list. Unknown IDs are ignored.
func (s *Store) ToggleTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Current()
	if session == nil {
		return nil
	}

	list := s.allTasks[session.UserID]
	for i := range list {
		if list[i].ID == id {
			list[i].Completed = !list[i].Completed
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteTask removes the matching task from the current user's list. It is
// a no-op for unknown IDs and for users that have no list yet.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Current()
	if session == nil {
		return nil
	}

	list, ok := s.allTasks[session.UserID]
	if !ok {
		return nil
	}
	for i := range list {
		if list[i].ID == id {
			s.allTasks[session.UserID] = append(list[:i], list[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// EditTask replaces the text of the matching task. Unknown IDs are ignored.
func (s *Store) EditTask(ctx context.Context, id, newText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Current()
	if session == nil {
		return nil
	}

	list := s.allTasks[session.UserID]
	for i := range list {
		if list[i].ID == id {
			list[i].Text = newText
			return s.persist(ctx)
		}
	}
	return nil
}

// SetSearchQuery updates the substring filter consumed by FilteredTasks.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetFilter updates the status filter consumed by FilteredTasks.
func (s *Store) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

func (s *Store) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// currentList returns the active user's slice; callers hold the lock.
func (s *Store) currentList() []Task {
	session := s.sessions.Current()
	if session == nil {
		return nil
	}
	return s.allTasks[session.UserID]
}

// persist writes the full task map; callers hold the lock.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(snapshot{AllTasks: s.allTasks})
	if err != nil {
		return fmt.Errorf("failed to encode tasks snapshot: %w", err)
	}
	if err := s.repo.Set(ctx, storage.KeyTasks, data); err != nil {
		s.log.Error(ctx, "failed to persist tasks", "error", err)
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}
