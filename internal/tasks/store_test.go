package tasks

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
	"github.com/dmitrijs2005/taskkeeper/internal/users"
	"github.com/stretchr/testify/require"
)

// fakeSessions is a SessionSource whose session can be swapped mid-test.
type fakeSessions struct {
	session *users.Session
}

func (f *fakeSessions) Current() *users.Session { return f.session }

func newTestStore(t *testing.T) (*Store, *fakeSessions, *storage.MemoryRepository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sessions := &fakeSessions{session: &users.Session{UserID: "user-a", Email: "a@b.com"}}
	s := NewStore(repo, sessions, log)
	require.NoError(t, s.Init(context.Background()))
	return s, sessions, repo
}

func TestAddTask(t *testing.T) {
	ctx := context.Background()
	s, sessions, _ := newTestStore(t)

	task, err := s.AddTask(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, task)

	got := s.Tasks()
	require.Len(t, got, 1)
	require.Equal(t, "x", got[0].Text)
	require.False(t, got[0].Completed)
	require.Equal(t, "user-a", got[0].UserID)

	t.Run("no session is a silent no-op", func(t *testing.T) {
		sessions.session = nil
		task, err := s.AddTask(ctx, "ignored")
		require.NoError(t, err)
		require.Nil(t, task)
		require.Empty(t, s.Tasks())
		sessions.session = &users.Session{UserID: "user-a", Email: "a@b.com"}
	})
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	task, err := s.AddTask(ctx, "x")
	require.NoError(t, err)

	require.NoError(t, s.ToggleTask(ctx, task.ID))
	require.True(t, s.Tasks()[0].Completed)

	// involution: toggling twice restores the original state
	require.NoError(t, s.ToggleTask(ctx, task.ID))
	require.False(t, s.Tasks()[0].Completed)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, s.ToggleTask(ctx, "nope"))
		require.False(t, s.Tasks()[0].Completed)
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	s, sessions, _ := newTestStore(t)

	t.Run("no list yet does not raise", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, "anything"))
	})

	task, err := s.AddTask(ctx, "x")
	require.NoError(t, err)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, "nope"))
		require.Len(t, s.Tasks(), 1)
	})

	t.Run("removes the matching task", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, task.ID))
		require.Empty(t, s.Tasks())
	})

	t.Run("no session is a silent no-op", func(t *testing.T) {
		sessions.session = nil
		require.NoError(t, s.DeleteTask(ctx, task.ID))
	})
}

func TestEditTask(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	task, err := s.AddTask(ctx, "before")
	require.NoError(t, err)

	require.NoError(t, s.EditTask(ctx, task.ID, "after"))
	require.Equal(t, "after", s.Tasks()[0].Text)

	require.NoError(t, s.EditTask(ctx, "nope", "ignored"))
	require.Equal(t, "after", s.Tasks()[0].Text)
}

func TestScoping(t *testing.T) {
	ctx := context.Background()
	s, sessions, _ := newTestStore(t)

	_, err := s.AddTask(ctx, "belongs to a")
	require.NoError(t, err)

	sessions.session = &users.Session{UserID: "user-b", Email: "b@b.com"}
	require.Empty(t, s.Tasks())
	require.Zero(t, s.TotalTasks())

	_, err = s.AddTask(ctx, "belongs to b")
	require.NoError(t, err)
	require.Len(t, s.Tasks(), 1)

	sessions.session = &users.Session{UserID: "user-a", Email: "a@b.com"}
	require.Equal(t, "belongs to a", s.Tasks()[0].Text)
}

func TestFilteredTasks(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	buy, err := s.AddTask(ctx, "Buy milk")
	require.NoError(t, err)
	_, err = s.AddTask(ctx, "Walk the dog")
	require.NoError(t, err)
	require.NoError(t, s.ToggleTask(ctx, buy.ID))

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		s.SetSearchQuery("MILK")
		got := s.FilteredTasks()
		require.Len(t, got, 1)
		require.Equal(t, "Buy milk", got[0].Text)
		s.SetSearchQuery("")
	})

	t.Run("status filters", func(t *testing.T) {
		s.SetFilter(FilterComplete)
		require.Len(t, s.FilteredTasks(), 1)
		require.True(t, s.FilteredTasks()[0].Completed)

		s.SetFilter(FilterIncomplete)
		require.Len(t, s.FilteredTasks(), 1)
		require.False(t, s.FilteredTasks()[0].Completed)

		s.SetFilter(FilterAll)
		require.Len(t, s.FilteredTasks(), 2)
	})

	t.Run("unrecognized filter selects incomplete", func(t *testing.T) {
		s.SetFilter(Filter("bogus"))
		got := s.FilteredTasks()
		require.Len(t, got, 1)
		require.False(t, got[0].Completed)
		s.SetFilter(FilterAll)
	})

	t.Run("predicates compose", func(t *testing.T) {
		s.SetSearchQuery("dog")
		s.SetFilter(FilterComplete)
		require.Empty(t, s.FilteredTasks())
		s.SetSearchQuery("")
		s.SetFilter(FilterAll)
	})
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	first, err := s.AddTask(ctx, "one")
	require.NoError(t, err)
	_, err = s.AddTask(ctx, "two")
	require.NoError(t, err)
	require.NoError(t, s.ToggleTask(ctx, first.ID))

	// counts ignore search and status filters
	s.SetSearchQuery("one")
	s.SetFilter(FilterComplete)

	require.Equal(t, 2, s.TotalTasks())
	require.Equal(t, 1, s.CompletedTasks())
	require.Equal(t, 1, s.IncompletedTasks())
}

func TestInit_ReloadsSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _, repo := newTestStore(t)

	_, err := s.AddTask(ctx, "persisted")
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sessions := &fakeSessions{session: &users.Session{UserID: "user-a", Email: "a@b.com"}}
	s2 := NewStore(repo, sessions, log)
	require.NoError(t, s2.Init(ctx))

	got := s2.Tasks()
	require.Len(t, got, 1)
	require.Equal(t, "persisted", got[0].Text)
}
