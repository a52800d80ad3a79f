package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

// resolveTask maps a 1-based position in the currently filtered list (as
// printed by list) to the task itself.
func (a *App) resolveTask(arg string) (*tasks.Task, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		fmt.Fprintln(a.out, "Expected a task number, e.g. 'toggle 2'")
		return nil, false
	}
	filtered := a.tasks.FilteredTasks()
	if n > len(filtered) {
		fmt.Fprintf(a.out, "No task %d in the current list\n", n)
		return nil, false
	}
	return &filtered[n-1], true
}

func (a *App) addTask(ctx context.Context, args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Fprintln(a.out, "Usage: add <text>")
		return
	}
	task, err := a.tasks.AddTask(ctx, text)
	if err != nil {
		a.log.Error(ctx, "add task failed", "error", err)
		return
	}
	if task == nil {
		fmt.Fprintln(a.out, "Log in first")
		return
	}
	fmt.Fprintf(a.out, "Added: %s\n", task.Text)
}

func (a *App) listTasks(ctx context.Context) {
	filtered := a.tasks.FilteredTasks()
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "Nothing to show")
	}
	for i, t := range filtered {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d. [%s] %s\n", i+1, mark, t.Text)
	}

	fmt.Fprintf(a.out, "total %d, completed %d, incomplete %d",
		a.tasks.TotalTasks(), a.tasks.CompletedTasks(), a.tasks.IncompletedTasks())
	if q := a.tasks.SearchQuery(); q != "" {
		fmt.Fprintf(a.out, ", search %q", q)
	}
	if f := a.tasks.Filter(); f != tasks.FilterAll {
		fmt.Fprintf(a.out, ", filter %s", f)
	}
	fmt.Fprintln(a.out)
}

func (a *App) toggleTask(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: toggle <number>")
		return
	}
	task, ok := a.resolveTask(args[0])
	if !ok {
		return
	}
	if err := a.tasks.ToggleTask(ctx, task.ID); err != nil {
		a.log.Error(ctx, "toggle task failed", "error", err)
	}
}

func (a *App) deleteTask(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: del <number>")
		return
	}
	task, ok := a.resolveTask(args[0])
	if !ok {
		return
	}
	if err := a.tasks.DeleteTask(ctx, task.ID); err != nil {
		a.log.Error(ctx, "delete task failed", "error", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted: %s\n", task.Text)
}

func (a *App) editTask(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: edit <number> <new text>")
		return
	}
	task, ok := a.resolveTask(args[0])
	if !ok {
		return
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if err := a.tasks.EditTask(ctx, task.ID, text); err != nil {
		a.log.Error(ctx, "edit task failed", "error", err)
	}
}

func (a *App) setSearch(args []string) {
	a.tasks.SetSearchQuery(strings.Join(args, " "))
}

func (a *App) setFilter(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: filter all|complete|incomplete")
		return
	}
	a.tasks.SetFilter(tasks.Filter(args[0]))
}
