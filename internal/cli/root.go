package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Run starts the read-eval-print loop. It reads a line, parses the first
// token as the command, and dispatches. The loop exits on EOF, context
// cancellation, or when the user types "exit" or "quit".
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to TaskKeeper CLI (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(a.out, "tk %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.log.Error(ctx, "input error", "error", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: add, (l)ist, toggle, edit, del, search, filter, theme, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, theme, exit")
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				a.log.Error(ctx, "register failed", "error", err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				a.log.Error(ctx, "login failed", "error", err)
			}
		case "logout":
			if err := a.Logout(ctx); err != nil {
				a.log.Error(ctx, "logout failed", "error", err)
			}

		case "add":
			a.addTask(ctx, args)
		case "l", "list":
			a.listTasks(ctx)
		case "toggle":
			a.toggleTask(ctx, args)
		case "del", "delete":
			a.deleteTask(ctx, args)
		case "edit":
			a.editTask(ctx, args)
		case "search":
			a.setSearch(args)
		case "filter":
			a.setFilter(args)

		case "theme":
			if err := a.theme.ToggleTheme(ctx); err != nil {
				a.log.Error(ctx, "theme toggle failed", "error", err)
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
