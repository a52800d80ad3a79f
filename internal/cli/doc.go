// Package cli provides the interactive TaskKeeper command-line client.
//
// It wires configuration, the local SQLite storage, the three state stores
// (users, tasks, theme) and an interactive REPL. Typical flow: register or
// log in, then manage the task list with add/list/toggle/edit/del and the
// search/filter commands.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
