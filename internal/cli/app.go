package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/errdisplay"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/theme"
	"github.com/dmitrijs2005/taskkeeper/internal/users"
	"github.com/dmitrijs2005/taskkeeper/internal/validation"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	users   *users.Store
	tasks   *tasks.Store
	theme   *theme.Store
	display *errdisplay.Display
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repo, db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{
		config:  c,
		log:     log,
		db:      db,
		display: errdisplay.New(c.ErrorDisplayDuration),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	app.theme = theme.NewStore(repo, theme.ApplierFunc(app.applyStyle), theme.Theme(c.DefaultTheme), log)
	app.users = users.NewStore(repo, log)
	app.tasks = tasks.NewStore(repo, app.users, log)

	for _, init := range []func(context.Context) error{
		app.theme.Init,
		app.users.Init,
		app.tasks.Init,
	} {
		if err := init(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return app, nil
}

// applyStyle is the theme store's Applier. A terminal has no stylesheet to
// swap, so the change is only announced; the prompt always reflects the
// current value.
func (a *App) applyStyle(t theme.Theme) {
	fmt.Fprintf(a.out, "Theme: %s\n", t)
}

func (a *App) isLoggedIn() bool {
	return a.users.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if session := a.users.Current(); session != nil {
		s = session.Email + ", "
	}
	s += string(a.theme.Current())
	return fmt.Sprintf("(%s)", s)
}

// showError routes a failure through the transient display and prints it.
func (a *App) showError(message string, field validation.Field) {
	a.display.SetError(message, field)
	if field != validation.FieldNone {
		fmt.Fprintf(a.out, "Error: %s [%s]\n", message, field)
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", message)
}

// Close releases the display timer and the database handle.
func (a *App) Close() error {
	a.display.Close()
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
