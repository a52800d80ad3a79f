package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, a password and its confirmation, runs the
// registration pipeline and creates the account. Validation and store
// failures go through the transient error display; only I/O errors are
// returned.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if res := validation.ValidateRegistrationForm(email, password, confirm, a.users.Users()); !res.IsValid {
		a.showError(res.Error, res.Field)
		return nil
	}

	session, err := a.users.Register(ctx, email, password)
	if err != nil {
		res := validation.HandleRegistrationError(err)
		a.showError(res.Message, res.Field)
		return nil
	}

	a.display.ClearErrors()
	fmt.Fprintf(a.out, "Welcome, %s!\n", session.Email)
	return nil
}

// Login prompts for credentials, validates the form and authenticates
// against the local user list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if res := validation.ValidateLoginForm(email, password); !res.IsValid {
		a.showError(res.Error, res.Field)
		return nil
	}

	session, err := a.users.Login(ctx, email, password)
	if err != nil {
		res := validation.HandleLoginError(err)
		a.showError(res.Message, res.Field)
		return nil
	}

	a.display.ClearErrors()
	fmt.Fprintf(a.out, "Welcome back, %s!\n", session.Email)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	a.display.ClearErrors()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
