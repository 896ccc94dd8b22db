package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirepilot/hirepilot/internal/client/api"
	"github.com/hirepilot/hirepilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// account via the API. On success it prints a confirmation and returns nil;
// the password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	form := api.RegistrationForm{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: string(password),
	}
	if err := a.api.Register(ctx, form); err != nil {
		a.reportAuthError(ctx, "Registration failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials, exchanges them for a bearer token, and makes
// the token the active session credential. A persistence failure of the
// credential store degrades to a memory-only session with a warning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	token, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		a.reportAuthError(ctx, "Login failed", err)
		return err
	}

	if err := a.session.Acquire(token); err != nil {
		a.logger.Warn(ctx, "credential not persisted, session will not survive a restart", "error", err)
	}
	fmt.Fprintln(a.out, "Login successful.")
	return nil
}

// Logout clears the session credential from memory and durable storage.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		a.logger.Warn(ctx, "could not remove persisted credential", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) reportAuthError(ctx context.Context, prefix string, err error) {
	if errors.Is(err, common.ErrUnavailable) {
		fmt.Fprintf(a.out, "%s: network error or server is unreachable.\n", prefix)
		return
	}
	var reqErr *common.RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		fmt.Fprintf(a.out, "%s: %s\n", prefix, reqErr.Detail)
		return
	}
	fmt.Fprintf(a.out, "%s: %s\n", prefix, err)
}
