package cli

import (
	"context"
	"fmt"
)

// Indirections over the input helpers so tests can script answers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp asks for email, password and confirmation and creates the account.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := a.authService.SignUp(ctx, email, password, confirm); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully. You can now log in.")
	return nil
}

// Login asks for credentials and opens a session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	session, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.session = session
	fmt.Fprintf(a.out, "Welcome back, %s!\n", session.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.log.Info(ctx, "logout", "email", a.session.Email, "session", a.session.ID)
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
