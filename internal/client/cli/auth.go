package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/client/services"
	"github.com/dmitrijs2005/zenora/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email, password and its confirmation, then
// creates the account. Password buffers are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	_, err = a.auth.Signup(ctx, services.SignupForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		a.report(err, "Signup failed", "There was an error creating your account")
		return err
	}

	a.notifier.Notify(noticeAccountCreated)
	return nil
}

// Login prompts for credentials and opens a session. A rejected login
// leaves any current session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Login(ctx, services.LoginForm{Email: email, Password: string(password)}); err != nil {
		a.report(err, "Login failed", "Please check your credentials and try again")
		return err
	}

	a.notifier.Notify(noticeWelcomeBack)
	return nil
}

// Logout ends the session. Saves already in flight keep running.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.notifier.Notify(noticeLoggedOut)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current()
	if !s.IsAuthenticated() {
		a.println("Not logged in (" + s.Status.String() + ")")
		return nil
	}
	a.println(fmt.Sprintf("%s <%s>", s.User.Name, s.User.Email))
	return nil
}
