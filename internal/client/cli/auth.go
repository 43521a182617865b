package cli

import (
	"context"

	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/common"
)

// getSimpleText, getPassword, getMultiline and getConfirmation are
// indirections used to facilitate testing. They point to interactive input
// helpers and can be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)

// register prompts for name, email and password and creates an account.
// A successful registration logs the user in. The password is wiped
// before returning.
func (a *App) register(ctx context.Context, _ *session.Session, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	a.println("Welcome to PeerSphere, " + u.Name + "!")
	return nil
}

// login prompts for credentials and opens a session. A failed login
// leaves any current session untouched.
func (a *App) login(ctx context.Context, _ *session.Session, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.println("Logged in as " + u.Name)
	return nil
}

func (a *App) logout(ctx context.Context, _ *session.Session, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) whoami(_ context.Context, sess *session.Session, _ []string) error {
	a.println(sess.Name, "<"+sess.Email+">", "id", sess.UserID)
	if !sess.LoginTime.IsZero() {
		a.println("Logged in at", sess.LoginTime.Local().Format("Jan 2, 2006 15:04"))
	}
	return nil
}

func (a *App) health(ctx context.Context, _ *session.Session, _ []string) error {
	status, err := a.auth.Health(ctx)
	if err != nil {
		return err
	}
	a.println("Backend says:", status)
	return nil
}
