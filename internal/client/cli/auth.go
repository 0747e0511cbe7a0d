package cli

import (
	"context"
	"fmt"

	"joytrade/internal/client/nav"
)

// loginScreen prompts for credentials. A failed login alerts and stays on
// the login screen, leaving the session untouched.
func (a *App) loginScreen(ctx context.Context) (nav.Screen, error) {
	a.title("Login")
	a.info("Enter 'register' to create an account, 'quit' to exit.")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return nil, err
	}
	switch username {
	case "register":
		return nav.Register{}, nil
	case "quit", "exit":
		return nil, errQuit
	case "":
		return nav.Home{}, nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return nil, err
	}

	user, err := a.session.Login(ctx, username, password)
	if err != nil {
		a.alert("Login failed: " + err.Error())
		return nav.Login{}, nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	return nav.Home{}, nil
}

// registerScreen creates an account; success authenticates immediately
// (token and user come back in one response).
func (a *App) registerScreen(ctx context.Context) (nav.Screen, error) {
	a.title("Register")
	a.info("Leave username empty to go back to login.")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nav.Login{}, nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return nil, err
	}

	user, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		a.alert("Registration failed: " + err.Error())
		return nav.Register{}, nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	return nav.Home{}, nil
}
