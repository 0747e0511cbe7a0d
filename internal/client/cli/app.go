// Package cli is the interactive terminal application for the JoyTrade
// marketplace. Every browser page of the original client maps to a screen:
// a fetch on entry, a rendered list or form, and a small command loop.
// Navigation between screens runs through the nav state machine.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"joytrade/internal/client/api"
	"joytrade/internal/client/chat"
	"joytrade/internal/client/nav"
	"joytrade/internal/client/session"
	"joytrade/internal/logging"
)

// errQuit unwinds the screen loop when the user asks to leave.
var errQuit = errors.New("quit")

// App wires the API client, the session, and the navigation router into the
// screen loop. Dependencies are injected; nothing here is a package-level
// singleton.
type App struct {
	api     api.Client
	session *session.Manager
	router  *nav.Router
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(client api.Client, sess *session.Manager, log logging.Logger) *App {
	return &App{
		api:     client,
		session: sess,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run validates any stored credential, then loops: render the active screen,
// take its navigation result, transition. The router cancels the previous
// screen's context on every transition, so a response landing after the
// screen was left has no state to update.
func (a *App) Run(ctx context.Context) error {
	a.session.Initialize(ctx)
	a.router = nav.NewRouter(ctx)

	a.title("JoyTrade Campus Marketplace")
	a.info("Type 'help' on any screen for commands.")
	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
	}

	for {
		next, err := a.route(a.router.Context(), a.router.Current())
		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out, "Bye!")
				return nil
			}
			return err
		}
		a.router.Go(next)
	}
}

func (a *App) route(ctx context.Context, s nav.Screen) (nav.Screen, error) {
	switch s := s.(type) {
	case nav.Home:
		return a.homeScreen(ctx)
	case nav.Product:
		return a.productScreen(ctx, s.ID)
	case nav.Favorites:
		return a.favoritesScreen(ctx)
	case nav.Orders:
		return a.ordersScreen(ctx)
	case nav.Cart:
		return a.cartScreen(ctx)
	case nav.Login:
		return a.loginScreen(ctx)
	case nav.Register:
		return a.registerScreen(ctx)
	case nav.Chat:
		return a.chatScreen(ctx, nil)
	case nav.ChatDirect:
		return a.chatScreen(ctx, &chat.DirectTarget{ProductID: s.ProductID, Receiver: s.Receiver.Username})
	case nav.Post:
		return a.postScreen(ctx)
	case nav.Profile:
		return a.profileScreen(ctx)
	case nav.Edit:
		return a.editScreen(ctx, s.ProductID)
	case nav.NotFound:
		a.empty("Page not found: " + s.Requested)
		return nav.Home{}, nil
	default:
		return nav.NotFound{Requested: s.Name()}, nil
	}
}

// prompt reads one command line for the named screen. The prompt shows the
// logged-in username, mirroring the header of the original UI.
func (a *App) prompt(screen string) (string, []string, error) {
	status := ""
	if u := a.session.CurrentUser(); u != nil {
		status = " (" + u.Username + ")"
	}
	fmt.Fprintf(a.out, "joytrade:%s%s> ", screen, status)

	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", nil, err
	}
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, nil
	}
	return parts[0], parts[1:], nil
}

// globalNav maps the commands available on every screen (the original's
// header menu) to destinations.
func globalNav(cmd string) (nav.Screen, bool) {
	switch cmd {
	case "home":
		return nav.Home{}, true
	case "favorites":
		return nav.Favorites{}, true
	case "orders":
		return nav.Orders{}, true
	case "cart":
		return nav.Cart{}, true
	case "chat":
		return nav.Chat{}, true
	case "profile":
		return nav.Profile{}, true
	case "post":
		return nav.Post{}, true
	case "login":
		return nav.Login{}, true
	case "register":
		return nav.Register{}, true
	}
	return nil, false
}

// handleCommon processes commands shared by every screen: the global menu,
// logout, and quit. The third return reports whether the command was
// consumed.
func (a *App) handleCommon(ctx context.Context, cmd string) (nav.Screen, error, bool) {
	if next, ok := globalNav(cmd); ok {
		return next, nil, true
	}
	switch cmd {
	case "logout":
		a.session.Logout(ctx)
		fmt.Fprintln(a.out, "Logged out.")
		return nav.Login{}, nil, true
	case "quit", "exit":
		return nil, errQuit, true
	}
	return nil, nil, false
}

// requireLogin enforces the per-screen authentication gate: the navigation
// machine does not guard, so each gated screen prompts for login itself.
func (a *App) requireLogin(what string) (nav.Screen, bool) {
	if a.session.LoggedIn() {
		return nil, false
	}
	a.alert("You must login to " + what + ".")
	return nav.Login{}, true
}
