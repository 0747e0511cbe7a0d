package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"joytrade/internal/client/chat"
	"joytrade/internal/client/nav"
)

// chatScreen drives the conversation view. A nil direct target opens the
// plain conversation list; a non-nil one aims the screen at a (product,
// counterparty) pair from a referring screen and selects it immediately.
func (a *App) chatScreen(ctx context.Context, direct *chat.DirectTarget) (nav.Screen, error) {
	if next, gated := a.requireLogin("chat"); gated {
		return next, nil
	}

	view := chat.NewView(a.api, a.log, *a.session.CurrentUser(), direct)
	view.Load(ctx)
	if direct != nil {
		view.Select(ctx, direct.ProductID)
	}

	renderConversations := func() {
		a.title("Conversations")
		if len(view.Conversations) == 0 {
			a.empty("No conversations yet.")
			return
		}
		for _, c := range view.Conversations {
			row := fmt.Sprintf("  [%d] %s — %s (%s)", c.ProductID, c.ProductName, money(c.ProductPrice), c.OtherUser)
			if c.ProductID == view.SelectedID {
				row = selectedStyle.Render(row)
			}
			fmt.Fprintln(a.out, row)
		}
	}

	renderMessages := func() {
		if view.SelectedID == 0 {
			a.info("Select a conversation: sel <product id>")
			return
		}
		if view.Summary != nil {
			a.header(fmt.Sprintf("%s — %s", view.Summary.Name, money(view.Summary.Price)))
		}
		if len(view.Messages) == 0 {
			a.empty("No messages yet. Say hello!")
			return
		}
		for _, m := range view.Messages {
			line := fmt.Sprintf("[%s] %s: %s", when(m.CreatedAt), m.Sender, m.Text)
			if m.Sender == view.User.Username {
				line = ownStyle.Render(line)
			}
			fmt.Fprintln(a.out, line)
		}
	}

	renderConversations()
	renderMessages()

	for {
		cmd, args, err := a.prompt("chat")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: list, sel <product id>, send <text>, open <id>, back, home, quit")
		case "list":
			renderConversations()
			renderMessages()
		case "sel", "select":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: sel <product id>")
				continue
			}
			view.Select(ctx, id)
			renderConversations()
			renderMessages()
		case "send":
			text := strings.Join(args, " ")
			switch err := view.Send(ctx, text); {
			case errors.Is(err, chat.ErrEmptyMessage):
				// Nothing to send, nothing to report.
			case errors.Is(err, chat.ErrNoRecipient):
				a.alert("Select a conversation first.")
			case err != nil:
				a.alert("Fail to send: " + err.Error())
			default:
				renderMessages()
			}
		case "open":
			id, ok := parseID(args)
			if !ok && view.SelectedID != 0 {
				id, ok = view.SelectedID, true
			}
			if !ok {
				a.alert("Usage: open <product id>")
				continue
			}
			return nav.Product{ID: id}, nil
		case "back":
			return nav.Home{}, nil
		default:
			if next, err, ok := a.handleCommon(ctx, cmd); ok {
				return next, err
			}
			a.alert("Unknown command: " + cmd)
		}
	}
}
