package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run starts a simple read–eval–print loop.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on the App. Unknown commands are reported back to the user. The
// loop exits on EOF or when the user types "exit" or "quit". Errors from
// command handlers are printed by the handlers themselves so the loop stays
// focused on I/O.
func (a *App) Run(ctx context.Context) {

	fmt.Println("Welcome to the bookatable CLI (type 'help' for commands)")

	for {
		fmt.Printf("bk %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: restaurants [term], reserve, my, cancel <id>, me, photo <restaurant-id> <file>, exit")
			} else {
				fmt.Println("Available commands: register, login, restaurants [term], exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "restaurants":
			search := ""
			if len(args) > 0 {
				search = args[0]
			}
			a.Restaurants(ctx, search)
		case "reserve":
			a.Reserve(ctx)
		case "my":
			a.My(ctx)
		case "cancel":
			if len(args) != 1 {
				fmt.Println("Usage: cancel <reservation-id>")
				continue
			}
			a.Cancel(ctx, args[0])
		case "me":
			a.Me(ctx)
		case "photo":
			if len(args) != 2 {
				fmt.Println("Usage: photo <restaurant-id> <file>")
				continue
			}
			a.Photo(ctx, args[0], args[1])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
