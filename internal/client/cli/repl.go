package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Products(ctx context.Context) error
	Users(ctx context.Context) error
	Search(ctx context.Context, q string) error
	AddUser(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command; for "search" the rest of the line is the
// query. The loop exits on EOF, on "exit"/"quit", or when ctx is done.
//
//	help                 show available commands
//	login | logout       sign in / out
//	whoami               show the signed-in user
//	products (p)         fetch and list products
//	users (u)            fetch and list users
//	search <text>        filter the last fetched users
//	adduser              create a user
//	exit | quit          leave the program
//
// Errors returned by handlers are ignored here; handlers report to the user
// themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)roducts, (u)sers, search <text>, adduser, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, (p)roducts, (u)sers, search <text>, adduser, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "search":
			q := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))
			_ = a.Search(ctx, q)

		case "adduser":
			_ = a.AddUser(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
