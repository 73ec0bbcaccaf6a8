package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App implements
// it; tests substitute a recorder.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Speed(ctx context.Context) error
	Route(ctx context.Context) error
	Settings(ctx context.Context) error
	Toggle(ctx context.Context, name string) error
	Users(ctx context.Context) error
}

var errLoginRequired = errors.New("please log in first")

// runREPL reads commands from reader until EOF, "exit" or "quit", or ctx
// cancellation. Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "stm (%s)> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: speed, route, settings, toggle <name>, users, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, users, exit")
			}
		case "signup", "register":
			cmdErr = a.SignUp(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "logout":
			cmdErr = requireLogin(a, func() error { return a.Logout(ctx) })
		case "speed":
			cmdErr = requireLogin(a, func() error { return a.Speed(ctx) })
		case "route":
			cmdErr = requireLogin(a, func() error { return a.Route(ctx) })
		case "settings":
			cmdErr = requireLogin(a, func() error { return a.Settings(ctx) })
		case "toggle":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: toggle <dark_mode|notifications|location_services>")
				continue
			}
			cmdErr = requireLogin(a, func() error { return a.Toggle(ctx, args[0]) })
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

func requireLogin(a execIface, fn func() error) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	return fn()
}
