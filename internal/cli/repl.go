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
	isRegistered() bool
	Register(ctx context.Context) error
	Country(ctx context.Context) error
	Crop(ctx context.Context) error
	Schedule(ctx context.Context) error
	Remind(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Email(ctx context.Context) error
	Locate(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the planting calendar.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Until the user registers, only "register", "help", and "exit" are accepted;
// every calendar and reminder command answers with a registration hint.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("plantcal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isRegistered() {
				printlnFn("Available commands: country, crop, schedule, remind, (l)ist, edit, delete, email, locate, logout, exit")
			} else {
				printlnFn("Available commands: register, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "country", "crop", "schedule", "remind", "l", "list", "edit", "delete", "email", "locate", "logout":
			if !a.isRegistered() {
				printlnFn("Please register first (type 'register')")
				continue
			}
			switch cmd {
			case "country":
				_ = a.Country(ctx)
			case "crop":
				_ = a.Crop(ctx)
			case "schedule":
				_ = a.Schedule(ctx)
			case "remind":
				_ = a.Remind(ctx)
			case "l", "list":
				_ = a.List(ctx)
			case "edit":
				_ = a.Edit(ctx)
			case "delete":
				_ = a.Delete(ctx)
			case "email":
				_ = a.Email(ctx)
			case "locate":
				_ = a.Locate(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
