package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var sprintln = fmt.Sprintln

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Assess(ctx context.Context, kind string) error
	History(ctx context.Context) error
	WriteJournal(ctx context.Context) error
	ListJournal(ctx context.Context) error
	LogMood(ctx context.Context) error
	ListMoods(ctx context.Context) error
	collectSaves(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the Zenora CLI.
//
// It reads a line from r, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types
// "exit" or "quit". Finished background saves are collected before every
// prompt.
//
// Commands
//
//	help                         show available commands
//	signup | login | logout      manage the session
//	whoami                       show the signed-in user
//	assess [anxiety|depression]  take a questionnaire (default: anxiety)
//	history                      past assessment results (sign-in required)
//	journal | journals           write / list journal entries (sign-in required)
//	mood | moods                 log / list moods (sign-in required)
//	exit | quit                  leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures as notices. This keeps the REPL loop resilient and
// focused on I/O.
//
// r is shared with the command handlers, which read their own prompts from
// it, so the loop must not buffer beyond the current line.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		a.collectSaves(ctx)

		printlnFn(fmt.Sprintf("zenora (%s) > ", statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: assess [anxiety|depression], history, journal, journals, mood, moods, whoami, logout, exit")
			} else {
				printlnFn("Available commands: assess [anxiety|depression], signup, login, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "assess":
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			_ = a.Assess(ctx, kind)

		case "history":
			_ = a.History(ctx)

		case "journal":
			_ = a.WriteJournal(ctx)

		case "journals":
			_ = a.ListJournal(ctx)

		case "mood":
			_ = a.LogMood(ctx)

		case "moods":
			_ = a.ListMoods(ctx)

		case "exit", "quit":
			printlnFn("Take care!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
