package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root starts the read–eval–print loop. It reads a line, parses the first
// token as the command, and dispatches to the App methods. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are reported by the handlers
// themselves; the loop stays resilient and focused on I/O.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to HirePilot CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "hp %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "jd":
			if !a.requireSession() {
				continue
			}
			_ = a.SetJobDescription(ctx)

		case "attach":
			if !a.requireSession() {
				continue
			}
			_ = a.Attach(ctx, args)

		case "files", "f":
			if !a.requireSession() {
				continue
			}
			_ = a.Files(ctx)

		case "detach":
			if !a.requireSession() {
				continue
			}
			_ = a.Detach(ctx, strings.Join(args, " "))

		case "clear":
			if !a.requireSession() {
				continue
			}
			a.ClearFiles(ctx)

		case "analyze":
			if !a.requireSession() {
				continue
			}
			_ = a.Analyze(ctx)

		case "results", "r":
			if !a.requireSession() {
				continue
			}
			_ = a.Results(ctx)

		case "report":
			if !a.requireSession() {
				continue
			}
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: report <rank>")
				continue
			}
			_ = a.Report(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: jd, attach <path>, (f)iles, detach <name>, clear, analyze, (r)esults, report <rank>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
