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
	Register(ctx context.Context) error
	Login(ctx context.Context, remember bool) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Strength(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the credkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                  show available commands
//	  - register              create the identity (replaces another one)
//	  - login [--remember]    authenticate, optionally remembering the pair
//	  - whoami                show the stored identity
//	  - strength              score a password
//	  - exit | quit           leave the program
//
//	Logged in:
//	  - help, whoami, strength, exit | quit
//	  - logout                log out
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ck %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
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
				printlnFn("Available commands: whoami, strength, logout, exit")
			} else {
				printlnFn("Available commands: register, login [--remember], whoami, strength, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			remember, ok := parseLoginArgs(args)
			if !ok {
				printlnFn("Usage: login [--remember]")
				continue
			}
			cmdErr = a.Login(ctx, remember)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in.")
				continue
			}
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "strength":
			cmdErr = a.Strength(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
	}
}

func parseLoginArgs(args []string) (remember bool, ok bool) {
	for _, arg := range args {
		switch arg {
		case "--remember", "-r":
			remember = true
		default:
			return false, false
		}
	}
	return remember, true
}
