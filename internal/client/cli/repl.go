package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peersphere/peersphere/internal/client/session"
)

// command is one REPL verb. Protected commands only run with a session,
// which is handed to run.
type command struct {
	name      string
	aliases   []string
	usage     string
	summary   string
	action    string // completes "Failed to <action>"
	protected bool
	anonOnly  bool
	run       func(ctx context.Context, sess *session.Session, args []string) error
}

// errUsage makes the REPL print the command's usage line instead of a
// failure message.
var errUsage = errors.New("usage")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	commands() []command
	guard(ctx context.Context) (*session.Session, bool)
	commandFailed(ctx context.Context, cmd command, err error)
}

// runREPL starts a simple read–eval–print loop for the PeerSphere CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches it. Unknown commands are reported back to the user. The loop
// exits on EOF, when ctx is done (a line read after cancellation is
// dropped) or when the user types "exit" or "quit".
//
// Handler errors never end the loop: they are passed to
// execIface.commandFailed, which reports them, and the next prompt is shown.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, w io.Writer) {
	index := make(map[string]command)
	for _, c := range a.commands() {
		index[c.name] = c
		for _, alias := range c.aliases {
			index[alias] = c
		}
	}

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "peersphere (%s)> ", statusFn(ctx))

		line, err := readLine(ctx, reader)
		if ctx.Err() != nil {
			fmt.Fprintln(w)
			return
		}
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			printHelp(w, a.commands(), a.isLoggedIn(ctx))
			continue
		}

		cmd, ok := index[name]
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}

		var sess *session.Session
		if cmd.protected {
			if sess, ok = a.guard(ctx); !ok {
				continue
			}
		}

		if err := cmd.run(ctx, sess, args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintln(w, "Usage:", cmd.usage)
				continue
			}
			a.commandFailed(ctx, cmd, err)
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line, giving up when ctx is done. The pending read is
// left behind in that case; the REPL exits right after.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func printHelp(w io.Writer, cmds []command, loggedIn bool) {
	fmt.Fprintln(w, "Available commands:")
	for _, c := range cmds {
		if (c.protected && !loggedIn) || (c.anonOnly && loggedIn) {
			continue
		}
		fmt.Fprintf(w, "  %-28s %s\n", c.usage, c.summary)
	}
	fmt.Fprintf(w, "  %-28s %s\n", "help", "show available commands")
	fmt.Fprintf(w, "  %-28s %s\n", "exit | quit", "leave the program")
}

// idArg parses args[i] as a record id.
func idArg(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}
