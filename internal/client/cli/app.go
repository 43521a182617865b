package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/peersphere/peersphere/internal/client/services"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/client/views"
	"github.com/peersphere/peersphere/internal/logging"
)

// healthTimeout bounds the start-up probe only; commands run without a
// deadline.
const healthTimeout = 3 * time.Second

type App struct {
	auth  services.AuthService
	study services.StudyService
	store *session.Store

	reader *bufio.Reader
	out    io.Writer
	view   *views.Renderer
	log    logging.Logger
}

func NewApp(auth services.AuthService, study services.StudyService, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		auth:   auth,
		study:  study,
		store:  store,
		reader: bufio.NewReader(in),
		out:    out,
		view:   views.NewRenderer(out),
		log:    log,
	}
}

// Run probes the backend and serves the REPL until EOF or "exit".
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to PeerSphere CLI (type 'help' for commands)")
	a.probeHealth(ctx)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) probeHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	status, err := a.auth.Health(ctx)
	if err != nil {
		a.log.Warn(ctx, "backend health check failed", "error", err)
		a.println("Backend unavailable:", err.Error())
		return
	}
	a.log.Info(ctx, "backend health check passed", "status", status)
}

// status renders the prompt state, e.g. "Ana authenticated".
func (a *App) status(ctx context.Context) string {
	state := a.auth.State(ctx)
	if name, ok := a.store.UserName(ctx); ok && state == services.StateAuthenticated && name != "" {
		return name + " " + state.String()
	}
	return state.String()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.State(ctx) == services.StateAuthenticated
}

func (a *App) guard(ctx context.Context) (*session.Session, bool) {
	return a.store.Guard(ctx, a)
}

func (a *App) commandFailed(ctx context.Context, cmd command, err error) {
	a.log.Error(ctx, "command failed", "command", cmd.name, "error", err)
	a.println(fmt.Sprintf("Failed to %s: %s", cmd.action, err.Error()))
}

// Navigate implements session.Navigator for protected commands.
func (a *App) Navigate(location string) {
	a.println(fmt.Sprintf("Please log in first (type '%s').", location))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// confirm asks a y/N question and reports a declined answer.
func (a *App) confirm(prompt string) (bool, error) {
	ok, err := getConfirmation(a.reader, prompt, a.out)
	if err == nil && !ok {
		a.println("Cancelled.")
	}
	return ok, err
}
