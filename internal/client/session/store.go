package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/repositories/metadata"
	"github.com/peersphere/peersphere/internal/common"
	"github.com/peersphere/peersphere/internal/logging"
)

var errNoSession = errors.New("no session")

// EntryLocation is where anonymous users are sent by RequireAuth.
const EntryLocation = "login"

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(location string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(location string)

func (f NavigatorFunc) Navigate(location string) { f(location) }

// Store is the single source of truth for "is a user logged in".
//
// tab holds the session for the lifetime of the process (or longer, when
// configured with a durable repository). legacy is the long-lived area an
// older client used to cache the user; the store only ever clears it.
type Store struct {
	tab    metadata.Repository
	legacy metadata.Repository
	log    logging.Logger
	now    func() time.Time
}

func NewStore(tab, legacy metadata.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{tab: tab, legacy: legacy, log: log, now: time.Now}
}

// Save writes a fresh session for u, replacing any existing one.
func (s *Store) Save(ctx context.Context, u models.User) (*Session, error) {
	sess := newSession(u, s.now())
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.tab.Set(ctx, common.SessionStorageKey, data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.Debug(ctx, "session saved", "user_id", sess.UserID)
	return &sess, nil
}

// Get returns the stored session. Missing, unreadable or malformed records
// are reported as absent.
func (s *Store) Get(ctx context.Context) (*Session, bool) {
	sess, err := s.load(ctx)
	return sess, err == nil
}

// load reads the session. A cancelled or expired ctx is returned as is so
// callers can tell it apart from a missing session.
func (s *Store) load(ctx context.Context) (*Session, error) {
	raw, err := s.tab.Get(ctx, common.SessionStorageKey)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.log.Warn(ctx, "failed to read session", "error", err)
		return nil, errNoSession
	}
	if raw == nil {
		return nil, errNoSession
	}

	sess, err := decode(raw)
	if err != nil {
		s.log.Warn(ctx, "ignoring malformed session", "error", err)
		return nil, errNoSession
	}
	return sess, nil
}

// Clear removes the session and the legacy cached user. Both removals are
// attempted; the first error is returned.
func (s *Store) Clear(ctx context.Context) error {
	var firstErr error
	if err := s.tab.Delete(ctx, common.SessionStorageKey); err != nil {
		firstErr = fmt.Errorf("clear session: %w", err)
	}
	if s.legacy != nil {
		if err := s.legacy.Delete(ctx, common.LegacyUserStorageKey); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("clear legacy user: %w", err)
		}
	}
	if firstErr != nil {
		s.log.Error(ctx, "failed to clear session", "error", firstErr)
	}
	return firstErr
}

func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

// RequireAuth sends anonymous users to EntryLocation and reports false.
func (s *Store) RequireAuth(ctx context.Context, nav Navigator) bool {
	_, ok := s.Guard(ctx, nav)
	return ok
}

// Guard is RequireAuth returning the session a protected view runs with.
// A cancelled ctx fails the guard without navigating.
func (s *Store) Guard(ctx context.Context, nav Navigator) (*Session, bool) {
	sess, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, errNoSession) && nav != nil {
			nav.Navigate(EntryLocation)
		}
		return nil, false
	}
	return sess, true
}

func (s *Store) UserID(ctx context.Context) (int64, bool) {
	sess, ok := s.Get(ctx)
	if !ok {
		return 0, false
	}
	return sess.UserID, true
}

func (s *Store) UserName(ctx context.Context) (string, bool) {
	sess, ok := s.Get(ctx)
	if !ok {
		return "", false
	}
	return sess.Name, true
}

func (s *Store) UserEmail(ctx context.Context) (string, bool) {
	sess, ok := s.Get(ctx)
	if !ok {
		return "", false
	}
	return sess.Email, true
}
