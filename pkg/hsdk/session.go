// Package hsdk is the hireloop client SDK: a token-aware request layer that
// attaches bearer credentials, refreshes them proactively and reactively, and
// keeps concurrent callers behind a single in-flight refresh. CLI commands
// and bots use it so they don't wire store + client + headers themselves.
package hsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

// ErrSessionExpired is the fixed user-facing failure for auth that cannot be
// recovered. Callers render it inline; the CLI additionally redirects the
// user to `hirectl auth login` via the expired callback.
var ErrSessionExpired = errors.New("your session has expired, please log in again")

const refreshEndpoint = "/auth/refresh"

// Session owns everything auth-related: the durable token store, the HTTP
// client, and the single-flight refresh coordination. It is constructed once
// at the composition root and passed to every request-issuing component;
// there is no package-global state.
type Session struct {
	cfg   *Config
	store Store
	http  *http.Client

	flight singleflight.Group

	mu        sync.Mutex
	onExpired []func()
}

// NewSession builds a Session around the given config and store.
func NewSession(cfg *Config, store Store) *Session {
	return &Session{
		cfg:   cfg,
		store: store,
		http:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Store exposes the underlying session store.
func (s *Session) Store() Store {
	return s.store
}

// OnSessionExpired registers a fire-and-forget callback invoked whenever auth
// cannot be recovered (refresh token missing or rejected). Callbacks must not
// block; they run on the calling goroutine.
func (s *Session) OnSessionExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = append(s.onExpired, fn)
}

func (s *Session) notifyExpired() {
	s.mu.Lock()
	fns := make([]func(), len(s.onExpired))
	copy(fns, s.onExpired)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// EnsureRefreshed coordinates refresh across concurrent callers: while one
// refresh is outstanding no second network call is issued, and every caller
// that arrives during the window observes the same outcome. Once the flight
// settles the group forgets it, so a later call starts a fresh attempt.
func (s *Session) EnsureRefreshed(ctx context.Context) error {
	_, err, _ := s.flight.Do("refresh", func() (any, error) {
		return nil, s.Refresh(ctx)
	})
	return err
}

// Refresh exchanges the stored refresh token for a new pair and persists it.
// Failure classes matter to callers:
//   - no refresh token, or the backend rejects it (401/403): the session is
//     gone; the store is cleared and the error carries CodeSessionExpired.
//   - anything else (transport error, 5xx, unrecognized body): transient;
//     the store is left intact and the error carries CodeRefreshFailed.
//
// Prefer EnsureRefreshed; calling Refresh directly bypasses single-flight.
func (s *Session) Refresh(ctx context.Context) error {
	refresh := s.store.RefreshToken(ctx)
	if refresh == "" {
		return herr.New(herr.CodeSessionExpired, ErrSessionExpired)
	}

	target, err := s.resolveURL(refreshEndpoint)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return herr.New(herr.CodeRefreshFailed, err)
	}
	// The backend wants the refresh token as the bearer credential, not as
	// a body field.
	req.Header.Set("Authorization", "Bearer "+refresh)

	resp, err := s.http.Do(req)
	if err != nil {
		return herr.New(herr.CodeRefreshFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// The refresh token itself is invalid; only a full re-login helps.
		_ = s.store.Clear(ctx)
		return herr.New(herr.CodeSessionExpired, ErrSessionExpired)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return herr.Newf(herr.CodeRefreshFailed, "refresh failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return herr.New(herr.CodeRefreshFailed, err)
	}
	pair, ok := decodeTokenResponse(body)
	if !ok {
		return herr.Newf(herr.CodeRefreshFailed, "unrecognized refresh response")
	}

	if err := s.store.Save(ctx, pair); err != nil {
		return herr.New(herr.CodeUnknown, err)
	}
	return nil
}

// Credentials is the login payload for recruiter accounts.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with the backend and persists the issued token pair.
// The login endpoint speaks the same three response shapes as refresh.
func (s *Session) Login(ctx context.Context, creds Credentials) error {
	resp, err := s.Dispatch(ctx, Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/login",
		Body:     mustJSON(creds),
		SkipAuth: true,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return herr.Newf(herr.CodeUnauthorized, "%s", errorMessage(resp.StatusCode, body))
	}

	pair, ok := decodeTokenResponse(body)
	if !ok {
		return herr.Newf(herr.CodeUnknown, "unrecognized login response")
	}
	if err := s.store.Save(ctx, pair); err != nil {
		return herr.New(herr.CodeUnknown, err)
	}
	return nil
}

// Logout drops the stored session. It never fails on an already-empty store.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// Credentials and the SDK's own payloads are plain structs; a
		// marshal failure here is a programming error.
		panic(fmt.Sprintf("hsdk: marshal: %v", err))
	}
	return b
}
