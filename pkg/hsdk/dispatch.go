package hsdk

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

// Request describes one outgoing API call. Endpoint may be absolute or
// relative to the configured base URL. Header accepts an http.Header, a
// map[string]string, or a [][2]string pair list and is normalized before
// sending. Body is buffered as bytes so the one reactive retry can resend it.
type Request struct {
	Method   string
	Endpoint string
	Header   any
	Body     []byte

	// ContentType overrides the default application/json. Multipart
	// callers pass their writer's FormDataContentType so the boundary
	// survives.
	ContentType string

	// SkipAuth sends the request bare: no token attached, no refresh ever
	// triggered.
	SkipAuth bool

	// SkipTokenRefresh attaches the current token if present but never
	// triggers a refresh, not even on expiry or 401.
	SkipTokenRefresh bool
}

// Dispatch is the single entry point every API call passes through. It
// resolves the target URL, forces a refresh for eager-refresh endpoints,
// refreshes proactively when the stored token is near expiry, attaches the
// bearer token, and retries exactly once after a reactive refresh on 401.
//
// Non-401 statuses are returned raw; interpreting them is the caller's job
// (the JSON wrappers do that for API calls). The only errors raised here are
// transport failures, the configuration error for a missing base URL, and
// session-expired when refresh cannot recover auth.
func (s *Session) Dispatch(ctx context.Context, r Request) (*http.Response, error) {
	target, err := s.resolveURL(r.Endpoint)
	if err != nil {
		return nil, err
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	header := normalizeHeader(r.Header)
	if r.ContentType != "" {
		header.Set("Content-Type", r.ContentType)
	} else if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	header.Set("X-Request-Id", uuid.NewString())

	refreshed := false
	if !r.SkipAuth && s.isEagerRefreshPath(target) {
		// The chat backend rejects near-expiry tokens outright, so these
		// endpoints refresh before every request regardless of expiry.
		if err := s.EnsureRefreshed(ctx); err != nil {
			s.notifyExpired()
			return nil, herr.New(herr.CodeSessionExpired, ErrSessionExpired)
		}
		refreshed = true
	}

	if !r.SkipAuth {
		token := s.store.AccessToken(ctx)
		if token != "" && !refreshed && !r.SkipTokenRefresh && IsExpired(token) {
			if err := s.EnsureRefreshed(ctx); err != nil {
				s.notifyExpired()
				return nil, herr.New(herr.CodeSessionExpired, ErrSessionExpired)
			}
		}
		if token = s.store.AccessToken(ctx); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.send(ctx, method, target, header, r.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !r.SkipAuth && !r.SkipTokenRefresh {
		if err := s.EnsureRefreshed(ctx); err != nil {
			_ = s.store.Clear(ctx)
			s.notifyExpired()
			// Hand the original 401 back so the caller sees what the
			// backend said.
			return resp, nil
		}
		if token := s.store.AccessToken(ctx); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
		resp.Body.Close()
		// One retry, final either way. No backoff loop: this client talks
		// to a single backend and a second 401 means the session is not
		// coming back on its own.
		return s.send(ctx, method, target, header, r.Body)
	}

	return resp, nil
}

func (s *Session) send(ctx context.Context, method, target string, header http.Header, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header = header.Clone()
	return s.http.Do(req)
}

// resolveURL passes absolute URLs through and joins relative endpoints onto
// the configured base URL. A missing base URL is a configuration error, not
// a network one.
func (s *Session) resolveURL(endpoint string) (string, error) {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint, nil
	}
	if s.cfg.BaseURL == "" {
		return "", herr.Newf(herr.CodeConfig,
			"no base URL configured: set baseUrl in hireloop.yaml or %s_BASEURL", EnvPrefix)
	}
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/"), nil
}

// isEagerRefreshPath reports whether the target's path falls under one of
// the configured eager-refresh prefixes.
func (s *Session) isEagerRefreshPath(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	path := u.Path
	if base, err := url.Parse(s.cfg.BaseURL); err == nil && base.Path != "" && base.Path != "/" {
		path = strings.TrimPrefix(path, strings.TrimRight(base.Path, "/"))
	}
	for _, prefix := range s.cfg.EagerRefreshPrefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// normalizeHeader folds the supported header shapes into an http.Header with
// canonical keys. Unknown shapes yield an empty header.
func normalizeHeader(h any) http.Header {
	out := http.Header{}
	switch v := h.(type) {
	case nil:
	case http.Header:
		for key, values := range v {
			for _, val := range values {
				out.Add(key, val)
			}
		}
	case map[string]string:
		for key, val := range v {
			out.Set(key, val)
		}
	case [][2]string:
		for _, pair := range v {
			out.Add(pair[0], pair[1])
		}
	}
	return out
}
