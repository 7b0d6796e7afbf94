package hsdk

import (
	"context"
	"errors"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/hireloop/hireloop/pkg/kv"
)

// Storage keys for the persisted session. Fixed names so any backend (OS
// keyring, Redis, memory) holds the same four entries.
const (
	KeyAccessToken    = "access_token"
	KeyRefreshToken   = "refresh_token"
	KeyUserID         = "user_id"
	KeyRecruiterPhone = "recruiter_phone"
)

// TokenPair is the credential set issued by the auth backend on login or
// refresh. Empty fields mean "not supplied"; Save leaves them untouched.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id,omitempty"`
}

// Store is the durable session store. Getters return "" when a value is
// absent; persistence failures on reads are folded into absence because the
// caller's only recourse is re-authentication anyway.
type Store interface {
	// Save writes the fields of pair that are present. Absent (empty)
	// fields are left untouched, so a partial refresh response never
	// clears what it didn't supply.
	Save(ctx context.Context, pair TokenPair) error

	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
	UserID(ctx context.Context) string

	RecruiterPhone(ctx context.Context) string
	SetRecruiterPhone(ctx context.Context, phone string) error

	// IsAuthenticated reports whether both tokens are present, regardless
	// of expiry.
	IsAuthenticated(ctx context.Context) bool

	// Clear removes all session keys unconditionally. Idempotent.
	Clear(ctx context.Context) error
}

const keyringService = "hireloop"

// normalizeScope converts a baseURL into a stable scope for storage keys.
// It trims trailing slashes and lowercases so https://example.com/ and
// https://example.com land on the same session.
func normalizeScope(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	s = strings.TrimRight(s, "/")
	s = strings.ToLower(s)
	if s == "" {
		return "default"
	}
	return s
}

// KeyringStore persists the session in the OS keyring, one entry per session
// key, scoped by base URL so a user can stay logged in to several backends.
type KeyringStore struct {
	scope string
}

// NewKeyringStore creates a keyring-backed store scoped to the given base URL.
func NewKeyringStore(baseURL string) *KeyringStore {
	return &KeyringStore{scope: normalizeScope(baseURL)}
}

func (s *KeyringStore) user(key string) string {
	return s.scope + "/" + key
}

func (s *KeyringStore) get(key string) string {
	val, err := keyring.Get(keyringService, s.user(key))
	if err != nil {
		return ""
	}
	return val
}

func (s *KeyringStore) Save(_ context.Context, pair TokenPair) error {
	if pair.AccessToken != "" {
		if err := keyring.Set(keyringService, s.user(KeyAccessToken), pair.AccessToken); err != nil {
			return err
		}
	}
	if pair.RefreshToken != "" {
		if err := keyring.Set(keyringService, s.user(KeyRefreshToken), pair.RefreshToken); err != nil {
			return err
		}
	}
	if pair.UserID != "" {
		if err := keyring.Set(keyringService, s.user(KeyUserID), pair.UserID); err != nil {
			return err
		}
	}
	return nil
}

func (s *KeyringStore) AccessToken(context.Context) string  { return s.get(KeyAccessToken) }
func (s *KeyringStore) RefreshToken(context.Context) string { return s.get(KeyRefreshToken) }
func (s *KeyringStore) UserID(context.Context) string       { return s.get(KeyUserID) }

func (s *KeyringStore) RecruiterPhone(context.Context) string {
	return s.get(KeyRecruiterPhone)
}

func (s *KeyringStore) SetRecruiterPhone(_ context.Context, phone string) error {
	return keyring.Set(keyringService, s.user(KeyRecruiterPhone), phone)
}

func (s *KeyringStore) IsAuthenticated(ctx context.Context) bool {
	return s.AccessToken(ctx) != "" && s.RefreshToken(ctx) != ""
}

func (s *KeyringStore) Clear(context.Context) error {
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyUserID, KeyRecruiterPhone} {
		if err := keyring.Delete(keyringService, s.user(key)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return err
		}
	}
	return nil
}

var _ Store = (*KeyringStore)(nil)

// KVStore persists the session in any kv.Store (Redis for shared headless
// deployments, memory for tests).
type KVStore struct {
	kv    kv.Store
	scope string
}

// NewKVStore creates a kv-backed store scoped to the given base URL.
func NewKVStore(backend kv.Store, baseURL string) *KVStore {
	return &KVStore{kv: backend, scope: normalizeScope(baseURL)}
}

func (s *KVStore) key(name string) string {
	return "session:" + s.scope + ":" + name
}

func (s *KVStore) get(ctx context.Context, name string) string {
	val, err := s.kv.Get(ctx, s.key(name))
	if err != nil {
		return ""
	}
	return val
}

func (s *KVStore) Save(ctx context.Context, pair TokenPair) error {
	if pair.AccessToken != "" {
		if err := s.kv.Set(ctx, s.key(KeyAccessToken), pair.AccessToken); err != nil {
			return err
		}
	}
	if pair.RefreshToken != "" {
		if err := s.kv.Set(ctx, s.key(KeyRefreshToken), pair.RefreshToken); err != nil {
			return err
		}
	}
	if pair.UserID != "" {
		if err := s.kv.Set(ctx, s.key(KeyUserID), pair.UserID); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVStore) AccessToken(ctx context.Context) string  { return s.get(ctx, KeyAccessToken) }
func (s *KVStore) RefreshToken(ctx context.Context) string { return s.get(ctx, KeyRefreshToken) }
func (s *KVStore) UserID(ctx context.Context) string       { return s.get(ctx, KeyUserID) }

func (s *KVStore) RecruiterPhone(ctx context.Context) string {
	return s.get(ctx, KeyRecruiterPhone)
}

func (s *KVStore) SetRecruiterPhone(ctx context.Context, phone string) error {
	return s.kv.Set(ctx, s.key(KeyRecruiterPhone), phone)
}

func (s *KVStore) IsAuthenticated(ctx context.Context) bool {
	return s.AccessToken(ctx) != "" && s.RefreshToken(ctx) != ""
}

func (s *KVStore) Clear(ctx context.Context) error {
	for _, name := range []string{KeyAccessToken, KeyRefreshToken, KeyUserID, KeyRecruiterPhone} {
		if err := s.kv.Delete(ctx, s.key(name)); err != nil {
			return err
		}
	}
	return nil
}

var _ Store = (*KVStore)(nil)
