package hsdk

import (
	"context"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/hireloop/hireloop/pkg/kv"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	keyring.MockInit()
	return map[string]Store{
		"keyring": NewKeyringStore("https://app.example.com/"),
		"kv":      NewKVStore(kv.NewMemoryStore(), "https://app.example.com/"),
	}
}

func TestStore_PartialSave(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, TokenPair{AccessToken: "old-a", RefreshToken: "r", UserID: "u-1"}); err != nil {
				t.Fatalf("save: %v", err)
			}

			// Saving only an access token must not touch the others.
			if err := store.Save(ctx, TokenPair{AccessToken: "a"}); err != nil {
				t.Fatalf("partial save: %v", err)
			}

			if got := store.AccessToken(ctx); got != "a" {
				t.Errorf("access token = %q, want a", got)
			}
			if got := store.RefreshToken(ctx); got != "r" {
				t.Errorf("refresh token = %q, want r", got)
			}
			if got := store.UserID(ctx); got != "u-1" {
				t.Errorf("user id = %q, want u-1", got)
			}
		})
	}
}

func TestStore_IsAuthenticated(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if store.IsAuthenticated(ctx) {
				t.Fatal("empty store should not be authenticated")
			}
			if err := store.Save(ctx, TokenPair{AccessToken: "a"}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if store.IsAuthenticated(ctx) {
				t.Fatal("access token alone should not be authenticated")
			}
			if err := store.Save(ctx, TokenPair{RefreshToken: "r"}); err != nil {
				t.Fatalf("save: %v", err)
			}
			// Expiry is irrelevant here; both tokens present is enough.
			if !store.IsAuthenticated(ctx) {
				t.Fatal("both tokens present should be authenticated")
			}
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, TokenPair{AccessToken: "a", RefreshToken: "r", UserID: "u"}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := store.SetRecruiterPhone(ctx, "+100200300"); err != nil {
				t.Fatalf("set phone: %v", err)
			}

			if err := store.Clear(ctx); err != nil {
				t.Fatalf("first clear: %v", err)
			}
			if store.IsAuthenticated(ctx) {
				t.Fatal("store should be empty after clear")
			}
			if got := store.RecruiterPhone(ctx); got != "" {
				t.Fatalf("recruiter phone should be cleared, got %q", got)
			}

			if err := store.Clear(ctx); err != nil {
				t.Fatalf("second clear: %v", err)
			}
			if store.IsAuthenticated(ctx) {
				t.Fatal("store should stay empty after repeated clear")
			}
		})
	}
}

func TestStore_RecruiterPhone(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if got := store.RecruiterPhone(ctx); got != "" {
				t.Fatalf("unset phone should be empty, got %q", got)
			}
			if err := store.SetRecruiterPhone(ctx, "+100200300"); err != nil {
				t.Fatalf("set phone: %v", err)
			}
			if got := store.RecruiterPhone(ctx); got != "+100200300" {
				t.Fatalf("phone = %q", got)
			}
		})
	}
}

func TestNormalizeScope(t *testing.T) {
	if normalizeScope("https://App.Example.com/") != normalizeScope("https://app.example.com") {
		t.Fatal("trailing slash and case should not change the scope")
	}
	if normalizeScope("") != "default" {
		t.Fatal("empty base URL should fall back to the default scope")
	}
}
