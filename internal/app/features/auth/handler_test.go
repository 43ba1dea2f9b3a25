package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/features/auth"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/authutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/testutil"
	"go.uber.org/zap"
)

const (
	testEmail    = "bob@dylan.com"
	testPassword = "toto1234!"
)

func newServer(t *testing.T) (http.Handler, *testutil.FakeSessions, string) {
	t.Helper()

	store := testutil.NewFakeUserStore()
	hash, err := authutil.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := store.Create(context.Background(), testEmail, hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sessions := testutil.NewFakeSessions()
	h := auth.NewHandler(store, sessions, zap.NewNop())
	return auth.Routes(h), sessions, u.ID.Hex()
}

func TestConnect(t *testing.T) {
	srv, sessions, userID := newServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		req := testutil.NewRequest(http.MethodGet, "/connect", "")
		req.SetBasicAuth(testEmail, testPassword)
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusOK)

		var body map[string]string
		rec.DecodeJSON(t, &body)
		token := body["token"]
		if token == "" {
			t.Fatal("response has no token")
		}
		if got := sessions.Tokens[token]; got != userID {
			t.Errorf("session user = %q, want %q", got, userID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.NewRequest(http.MethodGet, "/connect", "")
		req.SetBasicAuth(testEmail, "wrong")
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})

	t.Run("unknown email", func(t *testing.T) {
		req := testutil.NewRequest(http.MethodGet, "/connect", "")
		req.SetBasicAuth("nobody@dylan.com", testPassword)
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})

	t.Run("no credentials", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/connect", ""))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})
}

func TestDisconnect(t *testing.T) {
	srv, sessions, userID := newServer(t)

	t.Run("live session", func(t *testing.T) {
		sessions.Tokens["live-token"] = userID

		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/disconnect", "", "live-token"))
		rec.AssertStatus(t, http.StatusNoContent)

		if _, ok := sessions.Tokens["live-token"]; ok {
			t.Error("session still present after disconnect")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewTokenRequest(http.MethodGet, "/disconnect", "", "bogus"))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})

	t.Run("no token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		srv.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/disconnect", ""))
		rec.AssertStatus(t, http.StatusUnauthorized)
		rec.AssertError(t, "Unauthorized")
	})
}
