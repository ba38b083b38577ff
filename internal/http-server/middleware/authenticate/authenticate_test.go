package authenticate

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeAuth struct {
	token string
}

func (f *fakeAuth) AuthenticateOperator(token string) bool {
	return f.token != "" && token == f.token
}

func serve(t *testing.T, auth Authenticate, header string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := New(slog.Default(), auth)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/update-balance", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMissingHeader(t *testing.T) {
	if rec := serve(t, &fakeAuth{token: "secret"}, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestWrongToken(t *testing.T) {
	if rec := serve(t, &fakeAuth{token: "secret"}, "Bearer nope"); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestEmptyConfiguredTokenRejectsAll(t *testing.T) {
	if rec := serve(t, &fakeAuth{}, "Bearer anything"); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestValidToken(t *testing.T) {
	if rec := serve(t, &fakeAuth{token: "secret"}, "Bearer secret"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
