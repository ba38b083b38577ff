package account

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"enbminer/entity"
	"enbminer/lib/api/response"
)

type fakeCore struct {
	account  *entity.Account
	accounts []*entity.Account
	filter   entity.AccountFilter
	err      error
}

func (f *fakeCore) CreateAccount(_ *entity.CreateAccountRequest) (*entity.Account, error) {
	return f.account, f.err
}

func (f *fakeCore) CreateDefaultAccount(_ *entity.DefaultAccountRequest) (*entity.Account, error) {
	return f.account, f.err
}

func (f *fakeCore) Profile(_ string) (*entity.Account, error) {
	return f.account, f.err
}

func (f *fakeCore) ListAccounts(filter entity.AccountFilter) ([]*entity.Account, error) {
	f.filter = filter
	return f.accounts, f.err
}

func (f *fakeCore) UpdateMembership(_ *entity.MembershipUpdateRequest) (*entity.Account, error) {
	return f.account, f.err
}

func TestCreateReturns201(t *testing.T) {
	handler := Create(slog.Default(), &fakeCore{
		account: &entity.Account{WalletAddress: "0xABC", InvitationCode: "ENB-AAAAAAAA"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/create-account",
		strings.NewReader(`{"wallet_address":"0xABC","transaction_hash":"0xhash"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var resp response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data := resp.Data.(map[string]interface{})
	if data["invitation_code"] != "ENB-AAAAAAAA" {
		t.Errorf("invitation_code = %v, want ENB-AAAAAAAA", data["invitation_code"])
	}
}

func TestCreateDuplicate(t *testing.T) {
	handler := Create(slog.Default(), &fakeCore{err: entity.ErrAccountExists})

	req := httptest.NewRequest(http.MethodPost, "/api/create-account",
		strings.NewReader(`{"wallet_address":"0xABC"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestProfileNotFound(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/profile/{wallet}", Profile(slog.Default(), &fakeCore{err: entity.ErrAccountNotFound}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/0xGHOST", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListParsesFilters(t *testing.T) {
	core := &fakeCore{accounts: []*entity.Account{}}
	handler := List(slog.Default(), core)

	req := httptest.NewRequest(http.MethodGet,
		"/api/users?membership_level=Based&is_activated=true&limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if core.filter.MembershipLevel != entity.LevelBased {
		t.Errorf("level filter = %q, want Based", core.filter.MembershipLevel)
	}
	if core.filter.IsActivated == nil || !*core.filter.IsActivated {
		t.Error("is_activated filter must be true")
	}
	if core.filter.Limit != 5 || core.filter.Offset != 10 {
		t.Errorf("limit/offset = %d/%d, want 5/10", core.filter.Limit, core.filter.Offset)
	}
}

func TestListRejectsBadBool(t *testing.T) {
	handler := List(slog.Default(), &fakeCore{})

	req := httptest.NewRequest(http.MethodGet, "/api/users?is_activated=maybe", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
