package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"onboard/internal/user"
)

func createUser(t *testing.T, handler *UserHandler, sub user.Submission) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(sub)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleCreate(rr, req)
	return rr
}

func TestUserHandlerCreateReturnsStoredRecord(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(user.NewMemoryStore())

	rr := createUser(t, handler, user.Submission{
		Email:    "a@b.com",
		Password: "x",
		Street:   "1 Main St",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62704",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var rec user.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if rec.ID == 0 {
		t.Fatalf("expected assigned id, got %+v", rec)
	}
	if rec.Address != "1 Main St, Springfield, IL 62704" {
		t.Fatalf("expected flattened address, got %q", rec.Address)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("password must never appear in a response body: %s", rr.Body.String())
	}
}

func TestUserHandlerCreateRequiresIdentity(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	handler := NewUserHandler(store)

	rr := createUser(t, handler, user.Submission{AboutMe: "no identity"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	var payload apiErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Fields["email"] != "Email is required" {
		t.Fatalf("expected email field error, got %+v", payload.Fields)
	}
	if payload.Fields["password"] != "Password is required" {
		t.Fatalf("expected password field error, got %+v", payload.Fields)
	}

	records, _ := store.List(context.Background())
	if len(records) != 0 {
		t.Fatalf("rejected submission must not be stored, got %d records", len(records))
	}
}

func TestUserHandlerCreateRejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(user.NewMemoryStore())

	rr := createUser(t, handler, user.Submission{Email: "not-an-email", Password: "x"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid email") {
		t.Fatalf("expected invalid email message, got %s", rr.Body.String())
	}
}

func TestUserHandlerListReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(user.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestUserHandlerListReturnsServerOrder(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	handler := NewUserHandler(store)

	for _, email := range []string{"z@x.com", "a@x.com"} {
		rr := createUser(t, handler, user.Submission{Email: email, Password: "x"})
		if rr.Code != http.StatusOK {
			t.Fatalf("create failed: %d", rr.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	var records []user.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(records) != 2 || records[0].Email != "z@x.com" || records[1].Email != "a@x.com" {
		t.Fatalf("expected insertion order, got %+v", records)
	}
}
