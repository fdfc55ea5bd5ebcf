package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestLogin_ReturnsAccessToken(t *testing.T) {
	var got map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "abc.def.ghi"}`))
	})

	token, err := client.Login(context.Background(), " ada ", "hunter22")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}
	if got["username"] != "ada" {
		t.Errorf("username = %q, want trimmed ada", got["username"])
	}
	if got["password"] != "hunter22" {
		t.Errorf("password must pass through untrimmed, got %q", got["password"])
	}
}

func TestLogin_MissingTokenIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := client.Login(context.Background(), "ada", "hunter22"); err == nil {
		t.Error("a 200 without a token must still fail")
	}
}

func TestValidateToken_SendsBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-auth" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})
	client.SetToken("tok123")

	if err := client.ValidateToken(context.Background()); err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
}

func TestRegister_SendsTrimmedFields(t *testing.T) {
	var got map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/register" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Register(context.Background(), "ada", " ada@example.com ", "hunter22")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if got["email"] != "ada@example.com" {
		t.Errorf("email = %q, want trimmed", got["email"])
	}
}
