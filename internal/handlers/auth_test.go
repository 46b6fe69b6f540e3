package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checklist_api/internal/models"
	"checklist_api/internal/service"
)

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{signUpID: 42, genTokenToken: "tok123"}
	act := &mockActivity{}
	s := &service.Service{Authorization: auth, ActivityLog: act}
	r := newTestRouter(s)

	// register success
	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodPost, "/register", `{"username":"alice","password":"p1","email":"a@x.com"}`, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	if got := decodeMessage(t, w); got != "User terdaftar berhasil" {
		t.Fatalf("register message = %q", got)
	}
	if auth.lastSignUp != (service.SignUpInput{Username: "alice", Password: "p1", Email: "a@x.com"}) {
		t.Fatalf("unexpected sign-up input: %+v", auth.lastSignUp)
	}
	if len(act.recorded) != 1 || act.recorded[0].Type != models.ActivityUserRegistered || act.recorded[0].Username != "alice" {
		t.Fatalf("unexpected activity: %+v", act.recorded)
	}

	// login success
	w = httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodPost, "/login", `{"username":"alice","password":"p1"}`, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var tok TokenResponse
	_ = json.Unmarshal(w.Body.Bytes(), &tok)
	if tok.Token != "tok123" {
		t.Fatalf("expected token tok123, got %q", tok.Token)
	}
	if auth.lastGenUsername != "alice" || auth.lastGenPassword != "p1" {
		t.Fatalf("credentials not forwarded: %q/%q", auth.lastGenUsername, auth.lastGenPassword)
	}
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing_username", `{"password":"p1","email":"a@x.com"}`, "Username harus berupa teks dan tidak boleh kosong"},
		{"numeric_username", `{"username":1,"password":"p1","email":"a@x.com"}`, "Username harus berupa teks dan tidak boleh kosong"},
		{"blank_password", `{"username":"alice","password":"  ","email":"a@x.com"}`, "Password harus berupa teks dan tidak boleh kosong"},
		{"missing_email", `{"username":"alice","password":"p1"}`, "Email harus berupa teks dan tidak boleh kosong"},
		{"all_missing_reports_username", `{}`, "Username harus berupa teks dan tidak boleh kosong"},
		{"malformed_json", `{"username":`, "Username harus berupa teks dan tidak boleh kosong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newRequest(http.MethodPost, "/register", tc.body, nil))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d, want 400", w.Code)
			}
			if got := decodeMessage(t, w); got != tc.want {
				t.Fatalf("message=%q, want %q", got, tc.want)
			}
			if auth.signUpCalls != 0 {
				t.Fatalf("store touched on invalid input")
			}
		})
	}
}

func TestRegister_ServiceErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"taken", service.ErrUsernameTaken, http.StatusBadRequest, "Username sudah ada"},
		{"password_too_long", service.ErrPasswordTooLong, http.StatusBadRequest, "Password terlalu panjang"},
		{"store_failure", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act := &mockActivity{}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{signUpErr: tc.err}, ActivityLog: act})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newRequest(http.MethodPost, "/register", `{"username":"alice","password":"p1","email":"a@x.com"}`, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tc.wantCode)
			}
			if got := decodeMessage(t, w); got != tc.wantMsg {
				t.Fatalf("message=%q, want %q", got, tc.wantMsg)
			}
			if len(act.recorded) != 0 {
				t.Fatalf("activity recorded for a failed registration")
			}
		})
	}
}

func TestLogin_Failures(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing_password", `{"username":"alice"}`, nil, http.StatusBadRequest, "Password harus berupa teks dan tidak boleh kosong"},
		{"non_string_username", `{"username":1,"password":"p1"}`, nil, http.StatusBadRequest, "Username harus berupa teks dan tidak boleh kosong"},
		{"wrong_credentials", `{"username":"alice","password":"nope"}`, service.ErrInvalidCredentials, http.StatusUnauthorized, "Username atau password salah"},
		{"store_failure", `{"username":"alice","password":"p1"}`, errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{genTokenErr: tc.err}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newRequest(http.MethodPost, "/login", tc.body, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tc.wantCode)
			}
			if got := decodeMessage(t, w); got != tc.wantMsg {
				t.Fatalf("message=%q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestRegister_ActivityFailureDoesNotChangeResponse(t *testing.T) {
	act := &mockActivity{recordErr: errors.New("log table missing")}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, ActivityLog: act})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodPost, "/register", `{"username":"bob","password":"p","email":"b@x.com"}`, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, want 201", w.Code)
	}
}
