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

func TestChecklistHandlers_ListCreateDelete(t *testing.T) {
	checklists := &mockChecklists{
		list:     []models.Checklist{{ID: 1, Name: "groceries"}, {ID: 2, Name: "chores"}},
		createID: 3,
	}
	act := &mockActivity{}
	s := &service.Service{Authorization: validAuth(), Checklists: checklists, ActivityLog: act}
	r := newTestRouter(s)

	// list
	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodGet, "/checklists", "", authHeader("valid")))
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var got []models.Checklist
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Name != "groceries" || got[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", got)
	}

	// create
	w = httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodPost, "/checklists", `{"name":"errands"}`, authHeader("valid")))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	if msg := decodeMessage(t, w); msg != "Checklist created successfully" {
		t.Fatalf("create message=%q", msg)
	}
	if checklists.lastName != "errands" {
		t.Fatalf("name not forwarded: %q", checklists.lastName)
	}

	// delete keeps the raw path id in the message
	w = httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodDelete, "/checklists/7", "", authHeader("valid")))
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}
	if msg := decodeMessage(t, w); msg != "Checklist with ID 7 deleted successfully" {
		t.Fatalf("delete message=%q", msg)
	}
	if checklists.lastDelete != 7 {
		t.Fatalf("delete id=%d, want 7", checklists.lastDelete)
	}

	if len(act.recorded) != 2 ||
		act.recorded[0].Type != models.ActivityChecklistCreated ||
		act.recorded[1].Type != models.ActivityChecklistDeleted ||
		act.recorded[0].Username != "alice" {
		t.Fatalf("unexpected activity: %+v", act.recorded)
	}
}

func TestListChecklists_EmptyIsArray(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: validAuth(), Checklists: &mockChecklists{list: []models.Checklist{}}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(http.MethodGet, "/checklists", "", authHeader("valid")))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("status=%d body=%s, want 200 []", w.Code, w.Body.String())
	}
}

func TestCreateChecklist_RejectsInvalidName(t *testing.T) {
	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`, `{"name":5}`, `not json`} {
		checklists := &mockChecklists{}
		r := newTestRouter(&service.Service{Authorization: validAuth(), Checklists: checklists})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest(http.MethodPost, "/checklists", body, authHeader("valid")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d, want 400", body, w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Nama harus berupa teks dan tidak boleh kosong" {
			t.Fatalf("body %s: message=%q", body, msg)
		}
		if checklists.createCalls != 0 {
			t.Fatalf("body %s: create called", body)
		}
	}
}

func TestDeleteChecklist_NotFound(t *testing.T) {
	cases := []struct {
		name string
		path string
		err  error
	}{
		{"no_rows_affected", "/checklists/99", service.ErrChecklistNotFound},
		{"non_numeric_id", "/checklists/abc", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act := &mockActivity{}
			r := newTestRouter(&service.Service{
				Authorization: validAuth(),
				Checklists:    &mockChecklists{deleteErr: tc.err},
				ActivityLog:   act,
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newRequest(http.MethodDelete, tc.path, "", authHeader("valid")))
			if w.Code != http.StatusNotFound {
				t.Fatalf("status=%d, want 404", w.Code)
			}
			if msg := decodeMessage(t, w); msg != "checklistId tidak ditemukan" {
				t.Fatalf("message=%q", msg)
			}
			if len(act.recorded) != 0 {
				t.Fatalf("activity recorded for a failed delete")
			}
		})
	}
}

func TestChecklistHandlers_StoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	r := newTestRouter(&service.Service{
		Authorization: validAuth(),
		Checklists:    &mockChecklists{listErr: boom, createErr: boom, deleteErr: boom},
	})

	reqs := []*http.Request{
		newRequest(http.MethodGet, "/checklists", "", authHeader("valid")),
		newRequest(http.MethodPost, "/checklists", `{"name":"x"}`, authHeader("valid")),
		newRequest(http.MethodDelete, "/checklists/1", "", authHeader("valid")),
	}
	for _, req := range reqs {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s %s: status=%d, want 500", req.Method, req.URL.Path, w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Internal server error" {
			t.Fatalf("%s %s: message=%q", req.Method, req.URL.Path, msg)
		}
	}
}
