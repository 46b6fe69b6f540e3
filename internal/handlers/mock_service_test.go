package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int64
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseUsername string
	parseErr      error

	signUpCalls     int
	lastSignUp      service.SignUpInput
	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) (int64, error) {
	m.signUpCalls++
	m.lastSignUp = in
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

// ParseToken mirrors the token manager: an empty token is missing, not invalid.
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	if token == "" {
		return "", service.ErrTokenMissing
	}
	return m.parseUsername, m.parseErr
}

type mockChecklists struct {
	list      []models.Checklist
	listErr   error
	createID  int64
	createErr error
	deleteErr error

	createCalls int
	lastName    string
	lastDelete  int64
}

func (m *mockChecklists) List(ctx context.Context) ([]models.Checklist, error) {
	return m.list, m.listErr
}

func (m *mockChecklists) Create(ctx context.Context, name string) (int64, error) {
	m.createCalls++
	m.lastName = name
	return m.createID, m.createErr
}

func (m *mockChecklists) Delete(ctx context.Context, id int64) error {
	m.lastDelete = id
	return m.deleteErr
}

type mockItems struct {
	list      []models.ChecklistItem
	listErr   error
	item      models.ChecklistItem
	getErr    error
	createID  int64
	createErr error
	renameErr error
	deleteErr error

	calls           int
	lastChecklistID int64
	lastItemID      int64
	lastName        string
}

func (m *mockItems) List(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	m.calls++
	m.lastChecklistID = checklistID
	return m.list, m.listErr
}

func (m *mockItems) Get(ctx context.Context, checklistID, itemID int64) (models.ChecklistItem, error) {
	m.calls++
	m.lastChecklistID, m.lastItemID = checklistID, itemID
	return m.item, m.getErr
}

func (m *mockItems) Create(ctx context.Context, checklistID int64, name string) (int64, error) {
	m.calls++
	m.lastChecklistID, m.lastName = checklistID, name
	return m.createID, m.createErr
}

func (m *mockItems) Rename(ctx context.Context, checklistID, itemID int64, name string) error {
	m.calls++
	m.lastChecklistID, m.lastItemID, m.lastName = checklistID, itemID, name
	return m.renameErr
}

func (m *mockItems) Delete(ctx context.Context, checklistID, itemID int64) error {
	m.calls++
	m.lastChecklistID, m.lastItemID = checklistID, itemID
	return m.deleteErr
}

type mockActivity struct {
	resp      []models.ActivityEvent
	err       error
	recordErr error

	recorded   []models.ActivityEvent
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(ctx context.Context, e models.ActivityEvent) error {
	m.recorded = append(m.recorded, e)
	return m.recordErr
}

func (m *mockActivity) List(ctx context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// validAuth accepts any non-empty token as alice.
func validAuth() *mockAuth {
	return &mockAuth{parseUsername: "alice"}
}

func newRequest(method, target, body string, header http.Header) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return out.Message
}
