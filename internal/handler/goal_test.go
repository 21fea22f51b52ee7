package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/cache"
	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/db"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/repository"
	"github.com/goaltime/goaltime/internal/service"
)

func newGoalHandlerTest(t *testing.T) (*goalHandler, *model.User) {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	user.PasswordHash = "$2a$10$notarealhash"
	if err := repository.NewUserRepository(database).Create(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	svc := service.NewGoalService(repository.NewGoalRepository(database), cache.NewMemory(), time.Minute)
	return NewGoalHandler(svc), user
}

func authedRequest(t *testing.T, user *model.User, method, target, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(ctxkeys.WithUser(req.Context(), user))
}

func TestGoalCreateHandler(t *testing.T) {
	h, user := newGoalHandlerTest(t)

	body := `{"title":"Exercise","description":"","category":"Health","daily_target_minutes":30,"priority":2}`
	req := authedRequest(t, user, http.MethodPost, "/app/goals", body)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data    model.Goal `json:"data"`
		Message string     `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Data.Title != "Exercise" || resp.Data.ID == "" {
		t.Errorf("data = %+v", resp.Data)
	}
	if resp.Message == "" {
		t.Error("expected a confirmation message")
	}
}

func TestGoalCreateHandlerValidation(t *testing.T) {
	h, user := newGoalHandlerTest(t)

	// Zero daily target must fail before any insert happens.
	body := `{"title":"Exercise","description":"","category":"Health","daily_target_minutes":0,"priority":2}`
	req := authedRequest(t, user, http.MethodPost, "/app/goals", body)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Fields["daily_target_minutes"] == "" {
		t.Errorf("fields = %v, want daily_target_minutes error", resp.Fields)
	}

	// Nothing was inserted.
	listReq := authedRequest(t, user, http.MethodGet, "/app/goals", "")
	listRec := httptest.NewRecorder()
	h.List(listRec, listReq)

	var listResp struct {
		Data []model.Goal `json:"data"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("bad list JSON: %v", err)
	}
	if len(listResp.Data) != 0 {
		t.Errorf("got %d goals, want 0", len(listResp.Data))
	}
}

func TestGoalDeleteHandlerNotFound(t *testing.T) {
	h, user := newGoalHandlerTest(t)

	req := authedRequest(t, user, http.MethodDelete, "/app/goals/missing", "")
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
