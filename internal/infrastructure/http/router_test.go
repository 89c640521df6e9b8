package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecard-app/timecard/internal/application/auth"
	"github.com/timecard-app/timecard/internal/application/manage"
	"github.com/timecard-app/timecard/internal/application/report"
	"github.com/timecard-app/timecard/internal/application/timesheet"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/http/handlers"
	"github.com/timecard-app/timecard/internal/infrastructure/http/middleware"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/memory"
)

type testEnv struct {
	server *httptest.Server
	store  *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()

	summarize := timesheet.NewSummarize(store.Entries(), store.Calendar())
	router := NewRouter(RouterConfig{
		AuthHandler: handlers.NewAuthHandler(
			auth.NewLogin(store.Users(), store.Sessions(), time.Hour),
			auth.NewLogout(store.Sessions()),
			auth.NewSwitchRole(store.Sessions(), store.Users()),
			zerolog.Nop(),
		),
		TimeHandler: handlers.NewTimeHandler(
			timesheet.NewDayView(store.Entries(), store.Projects(), summarize),
			summarize,
			timesheet.NewAddEntry(store.Entries(), store.Assignments(), store.Projects()),
			timesheet.NewUpdateEntry(store.Entries()),
			timesheet.NewDeleteEntry(store.Entries()),
			timesheet.NewSyncDay(store.Entries(), store.Assignments(), store.Projects()),
		),
		ReportHandler: handlers.NewReportHandler(
			report.NewWorkerReport(store.Entries(), store.Assignments(), store.Projects(), store.Users()),
			report.NewProjectReport(store.Entries(), store.Assignments(), store.Projects(), store.Users()),
		),
		AdminHandler: handlers.NewAdminHandler(
			manage.NewCreateProject(store.Projects()),
			manage.NewListProjects(store.Projects()),
			manage.NewUpdateProject(store.Projects()),
			manage.NewSuppressProject(store.Projects()),
			manage.NewAssignProject(store.Assignments(), store.Users(), store.Projects()),
			manage.NewSuppressAssignment(store.Assignments()),
			manage.NewSetCalendarDay(store.Calendar()),
			manage.NewMonthOverrides(store.Calendar()),
		),
		UsersHandler: handlers.NewUsersHandler(store.Users()),
		Session:      middleware.NewSessionResolver(store.Sessions(), store.Users()),
		Log:          zerolog.Nop(),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server, store: store}
}

func (e *testEnv) seedUser(t *testing.T, email string, roles ...domain.Role) domain.UserID {
	t.Helper()
	id := domain.NewUserID(uuid.New())
	err := e.store.Users().Create(context.Background(), &domain.User{
		ID:        id,
		Email:     email,
		Roles:     roles,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) seedProject(t *testing.T, name string) domain.ProjectID {
	t.Helper()
	id := domain.NewProjectID(uuid.New())
	err := e.store.Projects().Create(context.Background(), &domain.Project{
		ID: id, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) assign(t *testing.T, userID domain.UserID, projectID domain.ProjectID) {
	t.Helper()
	err := e.store.Assignments().Create(context.Background(), &domain.ProjectAssignment{
		ID: domain.NewAssignmentID(uuid.New()), UserID: userID, ProjectID: projectID,
	})
	require.NoError(t, err)
}

// login posts to /auth/login and returns the session cookie.
func (e *testEnv) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/auth/login", nil, map[string]string{"email": email})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func (e *testEnv) do(t *testing.T, method, path string, cookie *http.Cookie, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestAuthorizationMatrix(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "worker@example.com", domain.RoleAccount)
	env.seedUser(t, "manager@example.com", domain.RoleOfficeManager)
	worker := env.login(t, "worker@example.com")
	manager := env.login(t, "manager@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		cookie *http.Cookie
		want   int
	}{
		{"no session on timesheet", http.MethodGet, "/time?date=2024-06-03", nil, http.StatusUnauthorized},
		{"worker reads own timesheet", http.MethodGet, "/time?date=2024-06-03", worker, http.StatusOK},
		{"manager lacks account role", http.MethodGet, "/time?date=2024-06-03", manager, http.StatusForbidden},
		{"worker cannot read reports", http.MethodGet, "/reports/worker?worker_id=" + uuid.NewString(), worker, http.StatusForbidden},
		{"worker cannot list users", http.MethodGet, "/users", worker, http.StatusForbidden},
		{"manager lists users", http.MethodGet, "/users", manager, http.StatusOK},
		{"manager cannot manage projects", http.MethodGet, "/admin/projects", manager, http.StatusForbidden},
		{"no session on admin", http.MethodGet, "/admin/projects", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, tt.method, tt.path, tt.cookie, nil)
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestLoginAndMe(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "both@example.com", domain.RoleAccount, domain.RoleOfficeManager)
	cookie := env.login(t, "both@example.com")

	resp := env.do(t, http.MethodGet, "/users/me", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Email      string   `json:"email"`
		Roles      []string `json:"roles"`
		ActiveRole string   `json:"active_role"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "both@example.com", me.Email)
	assert.Len(t, me.Roles, 2)
	assert.Equal(t, "office-manager", me.ActiveRole)

	resp = env.do(t, http.MethodPost, "/auth/role", cookie, map[string]string{"role": "admin"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/auth/role", cookie, map[string]string{"role": "account"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/auth/login", nil, map[string]string{"email": "nobody@example.com"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEntryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	workerID := env.seedUser(t, "worker@example.com", domain.RoleAccount)
	projectID := env.seedProject(t, "Internal Tools")
	env.assign(t, workerID, projectID)
	cookie := env.login(t, "worker@example.com")

	resp := env.do(t, http.MethodPost, "/time/entries", cookie, map[string]interface{}{
		"project_id": projectID.String(),
		"date":       "2024-06-03",
		"hours":      4.5,
		"comment":    "reviews and #planning",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)

	resp = env.do(t, http.MethodGet, "/time?date=2024-06-03", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var day struct {
		Entries []struct {
			Minutes int      `json:"minutes"`
			Comment string   `json:"comment"`
			Tags    []string `json:"tags"`
		} `json:"entries"`
		Summary struct {
			DailyReportedHours float64 `json:"daily_reported_hours"`
			DailyStatus        string  `json:"daily_status"`
		} `json:"summary"`
	}
	decodeBody(t, resp, &day)
	require.Len(t, day.Entries, 1)
	assert.Equal(t, 270, day.Entries[0].Minutes)
	assert.Equal(t, []string{"planning"}, day.Entries[0].Tags)
	assert.Equal(t, "reviews and", day.Entries[0].Comment)
	assert.Equal(t, 4.5, day.Summary.DailyReportedHours)
	assert.Equal(t, "needs_more", day.Summary.DailyStatus)

	resp = env.do(t, http.MethodPut, "/time/entries/"+created.ID, cookie, map[string]interface{}{"hours": 8})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/time/entries", cookie, map[string]interface{}{
		"project_id": projectID.String(),
		"date":       "2024-06-03",
		"hours":      30,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/time/entries/"+created.ID, cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted struct {
		Success bool `json:"success"`
		Summary struct {
			DailyReportedHours float64 `json:"daily_reported_hours"`
		} `json:"summary"`
	}
	decodeBody(t, resp, &deleted)
	assert.True(t, deleted.Success)
	assert.Zero(t, deleted.Summary.DailyReportedHours)

	resp = env.do(t, http.MethodDelete, "/time/entries/"+created.ID, cookie, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSyncEndpoint(t *testing.T) {
	env := newTestEnv(t)
	workerID := env.seedUser(t, "worker@example.com", domain.RoleAccount)
	projectID := env.seedProject(t, "Internal Tools")
	env.assign(t, workerID, projectID)
	cookie := env.login(t, "worker@example.com")

	resp := env.do(t, http.MethodPost, "/time/sync", cookie, map[string]interface{}{
		"date": "2024-06-03",
		"segments": []map[string]interface{}{
			{"project_id": projectID.String(), "minutes": 240, "comment": "morning"},
			{"project_id": projectID.String(), "minutes": 240, "comment": "afternoon"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var synced struct {
		Success bool `json:"success"`
	}
	decodeBody(t, resp, &synced)
	assert.True(t, synced.Success)

	// A bad segment rejects the whole batch; the day keeps its entries.
	resp = env.do(t, http.MethodPost, "/time/sync", cookie, map[string]interface{}{
		"date": "2024-06-03",
		"segments": []map[string]interface{}{
			{"project_id": projectID.String(), "minutes": 60},
			{"project_id": uuid.NewString(), "minutes": 60},
		},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	entries, err := env.store.Entries().ListForUserDate(context.Background(), workerID, "2024-06-03")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 480, entries[0].Minutes+entries[1].Minutes)
}

func TestAdminFlows(t *testing.T) {
	env := newTestEnv(t)
	workerID := env.seedUser(t, "worker@example.com", domain.RoleAccount)
	env.seedUser(t, "admin@example.com", domain.RoleAdmin)
	admin := env.login(t, "admin@example.com")

	resp := env.do(t, http.MethodPost, "/admin/projects", admin, map[string]string{"name": "Website Relaunch", "color": "#336699"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var project struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &project)

	resp = env.do(t, http.MethodPost, "/admin/projects", admin, map[string]string{"name": "Website Relaunch"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/admin/assignments", admin, map[string]string{
		"user_id":    workerID.String(),
		"project_id": project.ID,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/admin/calendar/2024-06-07", admin, map[string]string{"day_type": "public_holiday"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/admin/calendar?month=2024-06", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var overrides []map[string]string
	decodeBody(t, resp, &overrides)
	require.Len(t, overrides, 1)
	assert.Equal(t, "2024-06-07", overrides[0]["date"])

	resp = env.do(t, http.MethodPut, "/admin/calendar/2024-06-07", admin, map[string]string{"day_type": "someday"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/admin/projects/"+project.ID, admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWorkerReportEndpoint(t *testing.T) {
	env := newTestEnv(t)
	workerID := env.seedUser(t, "worker@example.com", domain.RoleAccount)
	env.seedUser(t, "manager@example.com", domain.RoleOfficeManager)
	projectID := env.seedProject(t, "Internal Tools")
	env.assign(t, workerID, projectID)

	for day := 3; day <= 4; day++ {
		err := env.store.Entries().Create(context.Background(), &domain.TimeEntry{
			ID:        domain.NewEntryID(uuid.New()),
			UserID:    workerID,
			ProjectID: projectID,
			Date:      fmt.Sprintf("2024-06-%02d", day),
			Minutes:   480,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	manager := env.login(t, "manager@example.com")
	resp := env.do(t, http.MethodGet, "/reports/worker?worker_id="+workerID.String()+"&month=2024-06", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep struct {
		Month   string `json:"month"`
		Columns []struct {
			Label string `json:"label"`
		} `json:"columns"`
		Rows []struct {
			Date  string  `json:"date"`
			Total float64 `json:"total"`
		} `json:"rows"`
		GrandTotal float64 `json:"grand_total"`
	}
	decodeBody(t, resp, &rep)
	assert.Equal(t, "2024-06", rep.Month)
	require.Len(t, rep.Columns, 1)
	assert.Equal(t, "Internal Tools", rep.Columns[0].Label)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 8.0, rep.Rows[0].Total)
	assert.Equal(t, 16.0, rep.GrandTotal)

	resp = env.do(t, http.MethodGet, "/reports/worker?worker_id="+uuid.NewString()+"&month=2024-06", manager, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/reports/worker?worker_id="+workerID.String()+"&month=202406", manager, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
