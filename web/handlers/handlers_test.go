package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *core.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := core.NewStore(storage.NewMemory())
	require.NoError(t, store.Init(context.Background()))

	h := &Handler{
		Store:      store,
		Log:        zap.NewNop(),
		Secret:     []byte("test-secret"),
		SessionTTL: time.Hour,
	}

	r := gin.New()
	Register(r, h)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": core.SeedAdminEmail, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/attendance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterLoginCheckInFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":       "Asha Patel",
		"email":      "asha@divron.com",
		"department": "Engineering",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// same email again
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":       "Asha Again",
		"email":      "asha@divron.com",
		"department": "Engineering",
		"password":   "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	token := loginToken(t, r, "asha@divron.com", "secret1")

	w = doJSON(t, r, http.MethodPost, "/api/attendance/checkin", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/attendance/checkin", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/attendance/checkout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var today struct {
		Data struct {
			State string `json:"state"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &today))
	assert.Equal(t, core.DayStateCheckedOut, today.Data.State)
}

func TestEmployeeEndpointsAreAdminOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":       "Tom",
		"email":      "tom@divron.com",
		"department": "Finance",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	employeeToken := loginToken(t, r, "tom@divron.com", "secret1")
	w = doJSON(t, r, http.MethodGet, "/api/employees", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := loginToken(t, r, core.SeedAdminEmail, core.SeedAdminPassword)
	w = doJSON(t, r, http.MethodGet, "/api/employees", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), core.SeedAdminPassword, "passwords must never leave the server")
}

func TestReportDownload(t *testing.T) {
	r, store := newTestRouter(t)

	_, err := core.CheckIn(context.Background(), store, "e1", time.Now())
	require.NoError(t, err)

	adminToken := loginToken(t, r, core.SeedAdminEmail, core.SeedAdminPassword)

	w := doJSON(t, r, http.MethodGet, "/api/reports/daily", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_daily_")
	assert.Contains(t, w.Body.String(), "Employee ID,Date,Check In,Check Out,Status")
	assert.Contains(t, w.Body.String(), "e1,")

	w = doJSON(t, r, http.MethodGet, "/api/reports/weekly", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reports/daily?format=pdf", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":       "Mei",
		"email":      "mei@divron.com",
		"department": "Finance",
		"password":   "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := loginToken(t, r, "mei@divron.com", "secret1")

	w = doJSON(t, r, http.MethodPost, "/api/leaves", token, gin.H{
		"startDate": "2024-07-01",
		"endDate":   "2024-07-05",
		"reason":    "family trip",
		"type":      "vacation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data core.Leave `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, core.LeaveStatusPending, created.Data.Status)

	// only admins review
	w = doJSON(t, r, http.MethodPut, "/api/leaves/"+created.Data.ID, token, gin.H{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := loginToken(t, r, core.SeedAdminEmail, core.SeedAdminPassword)
	w = doJSON(t, r, http.MethodPut, "/api/leaves/"+created.Data.ID, adminToken, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/leaves", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approved"`)
}
