package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/config"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
	"github.com/csi515/beautyhub-backend-go/internal/fixtures"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/jwt"
	attendanceService "github.com/csi515/beautyhub-backend-go/internal/service/attendance"
	authService "github.com/csi515/beautyhub-backend-go/internal/service/auth"
	scheduleService "github.com/csi515/beautyhub-backend-go/internal/service/schedule"
	staffService "github.com/csi515/beautyhub-backend-go/internal/service/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestEmail      = "owner@example.com"
	handlerTestPassword   = "correct horse battery staple"
)

func newTestRouter(t *testing.T) (http.Handler, *fixtures.MemStaffRepository) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	staffRepo := fixtures.NewMemStaffRepository()
	recordRepo := fixtures.NewMemRecordRepository()

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := authService.NewAuthService(config.AuthConfig{
		OwnerEmail:        handlerTestEmail,
		OwnerPasswordHash: string(hash),
	}, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(recordRepo, staffRepo, config.AttendanceConfig{
		DefaultShiftLength: 9 * time.Hour,
	})
	scheduleSvc := scheduleService.NewScheduleService(recordRepo, staffRepo)

	router := NewRouter(
		config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
		jwtService,
		NewAuthHandler(jwtService, authSvc),
		NewStaffHandler(staffSvc),
		NewAttendanceHandler(attendanceSvc),
		NewScheduleHandler(scheduleSvc),
	)

	return router, staffRepo
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    handlerTestEmail,
		"password": handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NotEmpty(t, envelope.Data.AccessToken)

	return envelope.Data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	token := loginToken(t, router)
	assert.NotEmpty(t, token)
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    handlerTestEmail,
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEndpointSetsRefreshCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    handlerTestEmail,
		"password": handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)
	assert.NotEmpty(t, refreshCookie.Value)

	// The login body must not leak the refresh token.
	assert.NotContains(t, rec.Body.String(), refreshCookie.Value)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/staff/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRejectsNonAccessTokens(t *testing.T) {
	router, _ := newTestRouter(t)

	// Same signing key as the router, so only the claim checks can reject.
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	refresh, _, err := jwtService.GenerateRefreshToken(handlerTestEmail)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/staff/", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, forged, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"email": handlerTestEmail,
		"role":  "staff",
		"type":  "access",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/staff/", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteWithToken(t *testing.T) {
	router, staffRepo := newTestRouter(t)
	staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/staff/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			TotalCount int `json:"total_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.TotalCount)
}

func TestCheckInEndpoint(t *testing.T) {
	router, staffRepo := newTestRouter(t)
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, map[string]string{
		"staff_id": member.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// A second check-in the same day conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, map[string]string{
		"staff_id": member.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTemplatesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schedules/templates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Templates []struct {
				Name string `json:"name"`
			} `json:"templates"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Templates, 4)
	assert.Equal(t, "Standard", envelope.Data.Templates[0].Name)
}
