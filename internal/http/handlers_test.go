package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suarezvoley/checkin/internal/attendance"
	"github.com/suarezvoley/checkin/internal/clock"
	"github.com/suarezvoley/checkin/internal/club"
	"github.com/suarezvoley/checkin/internal/codes"
	"github.com/suarezvoley/checkin/internal/config"
	"github.com/suarezvoley/checkin/internal/database"
	"github.com/suarezvoley/checkin/internal/metrics"
	"github.com/suarezvoley/checkin/internal/notifier"
	"github.com/suarezvoley/checkin/internal/random"
	"github.com/suarezvoley/checkin/internal/report"
)

// setupTestServer initializes a server with a test database and mock
// side-effect collaborators.
func setupTestServer(t *testing.T) (*Server, *report.MockExporter, *notifier.Mock) {
	t.Helper()

	allocator := codes.New(random.New())
	db, teardown, err := database.InitDB(":memory:", "", "", allocator)
	require.NoError(t, err)
	t.Cleanup(teardown)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	exporter := report.NewMock()
	notif := notifier.NewMock()
	clk := clock.NewMock(time.Date(2026, 3, 14, 18, 30, 0, 0, time.Local))

	cfg := config.Config{ReportPath: "test_report.xlsx"}
	server := NewServer(
		club.New(db, allocator),
		attendance.New(db, clk),
		metricsSvc,
		metricsHandler,
		cfg,
		notif,
		report.NewSafe(exporter, metricsSvc),
	)
	return server, exporter, notif
}

func doJSON(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestCreatePlayerHandler(t *testing.T) {
	server, exporter, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Ana", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Player created", body["message"])
	assert.Regexp(t, `^\d{4}$`, body["code"])
	assert.NotZero(t, body["id"])
	assert.Equal(t, 1, exporter.Calls(), "successful create must refresh the report")
}

func TestCreatePlayerHandler_Validation(t *testing.T) {
	server, exporter, _ := setupTestServer(t)

	cases := []struct {
		name string
		req  playerRequest
	}{
		{"empty name", playerRequest{Name: "   ", Age: 22, Tenure: 6}},
		{"age too low", playerRequest{Name: "Ana", Age: 0, Tenure: 6}},
		{"age too high", playerRequest{Name: "Ana", Age: 121, Tenure: 6}},
		{"tenure too high", playerRequest{Name: "Ana", Age: 22, Tenure: 81}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, server, "POST", "/players", tc.req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeBody(t, rr)["detail"])
		})
	}
	assert.Zero(t, exporter.Calls(), "failed creates must not refresh the report")
}

func TestCreatePlayerHandler_DuplicateName(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Mateo", Age: 21, Tenure: 4})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "POST", "/players", playerRequest{Name: " mateo ", Age: 30, Tenure: 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPlayerHandler(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Ana", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody(t, rr)

	rr = doJSON(t, server, "GET", fmt.Sprintf("/players/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, created["code"], body["code"])

	rr = doJSON(t, server, "GET", "/players/9999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, server, "GET", "/players/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePlayerHandler(t *testing.T) {
	server, exporter, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Ana", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody(t, rr)
	id := created["id"]

	rr = doJSON(t, server, "PUT", fmt.Sprintf("/players/%v", id), playerRequest{Name: "Ana B", Age: 23, Tenure: 7})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "GET", fmt.Sprintf("/players/%v", id), nil)
	body := decodeBody(t, rr)
	assert.Equal(t, "Ana B", body["name"])
	assert.Equal(t, float64(23), body["age"])
	assert.Equal(t, created["code"], body["code"], "update must not touch the code")

	rr = doJSON(t, server, "PUT", "/players/9999", playerRequest{Name: "Nadie", Age: 30, Tenure: 1})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, 2, exporter.Calls(), "create and successful update refresh the report")
}

func TestDeletePlayerHandler(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Ana", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody(t, rr)

	rr = doJSON(t, server, "DELETE", fmt.Sprintf("/players/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "DELETE", fmt.Sprintf("/players/%v", created["id"]), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// The freed code no longer checks in.
	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: created["code"].(string)})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckInHandler(t *testing.T) {
	server, _, notif := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Lucia", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	code := decodeBody(t, rr)["code"].(string)

	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: code})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Lucia", body["name"])
	assert.Equal(t, code, body["code"])
	assert.Equal(t, "18:30", body["time"])

	require.Len(t, notif.SendCheckInNotificationCalls, 1)
	assert.Equal(t, "Lucia", notif.SendCheckInNotificationCalls[0].Name)
}

func TestCheckInHandler_Errors(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/check-in", checkInRequest{Code: "12ab"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: "0001"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckInHandler_NotifierFailureIsSwallowed(t *testing.T) {
	server, _, notif := setupTestServer(t)
	notif.SendCheckInNotificationFunc = func(name, code, checkInTime string) error {
		return errors.New("slack is down")
	}

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Lucia", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	code := decodeBody(t, rr)["code"].(string)

	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: code})
	assert.Equal(t, http.StatusOK, rr.Code, "a failed notification must not fail the check-in")
}

func TestVerifyHandler(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Lucia", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	code := decodeBody(t, rr)["code"].(string)

	rr = doJSON(t, server, "GET", "/verify/"+code, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["exists"])
	assert.Equal(t, "Lucia", body["name"])

	rr = doJSON(t, server, "GET", "/verify/0001", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, decodeBody(t, rr)["exists"])
}

func TestRecentAttendeesHandler(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "GET", "/attendance/recent", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())

	rr = doJSON(t, server, "GET", "/attendance/recent?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportHandler(t *testing.T) {
	server, exporter, _ := setupTestServer(t)

	rr := doJSON(t, server, "GET", "/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, exporter.Calls())
	assert.Equal(t, "test_report.xlsx", decodeBody(t, rr)["path"])
}

// TestFullKioskFlow walks the concrete scenario the front-end drives:
// register Lucia, list her, check in twice, read back today's board.
func TestFullKioskFlow(t *testing.T) {
	server, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "POST", "/players", playerRequest{Name: "Lucia", Age: 22, Tenure: 6})
	require.Equal(t, http.StatusCreated, rr.Code)
	code := decodeBody(t, rr)["code"].(string)
	assert.Regexp(t, `^\d{4}$`, code)

	rr = doJSON(t, server, "GET", "/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var players []club.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, code, players[0].Code)

	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: code})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Lucia", decodeBody(t, rr)["name"])

	// A second check-in the same day is accepted and accumulates.
	rr = doJSON(t, server, "POST", "/check-in", checkInRequest{Code: code})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "GET", "/attendance/recent", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var attendees []attendance.Attendee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &attendees))
	require.Len(t, attendees, 2)
	assert.Equal(t, "Lucia", attendees[0].Name)
}
