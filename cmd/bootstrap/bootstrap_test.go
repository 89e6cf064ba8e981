package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dental-clinic-booking/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Port: "0", Env: "test", SlotSeed: 7},
		JWT:     config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour},
		Admin:   config.AdminConfig{Email: "admin@dentalclinic.com", Password: "password123"},
		Session: config.SessionConfig{TTL: 30 * time.Minute, CleanupSchedule: "@every 5m"},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	registry := prometheus.NewRegistry()
	h, _, err := buildHandler(testConfig(), log, nil, nil, registry, registry)
	require.NoError(t, err)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestBookingWizard_EndToEnd(t *testing.T) {
	server := newTestServer(t)

	status, env := call(t, server, http.MethodPost, "/api/v1/booking/sessions", "", nil)
	require.Equal(t, http.StatusCreated, status)
	var session struct {
		ID       string `json:"id"`
		NextStep string `json:"next_step"`
	}
	decode(t, env.Data, &session)
	assert.Equal(t, "/services", session.NextStep)
	base := "/api/v1/booking/sessions/" + session.ID

	// The calendar is guarded until a service is chosen
	status, env = call(t, server, http.MethodGet, base+"/calendar", "", nil)
	require.Equal(t, http.StatusConflict, status)
	assert.JSONEq(t, `{"redirect_to":"/services"}`, string(env.Error))

	status, _ = call(t, server, http.MethodPost, base+"/service", "", map[string]int{"service_id": 1})
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, server, http.MethodGet, base+"/calendar", "", nil)
	require.Equal(t, http.StatusOK, status)
	var calendar struct {
		Days []struct {
			Date       string `json:"date"`
			Selectable bool   `json:"selectable"`
			Slots      []struct {
				Time string `json:"time"`
			} `json:"slots"`
		} `json:"days"`
	}
	decode(t, env.Data, &calendar)

	var date, slot string
	for _, day := range calendar.Days {
		if day.Selectable {
			date, slot = day.Date, day.Slots[0].Time
			break
		}
	}
	require.NotEmpty(t, date)

	status, _ = call(t, server, http.MethodPost, base+"/calendar/date", "", map[string]string{"date": date})
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, server, http.MethodPost, base+"/calendar/time", "", map[string]string{"time": slot})
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, server, http.MethodPost, base+"/calendar/continue", "", nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, server, http.MethodPost, base+"/patient-info", "", map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "555-123",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"phone":"Please enter a valid 10-digit phone number"}`, string(env.Error))

	status, _ = call(t, server, http.MethodPost, base+"/patient-info", "", map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "(555) 123-4567",
	})
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, server, http.MethodGet, base+"/confirmation", "", nil)
	require.Equal(t, http.StatusOK, status)
	var confirmation struct {
		ConfirmationCode string `json:"confirmation_code"`
		Date             string `json:"date"`
		Time             string `json:"time"`
		ManageURL        string `json:"manage_url"`
		Service          struct {
			Name string `json:"name"`
		} `json:"service"`
		Patient struct {
			Name string `json:"name"`
		} `json:"patient"`
	}
	decode(t, env.Data, &confirmation)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, confirmation.ConfirmationCode)
	assert.Equal(t, "Dental Cleaning", confirmation.Service.Name)
	assert.Equal(t, date, confirmation.Date)
	assert.Equal(t, slot, confirmation.Time)
	assert.Equal(t, "Jane Doe", confirmation.Patient.Name)
	assert.Equal(t, "/manage/"+confirmation.ConfirmationCode, confirmation.ManageURL)
}

func TestConfirmation_IncompleteDraftRedirectsHome(t *testing.T) {
	server := newTestServer(t)

	_, env := call(t, server, http.MethodPost, "/api/v1/booking/sessions", "", nil)
	var session struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &session)

	status, env := call(t, server, http.MethodGet, "/api/v1/booking/sessions/"+session.ID+"/confirmation", "", nil)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Missing appointment information. Please start over.", env.Message)
	assert.JSONEq(t, `{"redirect_to":"/"}`, string(env.Error))
}

func TestAdmin_LoginDashboardLogout(t *testing.T) {
	server := newTestServer(t)

	status, _ := call(t, server, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, server, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"email": "admin@dentalclinic.com", "password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, env := call(t, server, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"email": "admin@dentalclinic.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	var token struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, env.Data, &token)

	status, env = call(t, server, http.MethodGet, "/api/v1/admin/appointments?status=canceled", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Total        int `json:"total"`
		Appointments []struct {
			PatientName string `json:"patient_name"`
		} `json:"appointments"`
	}
	decode(t, env.Data, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Jessica Brown", list.Appointments[0].PatientName)

	status, _ = call(t, server, http.MethodGet, "/api/v1/admin/appointments?status=done", token.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/admin/dashboard?status=done", token.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/admin/appointments?status=all", token.AccessToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/admin/dashboard?page=billing", token.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, server, http.MethodPost, "/api/v1/admin/logout", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/admin/dashboard", token.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdmin_ExportDownload(t *testing.T) {
	server := newTestServer(t)

	_, env := call(t, server, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"email": "admin@dentalclinic.com", "password": "password123",
	})
	var token struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, env.Data, &token)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/admin/export/download?start_date=2025-04-15&end_date=2025-04-15", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "id,patient_name,date,time,service,status", lines[0])
}

func TestManage_CancelFlow(t *testing.T) {
	server := newTestServer(t)

	status, env := call(t, server, http.MethodGet, "/api/v1/manage/ABCD1234", "", nil)
	require.Equal(t, http.StatusOK, status)
	var appointment struct {
		Patient struct {
			Name string `json:"name"`
		} `json:"patient"`
	}
	decode(t, env.Data, &appointment)
	assert.Equal(t, "Jane Smith", appointment.Patient.Name)

	status, _ = call(t, server, http.MethodPost, "/api/v1/manage/ABCD1234/cancel", "", map[string]bool{"confirm": false})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = call(t, server, http.MethodPost, "/api/v1/manage/ABCD1234/cancel", "", map[string]bool{"confirm": true})
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, server, http.MethodPost, "/api/v1/manage/ABCD1234/cancel", "", map[string]bool{"confirm": true})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/manage/not-a-code/reschedule-options", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCORS_Preflight(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/v1/booking/sessions", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
