package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/civicshield/evacuation_system/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	report     *mocks.MockReportService
	zones      *mocks.MockZoneService
	evacuation *mocks.MockEvacuationService
	router     *gin.Engine
}

// newHandlerFixture создает новый экземпляр Handler с мокированными сервисами
func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	reportMock := mocks.NewMockReportService(ctrl)
	zonesMock := mocks.NewMockZoneService(ctrl)
	evacuationMock := mocks.NewMockEvacuationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(reportMock, zonesMock, evacuationMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return &handlerFixture{
		report:     reportMock,
		zones:      zonesMock,
		evacuation: evacuationMock,
		router:     router,
	}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportIncident_Success(t *testing.T) {
	f := newHandlerFixture(t)
	incidentID := uuid.New()
	reqBody := ReportIncidentRequest{
		UserID:    "user-123",
		Latitude:  50.45,
		Longitude: 30.52,
	}
	now := time.Now().UTC()
	result := &service.ReportResult{
		Incident:         &models.Incident{ID: incidentID, City: "Kyiv"},
		City:             "Kyiv",
		WindowedCount:    3,
		CanReportAgainAt: now.Add(24 * time.Hour),
		Zone: &models.DangerZone{
			City:          "Kyiv",
			IncidentCount: 3,
			Center:        models.Coordinates{Latitude: 50.45, Longitude: 30.52},
			Status:        models.ZoneStatusActive,
		},
	}

	f.report.EXPECT().
		ReportIncident(gomock.Any(), "user-123", 50.45, 30.52).
		Return(result, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(f.router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReportIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.IncidentID)
	assert.Equal(t, "Kyiv", resp.City)
	assert.Equal(t, 3, resp.WindowedCount)
	require.NotNil(t, resp.Zone)
	assert.Equal(t, "active", resp.Zone.Status)
}

func TestReportIncident_Throttled(t *testing.T) {
	f := newHandlerFixture(t)
	retryAt := time.Now().UTC().Add(12 * time.Hour)

	f.report.EXPECT().
		ReportIncident(gomock.Any(), "user-123", 50.45, 30.52).
		Return(nil, &service.ThrottledError{RetryAt: retryAt}).
		Times(1)

	bodyBytes, _ := json.Marshal(ReportIncidentRequest{UserID: "user-123", Latitude: 50.45, Longitude: 30.52})
	w := makeRequest(f.router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "report throttled")
	assert.Contains(t, w.Body.String(), "retry_at")
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	f.report.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(f.router, "POST", "/api/v1/incidents/report", bytes.NewBufferString(`{"user_id": "user-123"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_ValidationError(t *testing.T) {
	f := newHandlerFixture(t)

	f.report.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Широта за пределами допустимого диапазона
	bodyBytes, _ := json.Marshal(ReportIncidentRequest{UserID: "user-123", Latitude: 123.0, Longitude: 30.52})
	w := makeRequest(f.router, "POST", "/api/v1/incidents/report", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDangerZones_Success(t *testing.T) {
	f := newHandlerFixture(t)
	zones := []*models.DangerZone{
		{
			City:          "Kyiv",
			IncidentCount: 5,
			Center:        models.Coordinates{Latitude: 50.45, Longitude: 30.52},
			Status:        models.ZoneStatusActive,
		},
	}

	f.zones.EXPECT().ActiveZones(gomock.Any()).Return(zones, nil).Times(1)

	w := makeRequest(f.router, "GET", "/api/v1/zones", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Kyiv", resp[0].City)
	assert.Equal(t, 5, resp[0].IncidentCount)
}

func TestGetDangerZones_ServiceError(t *testing.T) {
	f := newHandlerFixture(t)

	f.zones.EXPECT().ActiveZones(gomock.Any()).Return(nil, fmt.Errorf("db down")).Times(1)

	w := makeRequest(f.router, "GET", "/api/v1/zones", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.report.EXPECT().GetStats(gomock.Any()).Return(42, nil).Times(1)

	w := makeRequest(f.router, "GET", "/api/v1/zones/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.UserCount)
}

func TestCheckDangerStatus_Success(t *testing.T) {
	f := newHandlerFixture(t)
	status := &service.DangerStatus{
		InDanger: true,
		NearbyZones: []*models.DangerZone{
			{City: "Kyiv", Status: models.ZoneStatusActive},
		},
	}

	f.evacuation.EXPECT().
		CheckDangerStatus(gomock.Any(), "user-123", 50.45, 30.52).
		Return(status, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(LocationCheckRequest{UserID: "user-123", Latitude: 50.45, Longitude: 30.52})
	w := makeRequest(f.router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DangerStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.InDanger)
	require.Len(t, resp.NearbyZones, 1)
	assert.Equal(t, "Kyiv", resp.NearbyZones[0].City)
}

func TestPlanEvacuation_Success(t *testing.T) {
	f := newHandlerFixture(t)
	result := &service.PlanResult{
		Routes: []*models.ScoredRoute{
			{
				Geometry:        [][]float64{{30.52, 50.45}},
				DistanceMeters:  12000,
				DurationSeconds: 900,
				DangerScore:     0,
				SafetyLevel:     models.SafetySafe,
				CompositeScore:  15,
				Destination: models.CandidateDestination{
					Name: "Police Station",
					Kind: models.DestinationPoliceStation,
				},
			},
		},
		Zones: []*models.DangerZone{{City: "Kyiv", Status: models.ZoneStatusActive}},
	}

	f.evacuation.EXPECT().
		Plan(gomock.Any(), "user-123", 50.45, 30.52).
		Return(result, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(PlanEvacuationRequest{UserID: "user-123", Latitude: 50.45, Longitude: 30.52})
	w := makeRequest(f.router, "POST", "/api/v1/evacuation/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EvacuationPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "safe", resp.Routes[0].SafetyLevel)
	assert.Equal(t, "police_station", resp.Routes[0].Destination.Kind)
}

func TestModelToRouteResponse_StepFields(t *testing.T) {
	route := &models.ScoredRoute{
		Geometry:        [][]float64{{30.52, 50.45}},
		DistanceMeters:  12000,
		DurationSeconds: 900,
		SafetyLevel:     models.SafetySafe,
		SimplifiedInstructions: []models.RouteStep{
			{Instruction: "Turn left onto Main Street", Distance: 250, Duration: 30, Type: "turn", Name: "Main Street"},
			{Instruction: "Arrive at your destination", Distance: 0, Duration: 0, Type: "arrive"},
		},
	}

	resp := ModelToRouteResponse(route)

	require.Len(t, resp.Instructions, 2)
	assert.Equal(t, "turn", resp.Instructions[0].Type)
	assert.Equal(t, "Main Street", resp.Instructions[0].Name)
	assert.Equal(t, "arrive", resp.Instructions[1].Type)

	// Клиент должен получить тип маневра и название улицы в JSON
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"turn"`)
	assert.Contains(t, string(raw), `"name":"Main Street"`)
}

func TestPlanEvacuation_NoDestinations(t *testing.T) {
	f := newHandlerFixture(t)

	f.evacuation.EXPECT().
		Plan(gomock.Any(), "user-123", 50.45, 30.52).
		Return(nil, service.ErrNoDestinations).
		Times(1)

	bodyBytes, _ := json.Marshal(PlanEvacuationRequest{UserID: "user-123", Latitude: 50.45, Longitude: 30.52})
	w := makeRequest(f.router, "POST", "/api/v1/evacuation/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no safe destinations found")
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	w := makeRequest(f.router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name     string
		headers  map[string]string
		expected int
	}{
		{
			name:     "missing key",
			headers:  nil,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "invalid key",
			headers:  map[string]string{"X-API-Key": "wrong"},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "valid header key",
			headers:  map[string]string{"X-API-Key": "valid-key"},
			expected: http.StatusOK,
		},
		{
			name:     "valid bearer token",
			headers:  map[string]string{"Authorization": "Bearer valid-key"},
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
