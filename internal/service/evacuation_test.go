package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/civicshield/evacuation_system/internal/service/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evacuationServiceFixture struct {
	service service.EvacuationService
	zones   *mocks.MockZoneService
	search  *mocks.MockFacilitySearcher
	router  *mocks.MockRouteProvider
	checks  *mocks.MockDangerCheckRecorder
	cfg     *config.Config
}

func newEvacuationServiceFixture(t *testing.T) *evacuationServiceFixture {
	ctrl := gomock.NewController(t)
	zonesMock := mocks.NewMockZoneService(ctrl)
	searchMock := mocks.NewMockFacilitySearcher(ctrl)
	routerMock := mocks.NewMockRouteProvider(ctrl)
	checksMock := mocks.NewMockDangerCheckRecorder(ctrl)
	clock := clockwork.NewFakeClock()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		PlanningRadiusKm:     10,
		FacilityBufferKm:     3,
		EscapeBufferKm:       8,
		EscapeBaseDistanceKm: 10,
		ZoneDangerRadiusKm:   5,
	}

	finder := service.NewDestinationFinder(searchMock, cfg, logger)
	synth := service.NewEscapeSynthesizer(cfg)
	scorer := service.NewRouteScorer(cfg)

	return &evacuationServiceFixture{
		service: service.NewEvacuationService(zonesMock, finder, synth, scorer, routerMock, checksMock, clock, cfg, logger),
		zones:   zonesMock,
		search:  searchMock,
		router:  routerMock,
		checks:  checksMock,
		cfg:     cfg,
	}
}

func TestPlan_NoActiveZones(t *testing.T) {
	// Подготовка
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(nil, nil).Times(1)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", 50.45, 30.52)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Routes)
	assert.Equal(t, "No active danger zones. You are safe.", result.Message)
}

func TestPlan_UserFarFromZones(t *testing.T) {
	// Подготовка: зоны активны, но пользователь дальше радиуса планирования
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	zones := []*models.DangerZone{
		{City: "Kharkiv", Center: models.Coordinates{Latitude: 49.99, Longitude: 36.23}, Status: models.ZoneStatusActive},
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", 50.45, 30.52)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Routes)
	assert.Equal(t, "You are not near any danger zones.", result.Message)
}

func TestPlan_Success(t *testing.T) {
	// Подготовка: пользователь в центре зоны
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	userLat, userLon := 50.45, 30.52
	zones := []*models.DangerZone{
		{City: "Kyiv", Center: models.Coordinates{Latitude: userLat, Longitude: userLon}, Status: models.ZoneStatusActive},
	}
	facilityLat := 50.35

	dangerousRoute := &models.Route{
		// Маршрут через центр зоны
		Geometry:        [][]float64{{userLon, userLat}, {30.52, 50.40}},
		DistanceMeters:  12000,
		DurationSeconds: 900,
		Steps: []models.RouteStep{
			{Instruction: "Head south", Distance: 50, Type: "depart"},
			{Instruction: "Turn left", Distance: 30, Type: "turn"},
			{Instruction: "Continue", Distance: 11920, Type: "straight", Name: "Highway"},
		},
	}
	safeRoute := &models.Route{
		Geometry:        [][]float64{{30.70, 50.55}},
		DistanceMeters:  14000,
		DurationSeconds: 1100,
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.search.EXPECT().
		SearchFacilities(ctx, "police station", userLat, userLon, gomock.Any()).
		Return([]service.Facility{
			{Name: "Police Station", Latitude: facilityLat, Longitude: userLon, Address: "Police Station, Kyiv"},
		}, nil).
		Times(1)
	f.router.EXPECT().
		GetRoute(ctx, userLat, userLon, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, startLat, startLon, endLat, endLon float64) (*models.Route, error) {
			if endLat == facilityLat {
				return dangerousRoute, nil
			}
			return safeRoute, nil
		}).
		Times(2)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", userLat, userLon)

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Routes, 2)
	assert.Empty(t, result.Message)
	assert.Equal(t, zones, result.Zones)

	// Безопасный маршрут к точке отхода ранжируется выше опасного к участку
	assert.Equal(t, models.DestinationEscapePoint, result.Routes[0].Destination.Kind)
	assert.Equal(t, models.SafetySafe, result.Routes[0].SafetyLevel)
	assert.Equal(t, models.DestinationPoliceStation, result.Routes[1].Destination.Kind)
	assert.LessOrEqual(t, result.Routes[0].CompositeScore, result.Routes[1].CompositeScore)

	// Упрощенные инструкции: только крупные шаги
	instructions := result.Routes[1].SimplifiedInstructions
	require.Len(t, instructions, 2)
	assert.Equal(t, "Turn left", instructions[0].Instruction)
	assert.Equal(t, "Continue", instructions[1].Instruction)
}

func TestPlan_ProviderFailureForOneDestination(t *testing.T) {
	// Подготовка: отказ провайдера по одному пункту не прерывает остальные
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	userLat, userLon := 50.45, 30.52
	zones := []*models.DangerZone{
		{City: "Kyiv", Center: models.Coordinates{Latitude: userLat, Longitude: userLon}, Status: models.ZoneStatusActive},
	}
	facilityLat := 50.35

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.search.EXPECT().
		SearchFacilities(ctx, "police station", userLat, userLon, gomock.Any()).
		Return([]service.Facility{
			{Name: "Police Station", Latitude: facilityLat, Longitude: userLon},
		}, nil).
		Times(1)
	f.router.EXPECT().
		GetRoute(ctx, userLat, userLon, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, startLat, startLon, endLat, endLon float64) (*models.Route, error) {
			if endLat == facilityLat {
				return nil, fmt.Errorf("openroute unavailable")
			}
			return &models.Route{Geometry: [][]float64{{30.70, 50.55}}, DurationSeconds: 1100}, nil
		}).
		Times(2)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", userLat, userLon)

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Routes, 1)
	assert.Equal(t, models.DestinationEscapePoint, result.Routes[0].Destination.Kind)
}

func TestPlan_AllProvidersFail(t *testing.T) {
	// Подготовка
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	userLat, userLon := 50.45, 30.52
	zones := []*models.DangerZone{
		{City: "Kyiv", Center: models.Coordinates{Latitude: userLat, Longitude: userLon}, Status: models.ZoneStatusActive},
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.search.EXPECT().
		SearchFacilities(ctx, "police station", userLat, userLon, gomock.Any()).
		Return([]service.Facility{
			{Name: "Police Station", Latitude: 50.35, Longitude: userLon},
		}, nil).
		Times(1)
	f.router.EXPECT().
		GetRoute(ctx, userLat, userLon, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("openroute unavailable")).
		Times(2)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", userLat, userLon)

	// Проверки: деградация с сообщением, а не ошибка
	require.NoError(t, err)
	assert.Empty(t, result.Routes)
	assert.Equal(t, "No evacuation routes could be computed.", result.Message)
	assert.Equal(t, zones, result.Zones)
}

func TestPlan_NoDestinations(t *testing.T) {
	// Подготовка: службы не нашлись, а буфер точек отхода шире любого радиуса
	// расширенного поиска
	f := newEvacuationServiceFixture(t)
	f.cfg.EscapeBufferKm = 40
	ctx := context.Background()
	userLat, userLon := 50.45, 30.52
	zones := []*models.DangerZone{
		{City: "Kyiv", Center: models.Coordinates{Latitude: userLat, Longitude: userLon}, Status: models.ZoneStatusActive},
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.search.EXPECT().
		SearchFacilities(ctx, "police station", userLat, userLon, gomock.Any()).
		Return(nil, nil).
		Times(1)
	f.search.EXPECT().
		SearchFacilities(ctx, "fire station", userLat, userLon, gomock.Any()).
		Return(nil, nil).
		Times(1)

	// Действие
	result, err := f.service.Plan(ctx, "user-123", userLat, userLon)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrNoDestinations)
}

func TestCheckDangerStatus_InDanger(t *testing.T) {
	// Подготовка
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	userID := "user-123"
	userLat, userLon := 50.45, 30.52
	zones := []*models.DangerZone{
		{City: "Kyiv", Center: models.Coordinates{Latitude: 50.46, Longitude: 30.53}, Status: models.ZoneStatusActive},
		{City: "Kharkiv", Center: models.Coordinates{Latitude: 49.99, Longitude: 36.23}, Status: models.ZoneStatusActive},
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.checks.EXPECT().
		SaveDangerCheck(ctx, gomock.Any()).
		Do(func(ctx context.Context, check *models.DangerCheck) {
			assert.True(t, check.IsDangerous)
			assert.Equal(t, userID, check.UserID)
		}).Return(nil).Times(1)

	// Действие
	status, err := f.service.CheckDangerStatus(ctx, userID, userLat, userLon)

	// Проверки: далекая зона не попадает в список ближайших
	require.NoError(t, err)
	assert.True(t, status.InDanger)
	require.Len(t, status.NearbyZones, 1)
	assert.Equal(t, "Kyiv", status.NearbyZones[0].City)
}

func TestCheckDangerStatus_Safe(t *testing.T) {
	// Подготовка
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()
	zones := []*models.DangerZone{
		{City: "Kharkiv", Center: models.Coordinates{Latitude: 49.99, Longitude: 36.23}, Status: models.ZoneStatusActive},
	}

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(zones, nil).Times(1)
	f.checks.EXPECT().
		SaveDangerCheck(ctx, gomock.Any()).
		Do(func(ctx context.Context, check *models.DangerCheck) {
			assert.False(t, check.IsDangerous)
		}).Return(nil).Times(1)

	// Действие
	status, err := f.service.CheckDangerStatus(ctx, "user-456", 50.45, 30.52)

	// Проверки
	require.NoError(t, err)
	assert.False(t, status.InDanger)
	assert.Empty(t, status.NearbyZones)
}

func TestCheckDangerStatus_SaveFailureNotFatal(t *testing.T) {
	// Подготовка: потеря аудита проверки не валит ответ
	f := newEvacuationServiceFixture(t)
	ctx := context.Background()

	// Ожидания
	f.zones.EXPECT().ActiveZones(ctx).Return(nil, nil).Times(1)
	f.checks.EXPECT().SaveDangerCheck(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)

	// Действие
	status, err := f.service.CheckDangerStatus(ctx, "user-789", 50.45, 30.52)

	// Проверки
	require.NoError(t, err)
	assert.False(t, status.InDanger)
}
