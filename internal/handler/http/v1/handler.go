package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService     service.ReportService
	zoneService       service.ZoneService
	evacuationService service.EvacuationService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(reportService service.ReportService, zoneService service.ZoneService, evacuationService service.EvacuationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService:     reportService,
		zoneService:       zoneService,
		evacuationService: evacuationService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Report a danger incident
// @Description Report a dangerous situation at the user's location. Throttled per user and city. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} ReportIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Report throttled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/report [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reportService.ReportIncident(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		var throttled *service.ThrottledError
		if errors.As(err, &throttled) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":    "report throttled",
				"retry_at": throttled.RetryAt,
			})
			return
		}
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ResultToReportResponse(result))
}

// @Summary Get active danger zones
// @Description Get a snapshot of all currently active danger zones. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) getDangerZones(c *gin.Context) {
	log := h.logger.WithField("method", "getDangerZones")

	zones, err := h.zoneService.ActiveZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get active zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get user statistics
// @Description Get the count of users who checked their location within the configured window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Check location for danger
// @Description Check whether a location is near any active danger zone. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} DangerStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkDangerStatus(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkDangerStatus")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.evacuationService.CheckDangerStatus(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to check danger status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DangerStatusResponse{
		InDanger:    status.InDanger,
		NearbyZones: ModelsToZoneResponses(status.NearbyZones),
	})
}

// @Summary Plan evacuation routes
// @Description Build up to two ranked evacuation routes away from nearby danger zones. Requires API key.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param plan body PlanEvacuationRequest true "Evacuation planning request"
// @Success 200 {object} EvacuationPlanResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No safe destinations found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/routes [post]
func (h *Handler) planEvacuation(c *gin.Context) {
	var input PlanEvacuationRequest
	log := h.logger.WithField("method", "planEvacuation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.evacuationService.Plan(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		if errors.Is(err, service.ErrNoDestinations) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no safe destinations found"})
			return
		}
		log.WithError(err).Error("Failed to plan evacuation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResultToPlanResponse(result))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
