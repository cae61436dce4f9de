package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты репортов и опасных зон
	incidents := api.Group("/incidents")
	{
		incidents.POST("/report", h.reportIncident)
	}

	zones := api.Group("/zones")
	{
		zones.GET("", h.getDangerZones)
		zones.GET("/stats", h.getStats)
	}

	// Маршрут для проверки местоположения
	api.POST("/location/check", h.checkDangerStatus)

	// Маршрут планирования эвакуации
	api.POST("/evacuation/routes", h.planEvacuation)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
