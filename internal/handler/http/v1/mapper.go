package v1

import (
	"github.com/civicshield/evacuation_system/internal/models"
	"github.com/civicshield/evacuation_system/internal/service"
)

// ModelToZoneResponse преобразует доменную модель зоны в DTO для ответа
func ModelToZoneResponse(zone *models.DangerZone) *ZoneResponse {
	return &ZoneResponse{
		City:          zone.City,
		IncidentCount: zone.IncidentCount,
		Latitude:      zone.Center.Latitude,
		Longitude:     zone.Center.Longitude,
		Status:        string(zone.Status),
		LastUpdated:   zone.LastUpdated,
	}
}

// ModelsToZoneResponses преобразует слайс моделей зон в слайс DTO
func ModelsToZoneResponses(zones []*models.DangerZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToZoneResponse(zone)
	}
	return responses
}

// ResultToReportResponse преобразует итог приема репорта в DTO для ответа
func ResultToReportResponse(result *service.ReportResult) *ReportIncidentResponse {
	resp := &ReportIncidentResponse{
		IncidentID:       result.Incident.ID,
		City:             result.City,
		WindowedCount:    result.WindowedCount,
		CanReportAgainAt: result.CanReportAgainAt,
	}
	if result.Zone != nil {
		resp.Zone = ModelToZoneResponse(result.Zone)
	}
	return resp
}

// ModelToRouteResponse преобразует ранжированный маршрут в DTO для ответа
func ModelToRouteResponse(route *models.ScoredRoute) *RouteResponse {
	instructions := make([]StepResponse, len(route.SimplifiedInstructions))
	for i, step := range route.SimplifiedInstructions {
		instructions[i] = StepResponse{
			Instruction:     step.Instruction,
			DistanceMeters:  step.Distance,
			DurationSeconds: step.Duration,
			Type:            step.Type,
			Name:            step.Name,
		}
	}

	return &RouteResponse{
		Geometry:        route.Geometry,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		DangerScore:     route.DangerScore,
		SafetyLevel:     string(route.SafetyLevel),
		CompositeScore:  route.CompositeScore,
		Destination: DestinationResponse{
			Name:       route.Destination.Name,
			Kind:       string(route.Destination.Kind),
			Latitude:   route.Destination.Latitude,
			Longitude:  route.Destination.Longitude,
			Address:    route.Destination.Address,
			DistanceKm: route.Destination.DistanceKm,
		},
		Instructions: instructions,
	}
}

// ResultToPlanResponse преобразует итог планирования в DTO для ответа
func ResultToPlanResponse(result *service.PlanResult) *EvacuationPlanResponse {
	routes := make([]*RouteResponse, len(result.Routes))
	for i, route := range result.Routes {
		routes[i] = ModelToRouteResponse(route)
	}
	return &EvacuationPlanResponse{
		Routes:  routes,
		Zones:   ModelsToZoneResponses(result.Zones),
		Message: result.Message,
	}
}
