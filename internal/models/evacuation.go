package models

type DestinationKind string

const (
	DestinationPoliceStation DestinationKind = "police_station"
	DestinationFireStation   DestinationKind = "fire_station"
	DestinationEscapePoint   DestinationKind = "escape_point"
)

// CandidateDestination - кандидат в пункты назначения эвакуации. Живет только
// в рамках одного запроса планирования и не сохраняется.
type CandidateDestination struct {
	Name       string          `json:"name"`
	Kind       DestinationKind `json:"kind"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	Address    string          `json:"address"`
	DistanceKm float64         `json:"distance_km"`
}

// RouteStep - один шаг turn-by-turn инструкций маршрутного провайдера
type RouteStep struct {
	Instruction string  `json:"instruction"`
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
}

// Route - геометрия и метрики маршрута, полученные от внешнего провайдера.
// Геометрия - последовательность вершин (lon, lat), как в GeoJSON.
type Route struct {
	Geometry        [][]float64 `json:"geometry"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Steps           []RouteStep `json:"steps"`
}

type SafetyLevel string

const (
	SafetySafe     SafetyLevel = "safe"
	SafetyModerate SafetyLevel = "moderate"
	SafetyRisky    SafetyLevel = "risky"
)

// ScoredRoute - маршрут с оценкой опасности. Композитная оценка монотонна по
// dangerScore и длительности, упорядочение "меньше - лучше".
type ScoredRoute struct {
	Geometry               [][]float64          `json:"geometry"`
	DistanceMeters         float64              `json:"distance_meters"`
	DurationSeconds        float64              `json:"duration_seconds"`
	DangerScore            float64              `json:"danger_score"`
	SafetyLevel            SafetyLevel          `json:"safety_level"`
	CompositeScore         float64              `json:"composite_score"`
	Destination            CandidateDestination `json:"destination"`
	SimplifiedInstructions []RouteStep          `json:"simplified_instructions"`
}
