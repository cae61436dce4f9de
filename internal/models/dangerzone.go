package models

import "time"

type ZoneStatus string

const (
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusInactive ZoneStatus = "inactive"
)

// Coordinates - пара широта/долгота в градусах
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DangerZone - опасная зона города. Город является естественным ключом:
// на город существует не более одной записи. Центр фиксируется координатами
// первого инцидента при активации и дальше не пересчитывается.
type DangerZone struct {
	City          string      `json:"city"`
	IncidentCount int         `json:"incident_count"`
	Center        Coordinates `json:"center"`
	Status        ZoneStatus  `json:"status"`
	LastUpdated   time.Time   `json:"last_updated"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// IsActive сообщает, находится ли зона в активном состоянии
func (z *DangerZone) IsActive() bool {
	return z.Status == ZoneStatusActive
}
