package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident - одно сообщение об опасности от пользователя. Запись неизменяема
// после создания и удаляется только по истечении expires_at.
type Incident struct {
	ID         uuid.UUID `json:"id"`
	ReporterID string    `json:"reporter_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	City       string    `json:"city"`
	ReportedAt time.Time `json:"reported_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ReportThrottle хранит последний репорт пользователя: один репорт на город
// в скользящем окне (24 часа по умолчанию).
type ReportThrottle struct {
	ReporterID     string    `json:"reporter_id"`
	LastReportCity string    `json:"last_report_city"`
	LastReportTime time.Time `json:"last_report_time"`
}
