package domain

import "time"

// SnapshotEntry representa um snapshot diário de métricas armazenado no banco
type SnapshotEntry struct {
	ID         int64              `json:"id"`
	PropertyID string             `json:"property_id"`
	Date       time.Time          `json:"date"`
	Snapshot   *AnalyticsSnapshot `json:"snapshot"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
