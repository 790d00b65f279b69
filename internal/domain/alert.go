package domain

import "time"

// Severity classifica a gravidade de um alerta derivado do snapshot
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// SeverityAll é o valor de filtro que aceita qualquer severidade
const SeverityAll Severity = "all"

// AlertCategory agrupa alertas por área de negócio
type AlertCategory string

const (
	AlertCategoryOccupancy AlertCategory = "occupancy"
	AlertCategoryRevenue   AlertCategory = "revenue"
	AlertCategoryGuests    AlertCategory = "guests"
	AlertCategoryReviews   AlertCategory = "reviews"
	AlertCategoryBookings  AlertCategory = "bookings"
)

// Alert é uma notificação efêmera sintetizada a cada derivação do snapshot.
// Não é persistido: a identidade entre derivações se limita ao ID da regra.
type Alert struct {
	ID             string        `json:"id"`
	Severity       Severity      `json:"severity"`
	Category       AlertCategory `json:"category"`
	Title          string        `json:"title"`
	Message        string        `json:"message"`
	Value          float64       `json:"value"`
	Threshold      float64       `json:"threshold"`
	Trend          Trend         `json:"trend"`
	Timestamp      time.Time     `json:"timestamp"`
	IsRead         bool          `json:"is_read"`
	ActionRequired bool          `json:"action_required"`
}

// AlertFilter define os critérios de filtragem de alertas expostos pela API
type AlertFilter struct {
	Severity    Severity `json:"severity"`
	IncludeRead bool     `json:"include_read"`
}

// AlertSummary contém a contagem de alertas não lidos por severidade
type AlertSummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// AlertsResponse é a resposta do endpoint de alertas de um imóvel
type AlertsResponse struct {
	PropertyID string       `json:"property_id"`
	Alerts     []Alert      `json:"alerts"`
	Summary    AlertSummary `json:"summary"`
	Filters    AlertFilter  `json:"filters"`
}
