// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// Trend indica a direção de um indicador em relação ao período anterior
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MetricSample representa uma medição de um indicador de negócio em um instante
type MetricSample struct {
	Value      float64   `json:"value"`
	Change     *float64  `json:"change,omitempty"`
	Trend      Trend     `json:"trend"`
	ObservedAt time.Time `json:"observed_at"`
}

// OccupancyMetrics agrupa os indicadores de ocupação do imóvel
type OccupancyMetrics struct {
	OccupancyRate MetricSample `json:"occupancy_rate"`
}

// RevenueMetrics agrupa os indicadores de receita do imóvel
type RevenueMetrics struct {
	ADR          MetricSample `json:"adr"`
	RevPAR       MetricSample `json:"revpar"`
	TotalRevenue MetricSample `json:"total_revenue"`
}

// GuestMetrics agrupa os indicadores de hóspedes do imóvel
type GuestMetrics struct {
	Satisfaction  MetricSample `json:"satisfaction"`
	ReturningRate MetricSample `json:"returning_rate"`
	TotalGuests   MetricSample `json:"total_guests"`
}

// ReviewMetrics agrupa os indicadores de avaliações do imóvel
type ReviewMetrics struct {
	AverageRating MetricSample `json:"average_rating"`
	ResponseRate  MetricSample `json:"response_rate"`
	TotalReviews  MetricSample `json:"total_reviews"`
}

// BookingMetrics agrupa os indicadores de reservas do imóvel
type BookingMetrics struct {
	CancellationRate MetricSample `json:"cancellation_rate"`
	TotalBookings    MetricSample `json:"total_bookings"`
	AverageStay      MetricSample `json:"average_stay"`
}

// AnalyticsSnapshot é o conjunto completo de métricas de um imóvel em um período.
// É sempre montado por inteiro antes de ser entregue ao consumidor: nunca há
// mesclagem parcial entre um snapshot antigo e um novo.
type AnalyticsSnapshot struct {
	PropertyID string          `json:"property_id"`
	TimeRange  TimeRange       `json:"time_range"`
	Occupancy  OccupancyMetrics `json:"occupancy"`
	Revenue    RevenueMetrics  `json:"revenue"`
	Guests     GuestMetrics    `json:"guests"`
	Reviews    ReviewMetrics   `json:"reviews"`
	Bookings   BookingMetrics  `json:"bookings"`
}

// Validate verifica o contrato mínimo do snapshot: toda amostra referenciada
// pelas tabelas de regras precisa ter ObservedAt preenchido. A ausência é erro
// de configuração do produtor do snapshot, não uma condição de runtime.
func (s *AnalyticsSnapshot) Validate() error {
	samples := map[string]MetricSample{
		"occupancy.occupancy_rate": s.Occupancy.OccupancyRate,
		"revenue.adr":              s.Revenue.ADR,
		"revenue.revpar":           s.Revenue.RevPAR,
		"guests.satisfaction":      s.Guests.Satisfaction,
		"guests.returning_rate":    s.Guests.ReturningRate,
		"reviews.average_rating":   s.Reviews.AverageRating,
		"reviews.response_rate":    s.Reviews.ResponseRate,
		"bookings.cancellation_rate": s.Bookings.CancellationRate,
	}

	for path, sample := range samples {
		if sample.ObservedAt.IsZero() {
			return fmt.Errorf("snapshot inválido: métrica %s sem observed_at", path)
		}
	}

	return nil
}
