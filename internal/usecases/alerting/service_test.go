package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// healthySnapshot monta um snapshot sem nenhuma faixa violada
func healthySnapshot() *domain.AnalyticsSnapshot {
	sample := func(value float64, trend domain.Trend, offset time.Duration) domain.MetricSample {
		return domain.MetricSample{Value: value, Trend: trend, ObservedAt: baseTime.Add(offset)}
	}

	return &domain.AnalyticsSnapshot{
		PropertyID: "PROP01",
		TimeRange: domain.TimeRange{
			Start: baseTime.AddDate(0, 0, -30),
			End:   baseTime,
		},
		Occupancy: domain.OccupancyMetrics{
			OccupancyRate: sample(72.0, domain.TrendStable, 0),
		},
		Revenue: domain.RevenueMetrics{
			ADR:          sample(310.0, domain.TrendUp, -1*time.Hour),
			RevPAR:       sample(120.0, domain.TrendUp, -2*time.Hour),
			TotalRevenue: sample(45000.0, domain.TrendUp, -2*time.Hour),
		},
		Guests: domain.GuestMetrics{
			Satisfaction:  sample(4.5, domain.TrendStable, -3*time.Hour),
			ReturningRate: sample(32.0, domain.TrendUp, -3*time.Hour),
			TotalGuests:   sample(58, domain.TrendUp, -3*time.Hour),
		},
		Reviews: domain.ReviewMetrics{
			AverageRating: sample(4.5, domain.TrendStable, -4*time.Hour),
			ResponseRate:  sample(92.0, domain.TrendStable, -4*time.Hour),
			TotalReviews:  sample(41, domain.TrendUp, -4*time.Hour),
		},
		Bookings: domain.BookingMetrics{
			CancellationRate: sample(6.0, domain.TrendStable, -5*time.Hour),
			TotalBookings:    sample(27, domain.TrendUp, -5*time.Hour),
			AverageStay:      sample(3.4, domain.TrendStable, -5*time.Hour),
		},
	}
}

func alertByID(alerts []domain.Alert, id string) *domain.Alert {
	for i := range alerts {
		if alerts[i].ID == id {
			return &alerts[i]
		}
	}
	return nil
}

func TestDeriveAlerts_HealthySnapshotProducesNoAlerts(t *testing.T) {
	service := NewService()

	alerts := service.DeriveAlerts(healthySnapshot())

	assert.Empty(t, alerts, "indicadores saudáveis não devem gerar alertas")
}

func TestDeriveAlerts_OccupancyBoundaries(t *testing.T) {
	service := NewService()

	tests := []struct {
		name         string
		occupancy    float64
		wantSeverity *domain.Severity
	}{
		{name: "49.9% dispara crítico", occupancy: 49.9, wantSeverity: severityPtr(domain.SeverityCritical)},
		{name: "50.0% dispara warning", occupancy: 50.0, wantSeverity: severityPtr(domain.SeverityWarning)},
		{name: "65.0% não dispara alerta", occupancy: 65.0, wantSeverity: nil},
		{name: "85.0% não dispara alerta", occupancy: 85.0, wantSeverity: nil},
		{name: "85.1% dispara info", occupancy: 85.1, wantSeverity: severityPtr(domain.SeverityInfo)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := healthySnapshot()
			snapshot.Occupancy.OccupancyRate.Value = tt.occupancy

			alert := alertByID(service.DeriveAlerts(snapshot), "occupancy_rate")

			if tt.wantSeverity == nil {
				assert.Nil(t, alert)
				return
			}

			require.NotNil(t, alert)
			assert.Equal(t, *tt.wantSeverity, alert.Severity)
		})
	}
}

func TestDeriveAlerts_MutualExclusivity(t *testing.T) {
	service := NewService()

	// Valores extremos em todos os indicadores: ainda assim cada regra
	// produz no máximo um alerta por passada
	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 30.0
	snapshot.Revenue.RevPAR.Value = 40.0
	snapshot.Revenue.ADR.Trend = domain.TrendDown
	snapshot.Guests.Satisfaction.Value = 3.2
	snapshot.Reviews.AverageRating.Value = 3.5
	snapshot.Reviews.ResponseRate.Value = 55.0
	snapshot.Bookings.CancellationRate.Value = 22.0

	alerts := service.DeriveAlerts(snapshot)

	seen := make(map[string]int)
	for _, alert := range alerts {
		seen[alert.ID]++
	}

	for id, count := range seen {
		assert.Equalf(t, 1, count, "regra %s produziu %d alertas na mesma passada", id, count)
	}
}

func TestDeriveAlerts_Determinism(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 48.0
	snapshot.Bookings.CancellationRate.Value = 13.0

	first := service.DeriveAlerts(snapshot)
	second := service.DeriveAlerts(snapshot)

	assert.Equal(t, first, second, "duas derivações do mesmo snapshot devem ser idênticas")
}

func TestDeriveAlerts_PositiveSignalsArePreRead(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 92.0
	snapshot.Reviews.AverageRating.Value = 4.8

	alerts := service.DeriveAlerts(snapshot)

	occupancy := alertByID(alerts, "occupancy_rate")
	require.NotNil(t, occupancy)
	assert.Equal(t, domain.SeverityInfo, occupancy.Severity)
	assert.True(t, occupancy.IsRead, "sinal positivo deve nascer marcado como lido")

	rating := alertByID(alerts, "review_rating")
	require.NotNil(t, rating)
	assert.Equal(t, domain.SeverityInfo, rating.Severity)
	assert.True(t, rating.IsRead)
}

func TestDeriveAlerts_ActionRequiredIsPerRule(t *testing.T) {
	service := NewService()

	tests := []struct {
		name         string
		cancellation float64
		wantSeverity domain.Severity
		wantAction   bool
	}{
		{name: "warning abaixo do limite de ação", cancellation: 11.0, wantSeverity: domain.SeverityWarning, wantAction: false},
		{name: "warning acima do limite de ação", cancellation: 13.0, wantSeverity: domain.SeverityWarning, wantAction: true},
		{name: "crítico sempre exige ação", cancellation: 18.0, wantSeverity: domain.SeverityCritical, wantAction: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := healthySnapshot()
			snapshot.Bookings.CancellationRate.Value = tt.cancellation

			alert := alertByID(service.DeriveAlerts(snapshot), "cancellation_rate")

			require.NotNil(t, alert)
			assert.Equal(t, tt.wantSeverity, alert.Severity)
			assert.Equal(t, tt.wantAction, alert.ActionRequired)
		})
	}
}

func TestDeriveAlerts_SortedByTimestampDescending(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 45.0 // ObservedAt = baseTime
	snapshot.Revenue.RevPAR.Value = 70.0          // ObservedAt = baseTime - 2h
	snapshot.Reviews.ResponseRate.Value = 60.0    // ObservedAt = baseTime - 4h

	alerts := service.DeriveAlerts(snapshot)

	require.Len(t, alerts, 3)
	for i := 1; i < len(alerts); i++ {
		assert.False(t, alerts[i].Timestamp.After(alerts[i-1].Timestamp),
			"alertas devem estar em ordem decrescente de timestamp")
	}
	assert.Equal(t, "occupancy_rate", alerts[0].ID)
}

func TestFilterAlerts_Idempotence(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 45.0
	snapshot.Reviews.AverageRating.Value = 4.9
	snapshot.Bookings.CancellationRate.Value = 12.0

	alerts := service.DeriveAlerts(snapshot)

	filters := []domain.AlertFilter{
		{Severity: domain.SeverityAll, IncludeRead: true},
		{Severity: domain.SeverityAll, IncludeRead: false},
		{Severity: domain.SeverityCritical, IncludeRead: false},
		{Severity: domain.SeverityInfo, IncludeRead: true},
	}

	for _, filter := range filters {
		once := service.FilterAlerts(alerts, filter)
		twice := service.FilterAlerts(once, filter)
		assert.Equal(t, once, twice, "filtragem deve ser idempotente")
	}
}

func TestFilterAlerts_ExcludesReadByDefault(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Reviews.AverageRating.Value = 4.9 // info, nasce lido
	snapshot.Occupancy.OccupancyRate.Value = 45.0

	alerts := service.DeriveAlerts(snapshot)
	unread := service.FilterAlerts(alerts, domain.AlertFilter{Severity: domain.SeverityAll, IncludeRead: false})

	require.Len(t, unread, 1)
	assert.Equal(t, "occupancy_rate", unread[0].ID)
}

func TestCountUnreadBySeverity(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 45.0      // crítico, não lido
	snapshot.Bookings.CancellationRate.Value = 12.0    // warning, não lido
	snapshot.Reviews.AverageRating.Value = 4.9         // info, nasce lido
	snapshot.Reviews.ResponseRate.Value = 70.0         // warning, não lido

	summary := service.CountUnreadBySeverity(service.DeriveAlerts(snapshot))

	assert.Equal(t, domain.AlertSummary{Critical: 1, Warning: 2, Info: 0}, summary)
}

// Cenário ponta a ponta: ocupação 45%, RevPAR 80, satisfação 4.6,
// nota 4.8 e cancelamento 3% devem produzir exatamente
// [ocupação crítica, RevPAR crítico, nota info]
func TestDeriveAlerts_EndToEndScenario(t *testing.T) {
	service := NewService()

	snapshot := healthySnapshot()
	snapshot.Occupancy.OccupancyRate.Value = 45.0
	snapshot.Revenue.RevPAR.Value = 80.0
	snapshot.Guests.Satisfaction.Value = 4.6
	snapshot.Reviews.AverageRating.Value = 4.8
	snapshot.Bookings.CancellationRate.Value = 3.0

	alerts := service.DeriveAlerts(snapshot)

	require.Len(t, alerts, 3)

	occupancy := alertByID(alerts, "occupancy_rate")
	require.NotNil(t, occupancy)
	assert.Equal(t, domain.SeverityCritical, occupancy.Severity)
	assert.True(t, occupancy.ActionRequired)

	revpar := alertByID(alerts, "revpar")
	require.NotNil(t, revpar)
	assert.Equal(t, domain.SeverityCritical, revpar.Severity)

	rating := alertByID(alerts, "review_rating")
	require.NotNil(t, rating)
	assert.Equal(t, domain.SeverityInfo, rating.Severity)
	assert.True(t, rating.IsRead)
}

func severityPtr(s domain.Severity) *domain.Severity {
	return &s
}
