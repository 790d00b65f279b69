package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

var observedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func snapshotFixture() *domain.AnalyticsSnapshot {
	sample := func(value float64, trend domain.Trend) domain.MetricSample {
		return domain.MetricSample{Value: value, Trend: trend, ObservedAt: observedAt}
	}

	return &domain.AnalyticsSnapshot{
		PropertyID: "PROP01",
		Occupancy:  domain.OccupancyMetrics{OccupancyRate: sample(78.0, domain.TrendUp)},
		Revenue: domain.RevenueMetrics{
			ADR:          sample(330.0, domain.TrendUp),
			RevPAR:       sample(115.0, domain.TrendUp),
			TotalRevenue: sample(45000.0, domain.TrendUp),
		},
		Guests: domain.GuestMetrics{
			Satisfaction:  sample(4.6, domain.TrendStable),
			ReturningRate: sample(34.0, domain.TrendUp),
			TotalGuests:   sample(58, domain.TrendUp),
		},
		Reviews: domain.ReviewMetrics{
			AverageRating: sample(4.7, domain.TrendStable),
			ResponseRate:  sample(95.0, domain.TrendStable),
			TotalReviews:  sample(41, domain.TrendUp),
		},
		Bookings: domain.BookingMetrics{
			CancellationRate: sample(4.0, domain.TrendStable),
			TotalBookings:    sample(27, domain.TrendUp),
			AverageStay:      sample(3.4, domain.TrendStable),
		},
	}
}

func goalByID(goals []domain.PerformanceGoal, id string) *domain.PerformanceGoal {
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i]
		}
	}
	return nil
}

func TestDeriveGoals_AlwaysOneGoalPerTrackedMetric(t *testing.T) {
	service := NewService()

	goals := service.DeriveGoals(snapshotFixture())

	require.Len(t, goals, 8)

	expected := []string{
		"occupancy_rate", "adr", "revpar", "guest_satisfaction",
		"returning_rate", "review_rating", "review_response_rate", "cancellation_rate",
	}
	for _, id := range expected {
		assert.NotNilf(t, goalByID(goals, id), "meta %s ausente", id)
	}
}

func TestDeriveGoals_Determinism(t *testing.T) {
	service := NewService()

	snapshot := snapshotFixture()
	first := service.DeriveGoals(snapshot)
	second := service.DeriveGoals(snapshot)

	assert.Equal(t, first, second)
}

func TestDeriveGoals_InvertedMetricProgress(t *testing.T) {
	service := NewService()

	// Reescalonamento linear: piso 15% -> 0%, meta 5% -> 100%
	tests := []struct {
		name         string
		cancellation float64
		wantProgress float64
	}{
		{name: "no piso o progresso é zero", cancellation: 15.0, wantProgress: 0},
		{name: "no ponto médio o progresso é 50", cancellation: 10.0, wantProgress: 50},
		{name: "na meta o progresso é 100", cancellation: 5.0, wantProgress: 100},
		{name: "abaixo da meta mantém 100 (clamp)", cancellation: 2.0, wantProgress: 100},
		{name: "acima do piso mantém 0 (clamp)", cancellation: 20.0, wantProgress: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := snapshotFixture()
			snapshot.Bookings.CancellationRate.Value = tt.cancellation

			goal := goalByID(service.DeriveGoals(snapshot), "cancellation_rate")

			require.NotNil(t, goal)
			assert.Equal(t, domain.LowerIsBetter, goal.Directionality)
			assert.InDelta(t, tt.wantProgress, goal.Progress, 0.001)
		})
	}
}

func TestDeriveGoals_StatusClassification(t *testing.T) {
	service := NewService()

	tests := []struct {
		name       string
		occupancy  float64
		wantStatus domain.GoalStatus
	}{
		{name: "na meta é achieved", occupancy: 75.0, wantStatus: domain.GoalStatusAchieved},
		{name: "acima da meta é achieved", occupancy: 82.0, wantStatus: domain.GoalStatusAchieved},
		{name: "dentro da tolerância é at_risk", occupancy: 68.0, wantStatus: domain.GoalStatusAtRisk},
		{name: "no limite da tolerância é at_risk", occupancy: 65.0, wantStatus: domain.GoalStatusAtRisk},
		{name: "abaixo da tolerância é needs_attention", occupancy: 60.0, wantStatus: domain.GoalStatusNeedsAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := snapshotFixture()
			snapshot.Occupancy.OccupancyRate.Value = tt.occupancy

			goal := goalByID(service.DeriveGoals(snapshot), "occupancy_rate")

			require.NotNil(t, goal)
			assert.Equal(t, tt.wantStatus, goal.Status)
		})
	}
}

// Aumentar o valor de uma métrica higher-is-better com a meta fixa nunca
// rebaixa o status de achieved para at_risk/needs_attention
func TestDeriveGoals_StatusMonotonicity(t *testing.T) {
	service := NewService()

	rank := map[domain.GoalStatus]int{
		domain.GoalStatusNeedsAttention: 0,
		domain.GoalStatusAtRisk:         1,
		domain.GoalStatusAchieved:       2,
	}

	previous := -1
	for occupancy := 40.0; occupancy <= 100.0; occupancy += 0.5 {
		snapshot := snapshotFixture()
		snapshot.Occupancy.OccupancyRate.Value = occupancy

		goal := goalByID(service.DeriveGoals(snapshot), "occupancy_rate")
		require.NotNil(t, goal)

		current := rank[goal.Status]
		assert.GreaterOrEqualf(t, current, previous,
			"status regrediu com ocupação %.1f", occupancy)
		previous = current
	}
}

func TestSummarize_Consistency(t *testing.T) {
	service := NewService()

	snapshot := snapshotFixture()
	snapshot.Occupancy.OccupancyRate.Value = 45.0
	snapshot.Revenue.RevPAR.Value = 95.0
	snapshot.Reviews.ResponseRate.Value = 70.0

	goals := service.DeriveGoals(snapshot)

	all := service.Summarize(goals, domain.GoalCategoryAll)
	assert.Equal(t, len(goals), all.Total)
	assert.Equal(t, all.Total, all.Achieved+all.AtRisk+all.NeedsAttention)

	categories := []domain.AlertCategory{
		domain.AlertCategoryOccupancy,
		domain.AlertCategoryRevenue,
		domain.AlertCategoryGuests,
		domain.AlertCategoryReviews,
		domain.AlertCategoryBookings,
	}

	sumOfCategories := 0
	for _, category := range categories {
		summary := service.Summarize(goals, category)
		assert.Equal(t, summary.Total, summary.Achieved+summary.AtRisk+summary.NeedsAttention)
		sumOfCategories += summary.Total
	}

	assert.Equal(t, all.Total, sumOfCategories)
}

// Cenário ponta a ponta do dashboard: ocupação 45% e RevPAR 80 em
// needs_attention; satisfação 4.6, nota 4.8 e cancelamento 3% em achieved
func TestDeriveGoals_EndToEndScenario(t *testing.T) {
	service := NewService()

	snapshot := snapshotFixture()
	snapshot.Occupancy.OccupancyRate.Value = 45.0
	snapshot.Revenue.RevPAR.Value = 80.0
	snapshot.Guests.Satisfaction.Value = 4.6
	snapshot.Reviews.AverageRating.Value = 4.8
	snapshot.Bookings.CancellationRate.Value = 3.0

	goals := service.DeriveGoals(snapshot)

	wantStatuses := map[string]domain.GoalStatus{
		"occupancy_rate":     domain.GoalStatusNeedsAttention,
		"revpar":             domain.GoalStatusNeedsAttention,
		"guest_satisfaction": domain.GoalStatusAchieved,
		"review_rating":      domain.GoalStatusAchieved,
		"cancellation_rate":  domain.GoalStatusAchieved,
	}

	for id, want := range wantStatuses {
		goal := goalByID(goals, id)
		require.NotNilf(t, goal, "meta %s ausente", id)
		assert.Equalf(t, want, goal.Status, "status inesperado para %s", id)
	}

	cancellation := goalByID(goals, "cancellation_rate")
	assert.InDelta(t, 100.0, cancellation.Progress, 0.001)
}
