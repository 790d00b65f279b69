package performance

import (
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

// cancellationFloor é o valor de cancelamento que corresponde a progresso zero
// na fórmula de métricas invertidas (lower-is-better)
const cancellationFloor = 15.0

// GoalTarget descreve a meta de um indicador monitorado. Directionality é
// propriedade da regra: qualquer métrica lower-is-better nova reutiliza a
// mesma fórmula de reescalonamento de progresso, sem caso especial.
type GoalTarget struct {
	ID             string
	Category       domain.AlertCategory
	Title          string
	Description    string
	Unit           domain.GoalUnit
	Directionality domain.Directionality
	Target         float64
	Tolerance      float64 // largura da faixa at_risk abaixo (ou acima) da meta
	Floor          float64 // apenas lower-is-better: valor que mapeia para progresso 0

	Sample func(*domain.AnalyticsSnapshot) domain.MetricSample
}

// As metas são constantes de negócio do produto, não configuração por tenant.
// Sempre há exatamente uma meta por indicador monitorado.
func defaultTargets() []GoalTarget {
	return []GoalTarget{
		{
			ID:             "occupancy_rate",
			Category:       domain.AlertCategoryOccupancy,
			Title:          "Taxa de ocupação",
			Description:    "Percentual de noites ocupadas no período",
			Unit:           domain.GoalUnitPercentage,
			Directionality: domain.HigherIsBetter,
			Target:         75,
			Tolerance:      10,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Occupancy.OccupancyRate },
		},
		{
			ID:             "adr",
			Category:       domain.AlertCategoryRevenue,
			Title:          "Diária média (ADR)",
			Description:    "Valor médio da diária nas reservas do período",
			Unit:           domain.GoalUnitCurrency,
			Directionality: domain.HigherIsBetter,
			Target:         320,
			Tolerance:      40,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.ADR },
		},
		{
			ID:             "revpar",
			Category:       domain.AlertCategoryRevenue,
			Title:          "RevPAR",
			Description:    "Receita por noite disponível",
			Unit:           domain.GoalUnitCurrency,
			Directionality: domain.HigherIsBetter,
			Target:         110,
			Tolerance:      20,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.RevPAR },
		},
		{
			ID:             "guest_satisfaction",
			Category:       domain.AlertCategoryGuests,
			Title:          "Satisfação dos hóspedes",
			Description:    "Nota média das pesquisas pós-estadia",
			Unit:           domain.GoalUnitRating,
			Directionality: domain.HigherIsBetter,
			Target:         4.5,
			Tolerance:      0.3,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.Satisfaction },
		},
		{
			ID:             "returning_rate",
			Category:       domain.AlertCategoryGuests,
			Title:          "Hóspedes recorrentes",
			Description:    "Percentual de reservas de hóspedes que já se hospedaram antes",
			Unit:           domain.GoalUnitPercentage,
			Directionality: domain.HigherIsBetter,
			Target:         30,
			Tolerance:      8,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.ReturningRate },
		},
		{
			ID:             "review_rating",
			Category:       domain.AlertCategoryReviews,
			Title:          "Nota das avaliações",
			Description:    "Nota média das avaliações públicas nos canais",
			Unit:           domain.GoalUnitRating,
			Directionality: domain.HigherIsBetter,
			Target:         4.5,
			Tolerance:      0.3,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.AverageRating },
		},
		{
			ID:             "review_response_rate",
			Category:       domain.AlertCategoryReviews,
			Title:          "Taxa de resposta a avaliações",
			Description:    "Percentual de avaliações respondidas pelo anfitrião",
			Unit:           domain.GoalUnitPercentage,
			Directionality: domain.HigherIsBetter,
			Target:         90,
			Tolerance:      10,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.ResponseRate },
		},
		{
			ID:             "cancellation_rate",
			Category:       domain.AlertCategoryBookings,
			Title:          "Taxa de cancelamento",
			Description:    "Percentual de reservas canceladas no período",
			Unit:           domain.GoalUnitPercentage,
			Directionality: domain.LowerIsBetter,
			Target:         5,
			Tolerance:      3,
			Floor:          cancellationFloor,
			Sample:         func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Bookings.CancellationRate },
		},
	}
}
