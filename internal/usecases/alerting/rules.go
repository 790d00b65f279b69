package alerting

import (
	"fmt"

	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

// Limiares de negócio dos alertas. Os valores são constantes do produto;
// ver DESIGN.md sobre a decisão de não torná-los configuráveis por tenant.
const (
	occupancyCriticalBelow = 50.0
	occupancyWarningBelow  = 65.0
	occupancyInfoAbove     = 85.0

	revparCriticalBelow = 90.0

	satisfactionCriticalBelow = 4.0
	satisfactionWarningBelow  = 4.3

	ratingCriticalBelow = 4.0
	ratingWarningBelow  = 4.3
	ratingInfoAtLeast   = 4.7

	responseRateWarningBelow = 80.0

	cancellationCriticalAbove = 15.0
	cancellationWarningAbove  = 10.0
	cancellationActionAbove   = 12.0
)

// violation é o resultado da avaliação de uma regra sobre uma amostra.
// Nil indica que nenhuma faixa foi violada e nenhum alerta é produzido.
type violation struct {
	Severity  domain.Severity
	Threshold float64
	Message   string
	PreRead   bool // sinais positivos nascem marcados como lidos
}

// AlertRule é uma regra declarativa de limiar: cada regra produz no máximo
// um alerta por passada de derivação (as faixas são mutuamente exclusivas).
type AlertRule struct {
	ID       string
	Category domain.AlertCategory
	Title    string

	// Sample seleciona a amostra monitorada dentro do snapshot
	Sample func(*domain.AnalyticsSnapshot) domain.MetricSample

	// Evaluate devolve a faixa violada, ou nil quando o indicador está saudável
	Evaluate func(domain.MetricSample) *violation

	// ActionRequired é um predicado por regra, não uma função cega da severidade
	ActionRequired func(sample domain.MetricSample, severity domain.Severity) bool
}

// criticalOnly é o predicado padrão de ação: apenas alertas críticos exigem ação
func criticalOnly(_ domain.MetricSample, severity domain.Severity) bool {
	return severity == domain.SeverityCritical
}

func defaultRules() []AlertRule {
	return []AlertRule{
		{
			ID:       "occupancy_rate",
			Category: domain.AlertCategoryOccupancy,
			Title:    "Taxa de ocupação",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Occupancy.OccupancyRate },
			Evaluate: func(m domain.MetricSample) *violation {
				switch {
				case m.Value < occupancyCriticalBelow:
					return &violation{
						Severity:  domain.SeverityCritical,
						Threshold: occupancyCriticalBelow,
						Message:   fmt.Sprintf("Ocupação em %.1f%%, abaixo do mínimo de %.0f%%", m.Value, occupancyCriticalBelow),
					}
				case m.Value < occupancyWarningBelow:
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: occupancyWarningBelow,
						Message:   fmt.Sprintf("Ocupação em %.1f%%, abaixo da faixa saudável de %.0f%%", m.Value, occupancyWarningBelow),
					}
				case m.Value > occupancyInfoAbove:
					return &violation{
						Severity:  domain.SeverityInfo,
						Threshold: occupancyInfoAbove,
						Message:   fmt.Sprintf("Ocupação excelente: %.1f%%. Considere ajustar a diária.", m.Value),
						PreRead:   true,
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "revpar",
			Category: domain.AlertCategoryRevenue,
			Title:    "RevPAR",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.RevPAR },
			Evaluate: func(m domain.MetricSample) *violation {
				if m.Value < revparCriticalBelow {
					return &violation{
						Severity:  domain.SeverityCritical,
						Threshold: revparCriticalBelow,
						Message:   fmt.Sprintf("RevPAR em R$ %.2f, abaixo do piso de R$ %.0f", m.Value, revparCriticalBelow),
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "adr_trend",
			Category: domain.AlertCategoryRevenue,
			Title:    "Diária média (ADR)",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.ADR },
			Evaluate: func(m domain.MetricSample) *violation {
				if m.Trend == domain.TrendDown {
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: m.Value,
						Message:   fmt.Sprintf("ADR em queda: R$ %.2f no período. Revise a estratégia de preços.", m.Value),
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "guest_satisfaction",
			Category: domain.AlertCategoryGuests,
			Title:    "Satisfação dos hóspedes",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.Satisfaction },
			Evaluate: func(m domain.MetricSample) *violation {
				switch {
				case m.Value < satisfactionCriticalBelow:
					return &violation{
						Severity:  domain.SeverityCritical,
						Threshold: satisfactionCriticalBelow,
						Message:   fmt.Sprintf("Satisfação em %.1f, abaixo do mínimo de %.1f", m.Value, satisfactionCriticalBelow),
					}
				case m.Value < satisfactionWarningBelow:
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: satisfactionWarningBelow,
						Message:   fmt.Sprintf("Satisfação em %.1f, abaixo da meta de %.1f", m.Value, satisfactionWarningBelow),
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "review_rating",
			Category: domain.AlertCategoryReviews,
			Title:    "Nota das avaliações",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.AverageRating },
			Evaluate: func(m domain.MetricSample) *violation {
				switch {
				case m.Value < ratingCriticalBelow:
					return &violation{
						Severity:  domain.SeverityCritical,
						Threshold: ratingCriticalBelow,
						Message:   fmt.Sprintf("Nota média em %.1f, abaixo do mínimo de %.1f", m.Value, ratingCriticalBelow),
					}
				case m.Value < ratingWarningBelow:
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: ratingWarningBelow,
						Message:   fmt.Sprintf("Nota média em %.1f, abaixo da meta de %.1f", m.Value, ratingWarningBelow),
					}
				case m.Value >= ratingInfoAtLeast:
					return &violation{
						Severity:  domain.SeverityInfo,
						Threshold: ratingInfoAtLeast,
						Message:   fmt.Sprintf("Excelente reputação: nota média %.1f", m.Value),
						PreRead:   true,
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "review_response_rate",
			Category: domain.AlertCategoryReviews,
			Title:    "Taxa de resposta a avaliações",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.ResponseRate },
			Evaluate: func(m domain.MetricSample) *violation {
				if m.Value < responseRateWarningBelow {
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: responseRateWarningBelow,
						Message:   fmt.Sprintf("Apenas %.0f%% das avaliações respondidas; a meta é %.0f%%", m.Value, responseRateWarningBelow),
					}
				}
				return nil
			},
			ActionRequired: criticalOnly,
		},
		{
			ID:       "cancellation_rate",
			Category: domain.AlertCategoryBookings,
			Title:    "Taxa de cancelamento",
			Sample:   func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Bookings.CancellationRate },
			Evaluate: func(m domain.MetricSample) *violation {
				switch {
				case m.Value > cancellationCriticalAbove:
					return &violation{
						Severity:  domain.SeverityCritical,
						Threshold: cancellationCriticalAbove,
						Message:   fmt.Sprintf("Cancelamentos em %.1f%%, acima do limite de %.0f%%", m.Value, cancellationCriticalAbove),
					}
				case m.Value > cancellationWarningAbove:
					return &violation{
						Severity:  domain.SeverityWarning,
						Threshold: cancellationWarningAbove,
						Message:   fmt.Sprintf("Cancelamentos em %.1f%%, acima da faixa saudável de %.0f%%", m.Value, cancellationWarningAbove),
					}
				}
				return nil
			},
			// Cancelamento acima de 12% exige ação mesmo na faixa de warning
			ActionRequired: func(m domain.MetricSample, severity domain.Severity) bool {
				return severity == domain.SeverityCritical || m.Value > cancellationActionAbove
			},
		},
	}
}
