// Package performance deriva metas de desempenho a partir de um snapshot de
// analytics. Assim como o motor de alertas, a derivação é pura e determinística.
package performance

import (
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/utils"
)

// GoalDeriver define o contrato público do motor de metas
type GoalDeriver interface {
	// DeriveGoals devolve uma meta por indicador monitorado, sempre presente
	DeriveGoals(snapshot *domain.AnalyticsSnapshot) []domain.PerformanceGoal

	// Summarize reduz a lista de metas à contagem por status, filtrando por
	// categoria (ou "all" para o agregado). Redução pura.
	Summarize(goals []domain.PerformanceGoal, category domain.AlertCategory) domain.GoalSummary
}

type Service struct {
	targets []GoalTarget
}

// NewService cria o motor de metas com a tabela de metas padrão do produto
func NewService() GoalDeriver {
	return &Service{targets: defaultTargets()}
}

func (s *Service) DeriveGoals(snapshot *domain.AnalyticsSnapshot) []domain.PerformanceGoal {
	goals := make([]domain.PerformanceGoal, 0, len(s.targets))

	for _, target := range s.targets {
		sample := target.Sample(snapshot)

		goals = append(goals, domain.PerformanceGoal{
			ID:             target.ID,
			Category:       target.Category,
			Title:          target.Title,
			Target:         target.Target,
			Current:        sample.Value,
			Unit:           target.Unit,
			Directionality: target.Directionality,
			Trend:          sample.Trend,
			Status:         classify(target, sample.Value),
			Progress:       progress(target, sample.Value),
			Description:    target.Description,
		})
	}

	return goals
}

func (s *Service) Summarize(goals []domain.PerformanceGoal, category domain.AlertCategory) domain.GoalSummary {
	summary := domain.GoalSummary{}

	for _, goal := range goals {
		if category != "" && category != domain.GoalCategoryAll && goal.Category != category {
			continue
		}

		summary.Total++
		switch goal.Status {
		case domain.GoalStatusAchieved:
			summary.Achieved++
		case domain.GoalStatusAtRisk:
			summary.AtRisk++
		case domain.GoalStatusNeedsAttention:
			summary.NeedsAttention++
		}
	}

	return summary
}

// classify é a classificação em três níveis: achieved quando a meta foi
// atingida, at_risk dentro da faixa de tolerância, needs_attention fora dela.
func classify(target GoalTarget, current float64) domain.GoalStatus {
	if target.Directionality == domain.LowerIsBetter {
		switch {
		case current <= target.Target:
			return domain.GoalStatusAchieved
		case current <= target.Target+target.Tolerance:
			return domain.GoalStatusAtRisk
		default:
			return domain.GoalStatusNeedsAttention
		}
	}

	switch {
	case current >= target.Target:
		return domain.GoalStatusAchieved
	case current >= target.Target-target.Tolerance:
		return domain.GoalStatusAtRisk
	default:
		return domain.GoalStatusNeedsAttention
	}
}

// progress calcula o percentual de progresso em [0,100]. Para métricas
// invertidas o reescalonamento é linear entre Floor (0%) e Target (100%).
func progress(target GoalTarget, current float64) float64 {
	if target.Directionality == domain.LowerIsBetter {
		if target.Floor == target.Target {
			return 0
		}
		p := (target.Floor - current) / (target.Floor - target.Target) * 100
		return utils.RoundWithTwoDecimalPlace(clamp(p, 0, 100))
	}

	if target.Target <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(clamp(current/target.Target*100, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
