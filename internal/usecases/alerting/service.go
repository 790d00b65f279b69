// Package alerting deriva alertas de limiar a partir de um snapshot de analytics.
// A derivação é pura e síncrona: não há I/O, estado compartilhado nem erro —
// o snapshot é imutável e cada chamada produz uma coleção nova.
package alerting

import (
	"sort"

	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

// AlertDeriver define o contrato público do motor de alertas
type AlertDeriver interface {
	// DeriveAlerts avalia a tabela de regras contra o snapshot e devolve os
	// alertas ordenados por timestamp decrescente
	DeriveAlerts(snapshot *domain.AnalyticsSnapshot) []domain.Alert

	// FilterAlerts aplica os filtros de severidade e leitura. Pura e idempotente.
	FilterAlerts(alerts []domain.Alert, filter domain.AlertFilter) []domain.Alert

	// CountUnreadBySeverity conta os alertas não lidos por severidade
	CountUnreadBySeverity(alerts []domain.Alert) domain.AlertSummary
}

type Service struct {
	rules []AlertRule
}

// NewService cria o motor de alertas com a tabela de regras padrão do produto
func NewService() AlertDeriver {
	return &Service{rules: defaultRules()}
}

// DeriveAlerts produz no máximo um alerta por regra: as faixas de severidade
// são mutuamente exclusivas e um indicador saudável não gera alerta algum.
// O timestamp vem de ObservedAt da amostra, nunca de relógio ou aleatoriedade,
// para que duas derivações do mesmo snapshot sejam idênticas.
func (s *Service) DeriveAlerts(snapshot *domain.AnalyticsSnapshot) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(s.rules))

	for _, rule := range s.rules {
		sample := rule.Sample(snapshot)

		v := rule.Evaluate(sample)
		if v == nil {
			continue
		}

		alerts = append(alerts, domain.Alert{
			ID:             rule.ID,
			Severity:       v.Severity,
			Category:       rule.Category,
			Title:          rule.Title,
			Message:        v.Message,
			Value:          sample.Value,
			Threshold:      v.Threshold,
			Trend:          sample.Trend,
			Timestamp:      sample.ObservedAt,
			IsRead:         v.PreRead,
			ActionRequired: rule.ActionRequired(sample, v.Severity),
		})
	}

	// Mais recentes primeiro; o ID da regra desempata para manter a ordem estável
	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].Timestamp.Equal(alerts[j].Timestamp) {
			return alerts[i].Timestamp.After(alerts[j].Timestamp)
		}
		return alerts[i].ID < alerts[j].ID
	})

	return alerts
}

func (s *Service) FilterAlerts(alerts []domain.Alert, filter domain.AlertFilter) []domain.Alert {
	filtered := make([]domain.Alert, 0, len(alerts))

	for _, alert := range alerts {
		if filter.Severity != "" && filter.Severity != domain.SeverityAll && alert.Severity != filter.Severity {
			continue
		}
		if !filter.IncludeRead && alert.IsRead {
			continue
		}
		filtered = append(filtered, alert)
	}

	return filtered
}

func (s *Service) CountUnreadBySeverity(alerts []domain.Alert) domain.AlertSummary {
	summary := domain.AlertSummary{}

	for _, alert := range alerts {
		if alert.IsRead {
			continue
		}

		switch alert.Severity {
		case domain.SeverityCritical:
			summary.Critical++
		case domain.SeverityWarning:
			summary.Warning++
		case domain.SeverityInfo:
			summary.Info++
		}
	}

	return summary
}
