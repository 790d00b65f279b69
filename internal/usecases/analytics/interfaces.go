package analytics

import (
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

// SnapshotProvider define a interface para obter o snapshot de métricas de um imóvel
type SnapshotProvider interface {
	// GetPropertySnapshot monta o snapshot completo de um imóvel para o período.
	// O snapshot é sempre entregue inteiro: nunca há mesclagem parcial com dados antigos.
	GetPropertySnapshot(propertyID string, timeRange domain.TimeRange) (*domain.AnalyticsSnapshot, error)
}

// Analyzer é a interface completa do serviço de analytics
type Analyzer interface {
	SnapshotProvider

	// GetAlerts deriva e filtra os alertas do snapshot do período
	GetAlerts(propertyID string, timeRange domain.TimeRange, filter domain.AlertFilter) (*domain.AlertsResponse, error)

	// GetGoals deriva as metas de desempenho do snapshot do período
	GetGoals(propertyID string, timeRange domain.TimeRange, category domain.AlertCategory) (*domain.GoalsResponse, error)

	// ExportAnalytics despacha uma exportação de relatório em segundo plano
	ExportAnalytics(request *domain.ExportRequest) error

	// GetMonthlyReports obtém os consolidados mensais de todos os imóveis em um período
	GetMonthlyReports(period string) ([]*domain.MonthlyPerformanceReport, error)

	// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis nos consolidados
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
