package domain

// MonthlyPerformanceReport representa o consolidado mensal de um imóvel
type MonthlyPerformanceReport struct {
	PropertyID   string             `json:"property_id"`
	PropertyName string             `json:"property_name,omitempty"`
	ExternalID   string             `json:"external_id,omitempty"`
	Period       string             `json:"period"` // Período no formato mm-yyyy
	Snapshot     *AnalyticsSnapshot `json:"snapshot,omitempty"`
	Goals        []PerformanceGoal  `json:"goals,omitempty"`
	GoalSummary  *GoalSummary       `json:"goal_summary,omitempty"`
}

// ExportFormat identifica os formatos de exportação suportados
type ExportFormat string

const (
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportRequest descreve uma solicitação de exportação de relatório.
// A exportação é um canal lateral fire-and-forget: falhas são registradas
// em log e nunca bloqueiam o fluxo principal.
type ExportRequest struct {
	PropertyID string       `json:"property_id"`
	TimeRange  TimeRange    `json:"time_range"`
	Format     ExportFormat `json:"format"`
	Sections   []string     `json:"sections"`
}
