package domain

// GoalStatus é a classificação em três níveis de uma meta de desempenho
type GoalStatus string

const (
	GoalStatusAchieved       GoalStatus = "achieved"
	GoalStatusAtRisk         GoalStatus = "at_risk"
	GoalStatusNeedsAttention GoalStatus = "needs_attention"
)

// GoalUnit indica como o valor da meta deve ser formatado
type GoalUnit string

const (
	GoalUnitPercentage GoalUnit = "percentage"
	GoalUnitCurrency   GoalUnit = "currency"
	GoalUnitNumber     GoalUnit = "number"
	GoalUnitRating     GoalUnit = "rating"
)

// Directionality indica se valores maiores ou menores do indicador são melhores.
// É propriedade da regra, não um caso especial por métrica: qualquer nova métrica
// lower-is-better reutiliza a mesma fórmula de progresso.
type Directionality string

const (
	HigherIsBetter Directionality = "higher_is_better"
	LowerIsBetter  Directionality = "lower_is_better"
)

// GoalCategoryAll é o valor de filtro que agrega todas as categorias
const GoalCategoryAll AlertCategory = "all"

// PerformanceGoal compara o valor atual de um indicador com sua meta.
// Diferente dos alertas, há sempre exatamente uma meta por indicador monitorado.
type PerformanceGoal struct {
	ID             string         `json:"id"`
	Category       AlertCategory  `json:"category"`
	Title          string         `json:"title"`
	Target         float64        `json:"target"`
	Current        float64        `json:"current"`
	Unit           GoalUnit       `json:"unit"`
	Directionality Directionality `json:"directionality"`
	Trend          Trend          `json:"trend"`
	Status         GoalStatus     `json:"status"`
	Progress       float64        `json:"progress"`
	Description    string         `json:"description"`
}

// GoalSummary contém a contagem de metas por status
type GoalSummary struct {
	Achieved       int `json:"achieved"`
	AtRisk         int `json:"at_risk"`
	NeedsAttention int `json:"needs_attention"`
	Total          int `json:"total"`
}

// GoalsResponse é a resposta do endpoint de metas de um imóvel
type GoalsResponse struct {
	PropertyID string            `json:"property_id"`
	Goals      []PerformanceGoal `json:"goals"`
	Summary    GoalSummary       `json:"summary"`
}
