package domain

import (
	"fmt"
	"time"
)

// TimeRangePreset identifica os períodos pré-definidos aceitos pela API
type TimeRangePreset string

const (
	PresetLast7Days  TimeRangePreset = "last_7_days"
	PresetLast30Days TimeRangePreset = "last_30_days"
	PresetLast90Days TimeRangePreset = "last_90_days"
	PresetThisYear   TimeRangePreset = "this_year"
)

// TimeRange delimita o período de um snapshot de analytics
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolvePreset converte um preset em um TimeRange concreto relativo a `now`
func ResolvePreset(preset TimeRangePreset, now time.Time) (TimeRange, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case PresetLast7Days:
		return TimeRange{Start: end.AddDate(0, 0, -7), End: end}, nil
	case PresetLast30Days:
		return TimeRange{Start: end.AddDate(0, 0, -30), End: end}, nil
	case PresetLast90Days:
		return TimeRange{Start: end.AddDate(0, 0, -90), End: end}, nil
	case PresetThisYear:
		return TimeRange{Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), End: end}, nil
	default:
		return TimeRange{}, fmt.Errorf("período pré-definido inválido: %s", preset)
	}
}

// IsValid verifica se o período tem datas preenchidas e em ordem
func (t TimeRange) IsValid() bool {
	return !t.Start.IsZero() && !t.End.IsZero() && !t.Start.After(t.End)
}

// Days retorna a quantidade de dias cobertos pelo período, inclusive nas pontas
func (t TimeRange) Days() int {
	if !t.IsValid() {
		return 0
	}
	return int(t.End.Sub(t.Start).Hours()/24) + 1
}
