package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/database/postgres"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

const (
	monthlyReportsTable = "monthly_reports mr"
)

type MonthlyReportRepository interface {
	GetByPropertyIDAndPeriod(propertyID string, date time.Time) (*domain.MonthlyPerformanceReport, error)
	GetByPeriod(period string) ([]*domain.MonthlyPerformanceReport, error)
	SaveOrUpdate(report *domain.MonthlyPerformanceReport) error
	GetAllPeriods() ([]string, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

// FormatPeriod converte uma data no período mm-yyyy usado nos consolidados
func FormatPeriod(date time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(date.Month()), date.Year())
}

func (r *monthlyReportRepository) GetByPropertyIDAndPeriod(propertyID string, date time.Time) (*domain.MonthlyPerformanceReport, error) {
	period := FormatPeriod(date)

	query, args, err := squirrel.
		Select("mr.property_id, mr.period, mr.snapshot, mr.goals").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.property_id": propertyID, "mr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
	}

	return report, nil
}

func (r *monthlyReportRepository) GetByPeriod(period string) ([]*domain.MonthlyPerformanceReport, error) {
	query, args, err := squirrel.
		Select("mr.property_id, mr.period, mr.snapshot, mr.goals, p.name, p.external_id").
		From(monthlyReportsTable).
		Join("properties p ON mr.property_id = p.id").
		Where(squirrel.Eq{"mr.period": period}).
		OrderBy("p.nickname ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.MonthlyPerformanceReport, 0)
	for rows.Next() {
		report := &domain.MonthlyPerformanceReport{}
		var snapshotJSON, goalsJSON []byte

		if err := rows.Scan(
			&report.PropertyID,
			&report.Period,
			&snapshotJSON,
			&goalsJSON,
			&report.PropertyName,
			&report.ExternalID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
		}

		if err := r.unmarshalPayloads(report, snapshotJSON, goalsJSON); err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(report *domain.MonthlyPerformanceReport) error {
	var snapshotJSON, goalsJSON []byte
	var err error

	if report.Snapshot != nil {
		snapshotJSON, err = json.Marshal(report.Snapshot)
		if err != nil {
			return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
		}
	}

	if report.Goals != nil {
		goalsJSON, err = json.Marshal(report.Goals)
		if err != nil {
			return fmt.Errorf("erro ao serializar metas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("property_id", "period", "snapshot", "goals").
		Values(report.PropertyID, report.Period, snapshotJSON, goalsJSON).
		Suffix(`
			ON CONFLICT (property_id, period) DO UPDATE SET
				snapshot = EXCLUDED.snapshot,
				goals = EXCLUDED.goals,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetAllPeriods retorna os períodos distintos existentes, mais recentes primeiro
func (r *monthlyReportRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT mr.period").
		From(monthlyReportsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Ordena por ano e mês decrescentes (o formato mm-yyyy não ordena lexicograficamente)
	sort.Slice(periods, func(i, j int) bool {
		pi := strings.Split(periods[i], "-")
		pj := strings.Split(periods[j], "-")
		if len(pi) != 2 || len(pj) != 2 {
			return periods[i] > periods[j]
		}
		if pi[1] != pj[1] {
			return pi[1] > pj[1]
		}
		return pi[0] > pj[0]
	})

	return periods, nil
}

func (r *monthlyReportRepository) scanReport(row *sql.Row) (*domain.MonthlyPerformanceReport, error) {
	report := &domain.MonthlyPerformanceReport{}
	var snapshotJSON, goalsJSON []byte

	err := row.Scan(
		&report.PropertyID,
		&report.Period,
		&snapshotJSON,
		&goalsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := r.unmarshalPayloads(report, snapshotJSON, goalsJSON); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *monthlyReportRepository) unmarshalPayloads(report *domain.MonthlyPerformanceReport, snapshotJSON, goalsJSON []byte) error {
	if snapshotJSON != nil {
		snapshot := &domain.AnalyticsSnapshot{}
		if err := json.Unmarshal(snapshotJSON, snapshot); err != nil {
			return fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		report.Snapshot = snapshot
	}

	if goalsJSON != nil {
		goals := []domain.PerformanceGoal{}
		if err := json.Unmarshal(goalsJSON, &goals); err != nil {
			return fmt.Errorf("erro ao deserializar JSON das metas: %w", err)
		}
		report.Goals = goals
	}

	return nil
}
