package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/database/postgres"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

const (
	snapshotsTable = "analytics_snapshots s"
)

type SnapshotRepository interface {
	GetByPropertyIDAndDate(propertyID string, date time.Time) (*domain.SnapshotEntry, error)
	GetByDateRange(propertyID string, startDate, endDate time.Time) ([]*domain.SnapshotEntry, error)
	SaveOrUpdate(entry *domain.SnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) GetByPropertyIDAndDate(propertyID string, date time.Time) (*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.property_id, s.date, s.snapshot, s.created_at, s.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.property_id": propertyID, "s.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *snapshotRepository) GetByDateRange(propertyID string, startDate, endDate time.Time) ([]*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.property_id, s.date, s.snapshot, s.created_at, s.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.property_id": propertyID}).
		Where(squirrel.GtOrEq{"s.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"s.date": endDate.Format("2006-01-02")}).
		OrderBy("s.date ASC").
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

	entries := make([]*domain.SnapshotEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) SaveOrUpdate(entry *domain.SnapshotEntry) error {
	var snapshotJSON []byte
	var err error

	if entry.Snapshot != nil {
		snapshotJSON, err = json.Marshal(entry.Snapshot)
		if err != nil {
			return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("analytics_snapshots").
		Columns("property_id", "date", "snapshot").
		Values(
			entry.PropertyID,
			entry.Date.Format("2006-01-02"),
			snapshotJSON,
		).
		Suffix(`
			ON CONFLICT (property_id, date) DO UPDATE SET
				snapshot = EXCLUDED.snapshot,
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

func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("analytics_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *snapshotRepository) scanEntry(row *sql.Row) (*domain.SnapshotEntry, error) {
	entry := &domain.SnapshotEntry{}
	var snapshotJSON []byte
	var dateStr string

	err := row.Scan(
		&entry.ID,
		&entry.PropertyID,
		&dateStr,
		&snapshotJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	entry.Date = date

	if snapshotJSON != nil {
		snapshot := &domain.AnalyticsSnapshot{}
		if err := json.Unmarshal(snapshotJSON, snapshot); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		entry.Snapshot = snapshot
	}

	return entry, nil
}

func (r *snapshotRepository) scanEntryRows(rows *sql.Rows) (*domain.SnapshotEntry, error) {
	entry := &domain.SnapshotEntry{}
	var snapshotJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.PropertyID,
		&entry.Date,
		&snapshotJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if snapshotJSON != nil {
		snapshot := &domain.AnalyticsSnapshot{}
		if err := json.Unmarshal(snapshotJSON, snapshot); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		entry.Snapshot = snapshot
	}

	return entry, nil
}
