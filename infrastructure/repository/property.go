package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/database/postgres"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/utils"
)

const (
	propertiesTable = "properties p"
)

type PropertyRepository interface {
	GetPropertyByID(propertyID string) (*domain.Property, error)
	GetPropertyByExternalID(externalID string) (*domain.Property, error)
	ListProperties(availableStatus []domain.PropertyStatus) ([]*domain.Property, error)
	ListPropertiesMap() (map[string]struct{}, error)
	SaveOrUpdate(properties []*domain.Property) error
	UpdateProperty(request *domain.UpdatePropertyRequest) error
}

type propertyRepository struct {
	conn *postgres.Connection
}

func NewPropertyRepository(conn *postgres.Connection) PropertyRepository {
	return &propertyRepository{
		conn: conn,
	}
}

func (r *propertyRepository) GetPropertyByID(propertyID string) (*domain.Property, error) {
	return r.getProperty(squirrel.Eq{"p.id": propertyID})
}

func (r *propertyRepository) GetPropertyByExternalID(externalID string) (*domain.Property, error) {
	return r.getProperty(squirrel.Eq{"p.external_id": externalID})
}

func (r *propertyRepository) getProperty(whereClause map[string]interface{}) (*domain.Property, error) {
	propertySQL, propertyArgs, err := squirrel.
		Select("p.id, p.external_id, p.name, p.nickname, p.city, p.realtor_id, p.channel_secret, p.status").
		From(propertiesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(propertySQL, propertyArgs...)

	property := &domain.Property{}
	if err := row.Scan(
		&property.ID,
		&property.ExternalID,
		&property.Name,
		&property.Nickname,
		&property.City,
		&property.RealtorID,
		&property.ChannelSecret,
		&property.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return property, nil
}

func (r *propertyRepository) ListProperties(availableStatus []domain.PropertyStatus) ([]*domain.Property, error) {
	queryBuilder := squirrel.
		Select("p.id, p.external_id, p.name, p.nickname, p.city, p.realtor_id, p.channel_secret, p.status").
		From(propertiesTable).
		OrderBy("p.nickname ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.status": availableStatus})
	}

	propertiesSQL, propertiesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(propertiesSQL, propertiesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)

	for rows.Next() {
		property := &domain.Property{}
		if err := rows.Scan(
			&property.ID,
			&property.ExternalID,
			&property.Name,
			&property.Nickname,
			&property.City,
			&property.RealtorID,
			&property.ChannelSecret,
			&property.Status,
		); err != nil {
			return nil, err
		}

		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return properties, nil
}

// ListPropertiesMap devolve o conjunto de external IDs já cadastrados,
// usado pela sincronização para detectar imóveis novos
func (r *propertyRepository) ListPropertiesMap() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("p.external_id").
		From(propertiesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	externalIDs := make(map[string]struct{})
	for rows.Next() {
		var externalID string
		if err := rows.Scan(&externalID); err != nil {
			return nil, err
		}
		externalIDs[externalID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return externalIDs, nil
}

func (r *propertyRepository) SaveOrUpdate(properties []*domain.Property) error {
	for _, property := range properties {
		if property.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar ID do imóvel: %w", err)
			}
			property.ID = id
		}

		query := squirrel.StatementBuilder.
			Insert("properties").
			Columns("id", "external_id", "name", "nickname", "city", "realtor_id", "channel_secret", "status").
			Values(
				property.ID,
				property.ExternalID,
				property.Name,
				property.Nickname,
				property.City,
				property.RealtorID,
				property.ChannelSecret,
				property.Status,
			).
			Suffix(`
				ON CONFLICT (external_id) DO UPDATE SET
					name = EXCLUDED.name,
					city = EXCLUDED.city,
					status = EXCLUDED.status,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				logrus.WithFields(logrus.Fields{
					"external_id": property.ExternalID,
					"pq_code":     pqErr.Code,
				}).Error("Erro ao salvar imóvel")
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}

func (r *propertyRepository) UpdateProperty(request *domain.UpdatePropertyRequest) error {
	queryBuilder := squirrel.
		Update("properties").
		Where(squirrel.Eq{"id": request.ID}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if request.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", request.Nickname)
	}

	if request.City != nil {
		queryBuilder = queryBuilder.Set("city", request.City)
	}

	if request.ChannelSecret != nil {
		queryBuilder = queryBuilder.Set("channel_secret", request.ChannelSecret)
	}

	if request.Status != nil {
		queryBuilder = queryBuilder.Set("status", request.Status)
	}

	sqlQuery, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao atualizar imóvel: %w", err)
	}

	return nil
}
