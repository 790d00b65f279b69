package pms

import (
	"time"

	"github.com/sirupsen/logrus"
	pmsdomain "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/pmsclient"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/utils"
)

// Metrics reúne os grupos de indicadores que o Stayza Core fornece.
// O grupo de avaliações vem da plataforma de reviews, não daqui.
type Metrics struct {
	Occupancy domain.OccupancyMetrics
	Revenue   domain.RevenueMetrics
	Guests    domain.GuestMetrics
	Bookings  domain.BookingMetrics
}

type PMSIntegrator interface {
	GetPropertyMetrics(property *domain.Property, timeRange domain.TimeRange) (*Metrics, error)
	ListProperties() ([]*domain.Property, error)
}

type PMSService struct {
	cfg    *config.Config
	Client pmsclient.Client
}

func New(cfg *config.Config, client pmsclient.Client) PMSIntegrator {
	return &PMSService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PMSService) GetPropertyMetrics(property *domain.Property, timeRange domain.TimeRange) (*Metrics, error) {
	resp, err := s.Client.GetPropertyMetrics(
		property.ExternalID,
		timeRange.Start.Format(time.DateOnly),
		timeRange.End.Format(time.DateOnly),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"external_id": property.ExternalID,
			"error":       err.Error(),
		}).Error("pms: falha ao buscar métricas do imóvel")
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("external_id", property.ExternalID).
			Debugf("pms: métricas recebidas: %s", utils.PrettyJson(resp))
	}

	return &Metrics{
		Occupancy: domain.OccupancyMetrics{
			OccupancyRate: toSample(resp.Occupancy.OccupancyRate),
		},
		Revenue: domain.RevenueMetrics{
			ADR:          toSample(resp.Revenue.ADR),
			RevPAR:       toSample(resp.Revenue.RevPAR),
			TotalRevenue: toSample(resp.Revenue.TotalRevenue),
		},
		Guests: domain.GuestMetrics{
			Satisfaction:  toSample(resp.Guests.Satisfaction),
			ReturningRate: toSample(resp.Guests.ReturningRate),
			TotalGuests:   toSample(resp.Guests.TotalGuests),
		},
		Bookings: domain.BookingMetrics{
			CancellationRate: toSample(resp.Bookings.CancellationRate),
			TotalBookings:    toSample(resp.Bookings.TotalBookings),
			AverageStay:      toSample(resp.Bookings.AverageStay),
		},
	}, nil
}

func (s *PMSService) ListProperties() ([]*domain.Property, error) {
	resp, err := s.Client.ListProperties()
	if err != nil {
		logrus.WithError(err).Error("pms: falha ao listar imóveis da plataforma")
		return nil, err
	}

	properties := make([]*domain.Property, 0, len(resp))
	for _, p := range resp {
		property := &domain.Property{
			ExternalID: p.ID,
			Name:       p.Name,
			Status:     toStatus(p.Status),
		}

		if p.Name != "" {
			name := p.Name
			property.Nickname = &name
		}
		if p.City != "" {
			city := p.City
			property.City = &city
		}

		properties = append(properties, property)
	}

	logrus.WithField("total_properties", len(properties)).Info("pms: imóveis listados com sucesso")

	return properties, nil
}

func toSample(m pmsdomain.Metric) domain.MetricSample {
	return domain.MetricSample{
		Value:      m.Value,
		Change:     m.Change,
		Trend:      toTrend(m.Trend),
		ObservedAt: m.MeasuredAt,
	}
}

func toTrend(raw string) domain.Trend {
	switch domain.Trend(raw) {
	case domain.TrendUp, domain.TrendDown, domain.TrendStable:
		return domain.Trend(raw)
	default:
		return domain.TrendStable
	}
}

func toStatus(raw string) domain.PropertyStatus {
	if raw == "inactive" || raw == "INACTIVE" {
		return domain.PropertyStatusInactive
	}
	return domain.PropertyStatusActive
}
