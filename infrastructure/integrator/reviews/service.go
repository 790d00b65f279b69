package reviews

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reviews/reviewsclient"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

type ReviewsIntegrator interface {
	GetReviewMetrics(property *domain.Property, timeRange domain.TimeRange) (*domain.ReviewMetrics, error)
}

type ReviewsService struct {
	cfg    *config.Config
	Client reviewsclient.Client
}

func New(cfg *config.Config, client reviewsclient.Client) ReviewsIntegrator {
	return &ReviewsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ReviewsService) GetReviewMetrics(property *domain.Property, timeRange domain.TimeRange) (*domain.ReviewMetrics, error) {
	params := reviewsclient.ReviewStatsParams{
		PropertyID: property.ExternalID,
		StartDate:  timeRange.Start.Format(time.DateOnly),
		EndDate:    timeRange.End.Format(time.DateOnly),
	}

	resp, err := s.Client.GetReviewStats(params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"external_id": property.ExternalID,
			"error":       err.Error(),
		}).Error("reviews: falha ao buscar métricas de avaliações")
		return nil, err
	}

	return &domain.ReviewMetrics{
		AverageRating: toSample(resp.AverageRating),
		ResponseRate:  toSample(resp.ResponseRate),
		TotalReviews:  toSample(resp.TotalReviews),
	}, nil
}

func toSample(stat reviewsclient.ReviewStat) domain.MetricSample {
	sample := domain.MetricSample{
		Value:      stat.Value,
		Change:     stat.Change,
		Trend:      domain.TrendStable,
		ObservedAt: stat.MeasuredAt,
	}

	switch domain.Trend(stat.Trend) {
	case domain.TrendUp, domain.TrendDown, domain.TrendStable:
		sample.Trend = domain.Trend(stat.Trend)
	}

	return sample
}
