package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms"
	pmsmocks "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/mocks"
	reportingmocks "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reporting/mocks"
	reviewsmocks "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reviews/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/alerting"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/performance"
)

var testRange = domain.TimeRange{
	Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
}

func testProperty() *domain.Property {
	nickname := "Casa da Praia"
	return &domain.Property{
		ID:         "prop_01",
		ExternalID: "stz_900",
		Name:       "Casa da Praia",
		Nickname:   &nickname,
		Status:     domain.PropertyStatusActive,
	}
}

func sample(value float64, observedAt time.Time) domain.MetricSample {
	return domain.MetricSample{Value: value, Trend: domain.TrendStable, ObservedAt: observedAt}
}

func testPMSMetrics(observedAt time.Time) *pms.Metrics {
	return &pms.Metrics{
		Occupancy: domain.OccupancyMetrics{
			OccupancyRate: sample(72, observedAt),
		},
		Revenue: domain.RevenueMetrics{
			ADR:          sample(310, observedAt),
			RevPAR:       sample(105, observedAt),
			TotalRevenue: sample(15200, observedAt),
		},
		Guests: domain.GuestMetrics{
			Satisfaction:  sample(4.6, observedAt),
			ReturningRate: sample(28, observedAt),
			TotalGuests:   sample(84, observedAt),
		},
		Bookings: domain.BookingMetrics{
			CancellationRate: sample(7, observedAt),
			TotalBookings:    sample(41, observedAt),
			AverageStay:      sample(3.4, observedAt),
		},
	}
}

func testReviewMetrics(observedAt time.Time) *domain.ReviewMetrics {
	return &domain.ReviewMetrics{
		AverageRating: sample(4.6, observedAt),
		ResponseRate:  sample(92, observedAt),
		TotalReviews:  sample(57, observedAt),
	}
}

func newTestService(t *testing.T) (*Service, *pmsmocks.MockPMSIntegrator, *reviewsmocks.MockReviewsIntegrator, *reportingmocks.MockReportingIntegrator, *mocks.MockPropertyRepository) {
	ctrl := gomock.NewController(t)

	mockPMS := pmsmocks.NewMockPMSIntegrator(ctrl)
	mockReviews := reviewsmocks.NewMockReviewsIntegrator(ctrl)
	mockReporting := reportingmocks.NewMockReportingIntegrator(ctrl)
	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)

	service := NewService(
		&config.Config{},
		mockPMS,
		mockReviews,
		mockReporting,
		mockPropertyRepo,
		alerting.NewService(),
		performance.NewService(),
	)

	return service, mockPMS, mockReviews, mockReporting, mockPropertyRepo
}

func TestGetPropertySnapshot_SemCache(t *testing.T) {
	service, mockPMS, mockReviews, _, mockPropertyRepo := newTestService(t)

	observedAt := testRange.End
	property := testProperty()

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockPMS.EXPECT().GetPropertyMetrics(property, testRange).Return(testPMSMetrics(observedAt), nil)
	mockReviews.EXPECT().GetReviewMetrics(property, testRange).Return(testReviewMetrics(observedAt), nil)

	snapshot, err := service.GetPropertySnapshot("prop_01", testRange)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, "prop_01", snapshot.PropertyID)
	assert.Equal(t, testRange, snapshot.TimeRange)
	assert.Equal(t, 72.0, snapshot.Occupancy.OccupancyRate.Value)
	assert.Equal(t, 4.6, snapshot.Reviews.AverageRating.Value)
	assert.NoError(t, snapshot.Validate())
}

func TestGetPropertySnapshot_FalhaEmUmaFonteNaoEntregaParcial(t *testing.T) {
	service, mockPMS, mockReviews, _, mockPropertyRepo := newTestService(t)

	property := testProperty()

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockPMS.EXPECT().GetPropertyMetrics(property, testRange).Return(testPMSMetrics(testRange.End), nil)
	mockReviews.EXPECT().GetReviewMetrics(property, testRange).Return(nil, errors.New("timeout"))

	snapshot, err := service.GetPropertySnapshot("prop_01", testRange)
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestGetPropertySnapshot_ImovelInexistente(t *testing.T) {
	service, _, _, _, mockPropertyRepo := newTestService(t)

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_zz").Return(nil, nil)

	snapshot, err := service.GetPropertySnapshot("prop_zz", testRange)
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestGetPropertySnapshot_PeriodoInvalido(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	invalid := domain.TimeRange{Start: testRange.End, End: testRange.Start}

	snapshot, err := service.GetPropertySnapshot("prop_01", invalid)
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestGetAlerts_ResumoIgnoraFiltro(t *testing.T) {
	service, mockPMS, mockReviews, _, mockPropertyRepo := newTestService(t)

	observedAt := testRange.End
	property := testProperty()

	// Ocupação crítica e RevPAR crítico, avaliação excelente (info pré-lida)
	metrics := testPMSMetrics(observedAt)
	metrics.Occupancy.OccupancyRate.Value = 45
	metrics.Revenue.RevPAR.Value = 80

	reviewMetrics := testReviewMetrics(observedAt)
	reviewMetrics.AverageRating.Value = 4.8

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockPMS.EXPECT().GetPropertyMetrics(property, testRange).Return(metrics, nil)
	mockReviews.EXPECT().GetReviewMetrics(property, testRange).Return(reviewMetrics, nil)

	response, err := service.GetAlerts("prop_01", testRange, domain.AlertFilter{Severity: domain.SeverityCritical})
	require.NoError(t, err)

	// Só os críticos passam pelo filtro
	assert.Len(t, response.Alerts, 2)
	for _, alert := range response.Alerts {
		assert.Equal(t, domain.SeverityCritical, alert.Severity)
	}

	// O resumo conta os não lidos de todas as severidades
	assert.Equal(t, 2, response.Summary.Critical)
	assert.Equal(t, 0, response.Summary.Warning)
	assert.Equal(t, 0, response.Summary.Info)
}

func TestGetGoals_FiltroPorCategoria(t *testing.T) {
	service, mockPMS, mockReviews, _, mockPropertyRepo := newTestService(t)

	observedAt := testRange.End
	property := testProperty()

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockPMS.EXPECT().GetPropertyMetrics(property, testRange).Return(testPMSMetrics(observedAt), nil)
	mockReviews.EXPECT().GetReviewMetrics(property, testRange).Return(testReviewMetrics(observedAt), nil)

	response, err := service.GetGoals("prop_01", testRange, domain.AlertCategoryRevenue)
	require.NoError(t, err)

	assert.Len(t, response.Goals, 2) // ADR e RevPAR
	for _, goal := range response.Goals {
		assert.Equal(t, domain.AlertCategoryRevenue, goal.Category)
	}
	assert.Equal(t, 2, response.Summary.Total)
}

func TestGetSnapshotComCache_CombinaDiasCacheados(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPMS := pmsmocks.NewMockPMSIntegrator(ctrl)
	mockReviews := reviewsmocks.NewMockReviewsIntegrator(ctrl)
	mockReporting := reportingmocks.NewMockReportingIntegrator(ctrl)
	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockMonthlyRepo := mocks.NewMockMonthlyReportRepository(ctrl)

	service := NewService(
		&config.Config{},
		mockPMS,
		mockReviews,
		mockReporting,
		mockPropertyRepo,
		alerting.NewService(),
		performance.NewService(),
	).WithCache(mockSnapshotRepo, mockMonthlyRepo)

	property := testProperty()
	twoDays := domain.TimeRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	day1 := testPMSMetrics(twoDays.Start)
	day1.Occupancy.OccupancyRate.Value = 60
	day1.Revenue.TotalRevenue.Value = 1000

	day2 := testPMSMetrics(twoDays.End)
	day2.Occupancy.OccupancyRate.Value = 80
	day2.Revenue.TotalRevenue.Value = 1400

	entries := []*domain.SnapshotEntry{
		{
			PropertyID: property.ID,
			Date:       twoDays.Start,
			Snapshot: &domain.AnalyticsSnapshot{
				PropertyID: property.ID,
				TimeRange:  domain.TimeRange{Start: twoDays.Start, End: twoDays.Start},
				Occupancy:  day1.Occupancy,
				Revenue:    day1.Revenue,
				Guests:     day1.Guests,
				Reviews:    *testReviewMetrics(twoDays.Start),
				Bookings:   day1.Bookings,
			},
		},
		{
			PropertyID: property.ID,
			Date:       twoDays.End,
			Snapshot: &domain.AnalyticsSnapshot{
				PropertyID: property.ID,
				TimeRange:  domain.TimeRange{Start: twoDays.End, End: twoDays.End},
				Occupancy:  day2.Occupancy,
				Revenue:    day2.Revenue,
				Guests:     day2.Guests,
				Reviews:    *testReviewMetrics(twoDays.End),
				Bookings:   day2.Bookings,
			},
		},
	}

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockSnapshotRepo.EXPECT().GetByDateRange("prop_01", twoDays.Start, twoDays.End).Return(entries, nil)
	// Nenhuma chamada aos integradores: o cache cobre o período inteiro

	snapshot, err := service.GetPropertySnapshot("prop_01", twoDays)
	require.NoError(t, err)

	// Taxas por média simples, totais somados
	assert.Equal(t, 70.0, snapshot.Occupancy.OccupancyRate.Value)
	assert.Equal(t, 2400.0, snapshot.Revenue.TotalRevenue.Value)
	assert.Equal(t, twoDays, snapshot.TimeRange)
}

func TestExportAnalytics_FormatoNaoSuportado(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	err := service.ExportAnalytics(&domain.ExportRequest{
		PropertyID: "prop_01",
		TimeRange:  testRange,
		Format:     "xlsx",
	})
	assert.Error(t, err)
}

func TestExportAnalytics_DespachaEmSegundoPlano(t *testing.T) {
	service, _, _, mockReporting, mockPropertyRepo := newTestService(t)

	property := testProperty()
	request := &domain.ExportRequest{
		PropertyID: "prop_01",
		TimeRange:  testRange,
		Format:     domain.ExportFormatPDF,
		Sections:   []string{"occupancy", "revenue"},
	}

	dispatched := make(chan struct{})

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockReporting.EXPECT().
		DispatchExport(gomock.Any(), request).
		DoAndReturn(func(_ any, _ *domain.ExportRequest) error {
			close(dispatched)
			return nil
		})

	err := service.ExportAnalytics(request)
	require.NoError(t, err)

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("exportação não foi despachada em segundo plano")
	}
}

func TestExportAnalytics_FalhaNoDespachoNaoRetornaErro(t *testing.T) {
	service, _, _, mockReporting, mockPropertyRepo := newTestService(t)

	property := testProperty()
	request := &domain.ExportRequest{
		PropertyID: "prop_01",
		TimeRange:  testRange,
		Format:     domain.ExportFormatPDF,
	}

	dispatched := make(chan struct{})

	mockPropertyRepo.EXPECT().GetPropertyByID("prop_01").Return(property, nil)
	mockReporting.EXPECT().
		DispatchExport(gomock.Any(), request).
		DoAndReturn(func(_ any, _ *domain.ExportRequest) error {
			close(dispatched)
			return errors.New("serviço indisponível")
		})

	err := service.ExportAnalytics(request)
	assert.NoError(t, err)

	<-dispatched
}

func TestTryApply_BuscaObsoletaNaoAtualizaCache(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	seq1 := service.nextFetchSeq("prop_01")
	seq2 := service.nextFetchSeq("prop_01")

	// A busca mais nova termina primeiro e é aplicada
	assert.True(t, service.tryApply("prop_01", seq2))

	// A busca antiga termina depois e é descartada
	assert.False(t, service.tryApply("prop_01", seq1))

	// Imóveis diferentes têm sequências independentes
	other := service.nextFetchSeq("prop_02")
	assert.True(t, service.tryApply("prop_02", other))
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockMonthlyRepo := mocks.NewMockMonthlyReportRepository(ctrl)
	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)

	service := NewService(
		&config.Config{},
		pmsmocks.NewMockPMSIntegrator(ctrl),
		reviewsmocks.NewMockReviewsIntegrator(ctrl),
		reportingmocks.NewMockReportingIntegrator(ctrl),
		mockPropertyRepo,
		alerting.NewService(),
		performance.NewService(),
	).WithCache(mockSnapshotRepo, mockMonthlyRepo)

	mockMonthlyRepo.EXPECT().GetAllPeriods().Return([]string{"02-2024", "01-2024", "12-2023"}, nil)

	periods, err := service.GetAvailablePeriods()
	require.NoError(t, err)

	assert.Equal(t, []string{"02-2024", "01-2024", "12-2023"}, periods.Periods)
	assert.Equal(t, []string{"2023", "2024"}, periods.Years)
	assert.Equal(t, []string{"01", "02", "12"}, periods.Months)
}
