package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	analyticsmocks "github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/analytics/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/performance"
)

func snapshotSyncConfig() *config.Config {
	return &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule:        "0 3 * * *",
			LookbackDays:        2,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   1,
			RetentionDays:       400,
			Enabled:             true,
		},
	}
}

func activeProperty() *domain.Property {
	return &domain.Property{
		ID:         "prop_01",
		ExternalID: "stz_900",
		Name:       "Casa da Praia",
		Status:     domain.PropertyStatusActive,
	}
}

func TestSnapshotSync_PreencheDiasAusentes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	service := NewSnapshotSyncService(mockPropertyRepo, mockSnapshotRepo, mockProvider, snapshotSyncConfig())

	snapshot := &domain.AnalyticsSnapshot{PropertyID: "prop_01"}

	mockPropertyRepo.EXPECT().
		ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive}).
		Return([]*domain.Property{activeProperty()}, nil)

	// Dois dias de lookback: o primeiro já está no cache, o segundo precisa ser buscado
	gomock.InOrder(
		mockSnapshotRepo.EXPECT().
			GetByPropertyIDAndDate("prop_01", gomock.Any()).
			Return(&domain.SnapshotEntry{ID: 1, PropertyID: "prop_01"}, nil),
		mockSnapshotRepo.EXPECT().
			GetByPropertyIDAndDate("prop_01", gomock.Any()).
			Return(nil, nil),
	)

	mockProvider.EXPECT().
		GetPropertySnapshot("prop_01", gomock.Any()).
		Return(snapshot, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.SnapshotEntry) error {
			assert.Equal(t, "prop_01", entry.PropertyID)
			assert.Same(t, snapshot, entry.Snapshot)
			return nil
		})

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(400).
		Return(int64(0), nil)

	service.syncAllSnapshots()
}

func TestSnapshotSync_FalhaNaBuscaNaoInterrompeOutrasDatas(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	service := NewSnapshotSyncService(mockPropertyRepo, mockSnapshotRepo, mockProvider, snapshotSyncConfig())

	mockPropertyRepo.EXPECT().
		ListProperties(gomock.Any()).
		Return([]*domain.Property{activeProperty()}, nil)

	mockSnapshotRepo.EXPECT().
		GetByPropertyIDAndDate("prop_01", gomock.Any()).
		Return(nil, nil).
		Times(2)

	// A primeira data falha na plataforma, a segunda é salva normalmente
	gomock.InOrder(
		mockProvider.EXPECT().
			GetPropertySnapshot("prop_01", gomock.Any()).
			Return(nil, errors.New("timeout")),
		mockProvider.EXPECT().
			GetPropertySnapshot("prop_01", gomock.Any()).
			Return(&domain.AnalyticsSnapshot{PropertyID: "prop_01"}, nil),
	)

	mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	mockSnapshotRepo.EXPECT().DeleteOlderThan(400).Return(int64(3), nil)

	service.syncAllSnapshots()
}

func TestSnapshotSync_ImovelSemExternalIDEhIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	service := NewSnapshotSyncService(mockPropertyRepo, mockSnapshotRepo, mockProvider, snapshotSyncConfig())

	mockPropertyRepo.EXPECT().
		ListProperties(gomock.Any()).
		Return([]*domain.Property{
			{ID: "prop_03", Name: "Sem Integração", Status: domain.PropertyStatusActive},
		}, nil)

	// Nenhuma chamada ao provider nem ao cache deve acontecer
	mockSnapshotRepo.EXPECT().DeleteOlderThan(400).Return(int64(0), nil)

	service.syncAllSnapshots()
}

func TestSnapshotSync_GetDatesToProcess(t *testing.T) {
	service := NewSnapshotSyncService(nil, nil, nil, snapshotSyncConfig())

	dates := service.getDatesToProcess()
	require.Len(t, dates, 2)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), dates[0].Format(time.DateOnly))
	assert.True(t, dates[1].Before(dates[0]))
}

func TestSnapshotSync_GetStatus(t *testing.T) {
	service := NewSnapshotSyncService(nil, nil, nil, snapshotSyncConfig())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_lookback_days"])
	assert.Equal(t, 400, status["retention_days"])
}

func monthlyReportSyncConfig() *config.Config {
	return &config.Config{
		MonthlyReportSync: config.MonthlyReportSync{
			CronSchedule:        "0 5 1 * *",
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   1,
			Enabled:             true,
			MonthLookBack:       1,
		},
	}
}

func TestMonthlyReportSync_ConsolidaMesAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockReportRepo := mocks.NewMockMonthlyReportRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	service := NewMonthlyReportSyncService(
		mockPropertyRepo,
		mockReportRepo,
		mockProvider,
		performance.NewService(),
		monthlyReportSyncConfig(),
	)

	mockPropertyRepo.EXPECT().
		ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive}).
		Return([]*domain.Property{activeProperty()}, nil)

	lastMonth := time.Now().AddDate(0, -1, 0)
	expectedPeriod := repository.FormatPeriod(lastMonth)

	mockProvider.EXPECT().
		GetPropertySnapshot("prop_01", gomock.Any()).
		DoAndReturn(func(propertyID string, timeRange domain.TimeRange) (*domain.AnalyticsSnapshot, error) {
			assert.Equal(t, 1, timeRange.Start.Day())
			assert.Equal(t, lastMonth.Month(), timeRange.Start.Month())
			return &domain.AnalyticsSnapshot{PropertyID: propertyID}, nil
		})

	mockReportRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(report *domain.MonthlyPerformanceReport) error {
			assert.Equal(t, "prop_01", report.PropertyID)
			assert.Equal(t, expectedPeriod, report.Period)
			assert.NotEmpty(t, report.Goals)
			require.NotNil(t, report.GoalSummary)
			assert.Equal(t, len(report.Goals), report.GoalSummary.Total)
			return nil
		})

	service.syncMonthlyReports()
}

func TestMonthlyReportSync_FalhaNoSnapshotNaoSalvaRelatorio(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockReportRepo := mocks.NewMockMonthlyReportRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	service := NewMonthlyReportSyncService(
		mockPropertyRepo,
		mockReportRepo,
		mockProvider,
		performance.NewService(),
		monthlyReportSyncConfig(),
	)

	mockPropertyRepo.EXPECT().
		ListProperties(gomock.Any()).
		Return([]*domain.Property{activeProperty()}, nil)

	mockProvider.EXPECT().
		GetPropertySnapshot("prop_01", gomock.Any()).
		Return(nil, errors.New("timeout"))

	service.syncMonthlyReports()
}

// Meses já fechados e consolidados não devem ser reprocessados; apenas o mês
// mais recente é sempre reconsolidado.
func TestMonthlyReportSync_MesFechadoJaConsolidadoEhIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockPropertyRepo := mocks.NewMockPropertyRepository(ctrl)
	mockReportRepo := mocks.NewMockMonthlyReportRepository(ctrl)
	mockProvider := analyticsmocks.NewMockSnapshotProvider(ctrl)

	cfg := monthlyReportSyncConfig()
	cfg.MonthlyReportSync.MonthLookBack = 2

	service := NewMonthlyReportSyncService(
		mockPropertyRepo,
		mockReportRepo,
		mockProvider,
		performance.NewService(),
		cfg,
	)

	mockPropertyRepo.EXPECT().
		ListProperties(gomock.Any()).
		Return([]*domain.Property{activeProperty()}, nil)

	// O mês mais recente é reconsolidado sem consulta prévia
	mockProvider.EXPECT().
		GetPropertySnapshot("prop_01", gomock.Any()).
		Return(&domain.AnalyticsSnapshot{PropertyID: "prop_01"}, nil).
		Times(1)

	mockReportRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(1)

	// O mês anterior a ele já tem consolidado e deve ser ignorado
	twoMonthsAgo := time.Now().AddDate(0, -2, 0)
	mockReportRepo.EXPECT().
		GetByPropertyIDAndPeriod("prop_01", gomock.Any()).
		DoAndReturn(func(propertyID string, date time.Time) (*domain.MonthlyPerformanceReport, error) {
			assert.Equal(t, twoMonthsAgo.Month(), date.Month())
			return &domain.MonthlyPerformanceReport{PropertyID: propertyID}, nil
		})

	service.syncMonthlyReports()
}
