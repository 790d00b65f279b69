package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/analytics"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/performance"
)

// MonthlyReportSyncConfig representa a configuração do agendador de relatórios mensais
type MonthlyReportSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	MonthLookBack       int
}

// MonthlyReportSyncService gerencia o agendamento e execução da consolidação
// mensal de relatórios de desempenho
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	appConfig           *config.Config
	propertyRepo        repository.PropertyRepository
	monthlyReportRepo   repository.MonthlyReportRepository
	analyticsService    analytics.SnapshotProvider
	goalDeriver         performance.GoalDeriver
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de consolidação mensal
func NewMonthlyReportSyncService(
	propertyRepo repository.PropertyRepository,
	monthlyReportRepo repository.MonthlyReportRepository,
	analyticsService analytics.SnapshotProvider,
	goalDeriver performance.GoalDeriver,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	reportConfig := MonthlyReportSyncConfig{
		CronSchedule:        appConfig.MonthlyReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyReportSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyReportSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MonthlyReportSync.Enabled,
		MonthLookBack:       appConfig.MonthlyReportSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         reportConfig.CronSchedule,
		"request_delay_seconds": reportConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   reportConfig.MaxConcurrentJobs,
		"sync_enabled":          reportConfig.SyncEnabled,
		"month_look_back":       reportConfig.MonthLookBack,
	}).Info("Configuração do agendador de relatórios mensais carregada")

	return &MonthlyReportSyncService{
		scheduler:         scheduler,
		config:            reportConfig,
		appConfig:         appConfig,
		propertyRepo:      propertyRepo,
		monthlyReportRepo: monthlyReportRepo,
		analyticsService:  analyticsService,
		goalDeriver:       goalDeriver,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação mensal de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação mensal de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação mensal de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports consolida os relatórios mensais de todos os imóveis ativos
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando consolidação mensal de relatórios para todos os imóveis ativos")

	activeProperties, err := s.getActiveProperties()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de imóveis para consolidação mensal")
		return
	}

	if len(activeProperties) == 0 {
		logrus.Info("Nenhum imóvel ativo encontrado para consolidação mensal")
		return
	}

	for i := 1; i <= s.config.MonthLookBack; i++ {
		now := time.Now()
		month := now.AddDate(0, -i, 0)
		firstDayOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
		lastDayOfMonth := time.Date(month.Year(), month.Month()+1, 1, 0, 0, 0, 0, month.Location()).AddDate(0, 0, -1)

		logrus.WithFields(logrus.Fields{
			"start_date": firstDayOfMonth.Format(time.DateOnly),
			"end_date":   lastDayOfMonth.Format(time.DateOnly),
		}).Info("Período para consolidação mensal de relatórios")

		// O mês mais recente sempre é reconsolidado (o cache de snapshots pode
		// ter sido preenchido depois); meses mais antigos já fechados não mudam
		refresh := i == 1
		s.processMonthlyReports(activeProperties, firstDayOfMonth, lastDayOfMonth, refresh)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"properties": len(activeProperties),
	}).Info("Consolidação mensal de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveProperties busca e filtra imóveis ativos
func (s *MonthlyReportSyncService) getActiveProperties() ([]*domain.Property, error) {
	activeProperties, err := s.propertyRepo.ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeProperties) == 0 {
		logrus.Info("Nenhum imóvel encontrado para consolidação mensal de relatórios")
		return []*domain.Property{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_properties": len(activeProperties),
	}).Info("Imóveis encontrados para consolidação mensal de relatórios")

	return activeProperties, nil
}

// processMonthlyReports consolida o relatório de cada imóvel para o período informado
func (s *MonthlyReportSyncService) processMonthlyReports(properties []*domain.Property, startDate, endDate time.Time, refresh bool) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, property := range properties {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(p *domain.Property) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"property_id":   p.ID,
				"external_id":   p.ExternalID,
				"property_name": p.Name,
				"start_date":    startDate.Format(time.DateOnly),
				"end_date":      endDate.Format(time.DateOnly),
			}).Info("Processando relatório mensal para imóvel")

			if err := s.processMonthlyReport(p, startDate, endDate, refresh); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"property_id": p.ID,
					"external_id": p.ExternalID,
					"start_date":  startDate.Format(time.DateOnly),
					"end_date":    endDate.Format(time.DateOnly),
				}).Error("Erro ao processar relatório mensal")
			}

			// Aguardar antes do próximo imóvel para evitar excesso de requisições
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(property)
	}

	wg.Wait()
}

// processMonthlyReport consolida o relatório mensal de um imóvel
func (s *MonthlyReportSyncService) processMonthlyReport(property *domain.Property, startDate, endDate time.Time, refresh bool) error {
	if property.ExternalID == "" {
		return fmt.Errorf("imóvel sem ID externo")
	}

	if !refresh {
		existing, err := s.monthlyReportRepo.GetByPropertyIDAndPeriod(property.ID, startDate)
		if err == nil && existing != nil {
			logrus.WithFields(logrus.Fields{
				"property_id": property.ID,
				"period":      repository.FormatPeriod(startDate),
			}).Debug("Relatório mensal já consolidado, ignorando")
			return nil
		}
	}

	monthRange := domain.TimeRange{Start: startDate, End: endDate}

	snapshot, err := s.analyticsService.GetPropertySnapshot(property.ID, monthRange)
	if err != nil {
		return fmt.Errorf("erro ao obter snapshot do período: %w", err)
	}

	if snapshot == nil {
		return fmt.Errorf("nenhum snapshot encontrado para o período")
	}

	goals := s.goalDeriver.DeriveGoals(snapshot)
	summary := s.goalDeriver.Summarize(goals, domain.GoalCategoryAll)

	period := repository.FormatPeriod(startDate)

	report := &domain.MonthlyPerformanceReport{
		PropertyID:  property.ID,
		ExternalID:  property.ExternalID,
		Period:      period,
		Snapshot:    snapshot,
		Goals:       goals,
		GoalSummary: &summary,
	}

	if err := s.monthlyReportRepo.SaveOrUpdate(report); err != nil {
		return fmt.Errorf("erro ao salvar relatório mensal: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"property_id": property.ID,
		"external_id": property.ExternalID,
		"period":      period,
	}).Info("Relatório mensal salvo com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação mensal de relatórios
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de relatórios mensais")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual da consolidação
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
