package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/analytics"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots diários
type SnapshotSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// SnapshotSyncService gerencia o agendamento e execução da sincronização do
// cache diário de snapshots de analytics
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	propertyRepo        repository.PropertyRepository
	snapshotRepo        repository.SnapshotRepository
	analyticsService    analytics.SnapshotProvider
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	propertyRepo repository.PropertyRepository,
	snapshotRepo repository.SnapshotRepository,
	analyticsService analytics.SnapshotProvider,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		LookbackDays:        appConfig.SnapshotSync.LookbackDays,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.SnapshotSync.RetentionDays,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		appConfig:        appConfig,
		propertyRepo:     propertyRepo,
		snapshotRepo:     snapshotRepo,
		analyticsService: analyticsService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots sincroniza o cache diário de todos os imóveis ativos
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de snapshots para todos os imóveis ativos")

	activeProperties, err := s.getActiveProperties()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de imóveis para sincronização de snapshots")
		return
	}

	if len(activeProperties) == 0 {
		logrus.Info("Nenhum imóvel ativo encontrado para sincronização de snapshots")
		return
	}

	dates := s.getDatesToProcess()
	if len(dates) == 0 {
		logrus.Warn("Janela de sincronização de snapshots vazia, nada a processar")
		return
	}
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de snapshots")

	s.processSnapshotsForDates(activeProperties, dates)

	// Aplicar a política de retenção depois de preencher o cache
	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao aplicar retenção de snapshots")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos pela política de retenção")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"properties": len(activeProperties),
		"days":       s.config.LookbackDays,
	}).Info("Sincronização de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveProperties busca e filtra imóveis ativos
func (s *SnapshotSyncService) getActiveProperties() ([]*domain.Property, error) {
	activeProperties, err := s.propertyRepo.ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeProperties) == 0 {
		logrus.Info("Nenhum imóvel encontrado para sincronização de snapshots")
		return []*domain.Property{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_properties": len(activeProperties),
	}).Info("Imóveis encontrados para sincronização de snapshots")

	return activeProperties, nil
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *SnapshotSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processSnapshotsForDates processa os snapshots de cada imóvel em todas as datas
func (s *SnapshotSyncService) processSnapshotsForDates(properties []*domain.Property, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, property := range properties {
		if property.ExternalID == "" {
			logrus.WithField("property_id", property.ID).Warn("Imóvel sem external_id. Pulando.")
			continue
		}

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
				"total_dates":   len(dates),
			}).Info("Processando snapshots para imóvel")

			s.processPropertyForAllDates(p, dates)
		}(property)
	}

	wg.Wait()
}

// processPropertyForAllDates processa os snapshots de um imóvel em todas as datas
func (s *SnapshotSyncService) processPropertyForAllDates(property *domain.Property, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processPropertySnapshot(property, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processPropertySnapshot sincroniza o snapshot de um imóvel em uma data específica
func (s *SnapshotSyncService) processPropertySnapshot(property *domain.Property, date time.Time) {
	// Pular datas que já estão no cache
	existing, err := s.snapshotRepo.GetByPropertyIDAndDate(property.ID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Warn("Erro ao consultar cache de snapshots")
	}
	if existing != nil {
		return
	}

	dayRange := domain.TimeRange{Start: date, End: date}

	snapshot, err := s.analyticsService.GetPropertySnapshot(property.ID, dayRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"external_id": property.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter snapshot para imóvel e data")
		return
	}

	if snapshot == nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"date":        date.Format(time.DateOnly),
		}).Warn("Nenhum snapshot obtido para imóvel e data")
		return
	}

	entry := &domain.SnapshotEntry{
		PropertyID: property.ID,
		Date:       date,
		Snapshot:   snapshot,
	}

	if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": property.ID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao salvar snapshot no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"property_id": property.ID,
		"date":        date.Format(time.DateOnly),
	}).Info("Snapshot salvo com sucesso para imóvel e data")
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
