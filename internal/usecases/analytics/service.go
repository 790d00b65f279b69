package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reporting"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reviews"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/alerting"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/performance"
)

// Service implementa Analyzer combinando o Stayza Core, a plataforma de
// avaliações, o cache diário de snapshots e os motores de alertas e metas
type Service struct {
	cfg                     *config.Config
	pmsService              pms.PMSIntegrator
	reviewsService          reviews.ReviewsIntegrator
	reportingService        reporting.ReportingIntegrator
	propertyRepository      repository.PropertyRepository
	snapshotRepository      repository.SnapshotRepository
	monthlyReportRepository repository.MonthlyReportRepository
	alertDeriver            alerting.AlertDeriver
	goalDeriver             performance.GoalDeriver
	useCache                bool

	// Guarda contra atualização obsoleta: cada busca recebe um número de
	// sequência por imóvel e só o resultado mais novo é aplicado ao cache.
	// Vence a última busca INICIADA, não a última concluída.
	seqMu      sync.Mutex
	fetchSeq   map[string]uint64
	appliedSeq map[string]uint64
}

// NewService cria o serviço de analytics sem cache habilitado
func NewService(
	cfg *config.Config,
	pmsService pms.PMSIntegrator,
	reviewsService reviews.ReviewsIntegrator,
	reportingService reporting.ReportingIntegrator,
	propertyRepo repository.PropertyRepository,
	alertDeriver alerting.AlertDeriver,
	goalDeriver performance.GoalDeriver,
) *Service {
	return &Service{
		cfg:                cfg,
		pmsService:         pmsService,
		reviewsService:     reviewsService,
		reportingService:   reportingService,
		propertyRepository: propertyRepo,
		alertDeriver:       alertDeriver,
		goalDeriver:        goalDeriver,
		useCache:           false,
		fetchSeq:           make(map[string]uint64),
		appliedSeq:         make(map[string]uint64),
	}
}

// WithCache habilita o cache diário de snapshots e os consolidados mensais
func (s *Service) WithCache(
	snapshotRepo repository.SnapshotRepository,
	monthlyReportRepo repository.MonthlyReportRepository,
) *Service {
	s.snapshotRepository = snapshotRepo
	s.monthlyReportRepository = monthlyReportRepo
	s.useCache = s.snapshotRepository != nil
	return s
}

func (s *Service) GetPropertySnapshot(propertyID string, timeRange domain.TimeRange) (*domain.AnalyticsSnapshot, error) {
	if !timeRange.IsValid() {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim em ordem")
	}

	property, err := s.propertyRepository.GetPropertyByID(propertyID)
	if err != nil {
		logrus.WithError(err).WithField("property_id", propertyID).Error("analytics: erro ao buscar imóvel")
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("imóvel não encontrado: %s", propertyID)
	}

	seq := s.nextFetchSeq(propertyID)

	var snapshot *domain.AnalyticsSnapshot
	if s.useCache {
		snapshot, err = s.getSnapshotWithCache(property, timeRange, seq)
	} else {
		snapshot, err = s.fetchSnapshot(property, timeRange)
	}
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// nextFetchSeq atribui o número de sequência da próxima busca do imóvel
func (s *Service) nextFetchSeq(propertyID string) uint64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	s.fetchSeq[propertyID]++
	return s.fetchSeq[propertyID]
}

// tryApply marca a busca como aplicada se ela ainda for a mais recente.
// Retorna false quando uma busca mais nova já foi aplicada: o resultado
// obsoleto ainda é devolvido ao chamador, mas não toca o cache.
func (s *Service) tryApply(propertyID string, seq uint64) bool {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	if seq <= s.appliedSeq[propertyID] {
		return false
	}
	s.appliedSeq[propertyID] = seq
	return true
}

// fetchSnapshot busca as métricas do período inteiro direto das APIs.
// Stayza Core e plataforma de avaliações são consultados em paralelo e o
// snapshot só é montado quando ambos respondem: não há montagem parcial.
func (s *Service) fetchSnapshot(property *domain.Property, timeRange domain.TimeRange) (*domain.AnalyticsSnapshot, error) {
	var (
		pmsMetrics    *pms.Metrics
		reviewMetrics *domain.ReviewMetrics
		pmsErr        error
		reviewsErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		pmsMetrics, pmsErr = s.pmsService.GetPropertyMetrics(property, timeRange)
	}()

	go func() {
		defer wg.Done()
		reviewMetrics, reviewsErr = s.reviewsService.GetReviewMetrics(property, timeRange)
	}()

	wg.Wait()

	if pmsErr != nil {
		return nil, fmt.Errorf("erro ao buscar métricas operacionais: %w", pmsErr)
	}
	if reviewsErr != nil {
		return nil, fmt.Errorf("erro ao buscar métricas de avaliações: %w", reviewsErr)
	}

	return &domain.AnalyticsSnapshot{
		PropertyID: property.ID,
		TimeRange:  timeRange,
		Occupancy:  pmsMetrics.Occupancy,
		Revenue:    pmsMetrics.Revenue,
		Guests:     pmsMetrics.Guests,
		Reviews:    *reviewMetrics,
		Bookings:   pmsMetrics.Bookings,
	}, nil
}

// getSnapshotWithCache serve o período a partir do cache diário, buscando das
// APIs apenas os dias faltantes, e combina os snapshots diários em um único
func (s *Service) getSnapshotWithCache(property *domain.Property, timeRange domain.TimeRange, seq uint64) (*domain.AnalyticsSnapshot, error) {
	allDates := generateDateRange(timeRange.Start, timeRange.End)
	if len(allDates) == 0 {
		return nil, fmt.Errorf("período de datas inválido")
	}

	existingDates := make(map[string]bool)
	entries := make([]*domain.SnapshotEntry, 0, len(allDates))

	// 1. Buscar os snapshots já cacheados para o período completo
	cached, err := s.snapshotRepository.GetByDateRange(property.ID, timeRange.Start, timeRange.End)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"property_id": property.ID,
			"start_date":  timeRange.Start.Format(time.DateOnly),
			"end_date":    timeRange.End.Format(time.DateOnly),
		}).Warn("analytics: erro ao buscar snapshots do cache para o período")
	} else {
		for _, entry := range cached {
			entries = append(entries, entry)
			existingDates[entry.Date.Format(time.DateOnly)] = true
		}
	}

	// 2. Determinar quais datas estão faltando
	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	// 3. Buscar os dias faltantes das APIs em paralelo
	if len(missingDates) > 0 {
		logrus.WithFields(logrus.Fields{
			"property_id":   property.ID,
			"missing_dates": len(missingDates),
			"total_dates":   len(allDates),
			"first_missing": missingDates[0].Format(time.DateOnly),
			"last_missing":  missingDates[len(missingDates)-1].Format(time.DateOnly),
		}).Info("analytics: buscando snapshots das APIs para datas faltantes")

		const maxConcurrent = 5
		semaphore := make(chan struct{}, maxConcurrent)

		var fetchWg sync.WaitGroup
		var mutex sync.Mutex

		applied := s.tryApply(property.ID, seq)
		if !applied {
			logrus.WithFields(logrus.Fields{
				"property_id": property.ID,
				"fetch_seq":   seq,
			}).Info("analytics: busca superada por outra mais recente, cache não será atualizado")
		}

		for _, date := range missingDates {
			fetchWg.Add(1)

			go func(date time.Time) {
				defer fetchWg.Done()

				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				dayRange := domain.TimeRange{Start: date, End: date}

				daySnapshot, err := s.fetchSnapshot(property, dayRange)
				if err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"property_id": property.ID,
						"date":        date.Format(time.DateOnly),
					}).Warn("analytics: erro ao buscar snapshot do dia, data será ignorada")
					return
				}

				entry := &domain.SnapshotEntry{
					PropertyID: property.ID,
					Date:       date,
					Snapshot:   daySnapshot,
				}

				// O dia corrente ainda está em andamento e não vai para o cache
				if applied && date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
					if err := s.snapshotRepository.SaveOrUpdate(entry); err != nil {
						logrus.WithError(err).WithFields(logrus.Fields{
							"property_id": property.ID,
							"date":        date.Format(time.DateOnly),
						}).Warn("analytics: erro ao salvar snapshot no cache")
					}
				}

				mutex.Lock()
				entries = append(entries, entry)
				mutex.Unlock()
			}(date)
		}

		fetchWg.Wait()
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("nenhuma métrica disponível para o período")
	}

	return combineDailySnapshots(property.ID, timeRange, entries), nil
}

// combineDailySnapshots agrega os snapshots diários em um único snapshot do
// período: taxas e médias são combinadas por média simples, totais são somados
// e tendência/variação vêm do dia mais recente
func combineDailySnapshots(propertyID string, timeRange domain.TimeRange, entries []*domain.SnapshotEntry) *domain.AnalyticsSnapshot {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	latest := entries[len(entries)-1].Snapshot

	combined := &domain.AnalyticsSnapshot{
		PropertyID: propertyID,
		TimeRange:  timeRange,
	}

	combined.Occupancy.OccupancyRate = averageSamples(entries, latest.Occupancy.OccupancyRate, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Occupancy.OccupancyRate })
	combined.Revenue.ADR = averageSamples(entries, latest.Revenue.ADR, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.ADR })
	combined.Revenue.RevPAR = averageSamples(entries, latest.Revenue.RevPAR, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.RevPAR })
	combined.Revenue.TotalRevenue = sumSamples(entries, latest.Revenue.TotalRevenue, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Revenue.TotalRevenue })
	combined.Guests.Satisfaction = averageSamples(entries, latest.Guests.Satisfaction, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.Satisfaction })
	combined.Guests.ReturningRate = averageSamples(entries, latest.Guests.ReturningRate, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.ReturningRate })
	combined.Guests.TotalGuests = sumSamples(entries, latest.Guests.TotalGuests, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Guests.TotalGuests })
	combined.Reviews.AverageRating = averageSamples(entries, latest.Reviews.AverageRating, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.AverageRating })
	combined.Reviews.ResponseRate = averageSamples(entries, latest.Reviews.ResponseRate, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.ResponseRate })
	combined.Reviews.TotalReviews = sumSamples(entries, latest.Reviews.TotalReviews, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Reviews.TotalReviews })
	combined.Bookings.CancellationRate = averageSamples(entries, latest.Bookings.CancellationRate, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Bookings.CancellationRate })
	combined.Bookings.TotalBookings = sumSamples(entries, latest.Bookings.TotalBookings, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Bookings.TotalBookings })
	combined.Bookings.AverageStay = averageSamples(entries, latest.Bookings.AverageStay, func(s *domain.AnalyticsSnapshot) domain.MetricSample { return s.Bookings.AverageStay })

	return combined
}

func averageSamples(entries []*domain.SnapshotEntry, latest domain.MetricSample, pick func(*domain.AnalyticsSnapshot) domain.MetricSample) domain.MetricSample {
	total := 0.0
	count := 0

	for _, entry := range entries {
		if entry.Snapshot == nil {
			continue
		}
		total += pick(entry.Snapshot).Value
		count++
	}

	combined := latest
	if count > 0 {
		combined.Value = total / float64(count)
	}
	return combined
}

func sumSamples(entries []*domain.SnapshotEntry, latest domain.MetricSample, pick func(*domain.AnalyticsSnapshot) domain.MetricSample) domain.MetricSample {
	total := 0.0

	for _, entry := range entries {
		if entry.Snapshot == nil {
			continue
		}
		total += pick(entry.Snapshot).Value
	}

	combined := latest
	combined.Value = total
	return combined
}

// generateDateRange gera um slice de datas entre startDate e endDate (inclusive)
func generateDateRange(startDate, endDate time.Time) []time.Time {
	if startDate.After(endDate) {
		return []time.Time{}
	}

	var dates []time.Time

	// Normalizando as datas para meia-noite
	currentDate := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	endDateTime := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	for !currentDate.After(endDateTime) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return dates
}

func (s *Service) GetAlerts(propertyID string, timeRange domain.TimeRange, filter domain.AlertFilter) (*domain.AlertsResponse, error) {
	snapshot, err := s.GetPropertySnapshot(propertyID, timeRange)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Validate(); err != nil {
		logrus.WithError(err).WithField("property_id", propertyID).Error("analytics: snapshot inválido para derivação de alertas")
		return nil, err
	}

	allAlerts := s.alertDeriver.DeriveAlerts(snapshot)
	filtered := s.alertDeriver.FilterAlerts(allAlerts, filter)

	// O resumo conta os não lidos de todas as severidades, ignorando o filtro
	summary := s.alertDeriver.CountUnreadBySeverity(allAlerts)

	return &domain.AlertsResponse{
		PropertyID: propertyID,
		Alerts:     filtered,
		Summary:    summary,
		Filters:    filter,
	}, nil
}

func (s *Service) GetGoals(propertyID string, timeRange domain.TimeRange, category domain.AlertCategory) (*domain.GoalsResponse, error) {
	snapshot, err := s.GetPropertySnapshot(propertyID, timeRange)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Validate(); err != nil {
		logrus.WithError(err).WithField("property_id", propertyID).Error("analytics: snapshot inválido para derivação de metas")
		return nil, err
	}

	goals := s.goalDeriver.DeriveGoals(snapshot)
	summary := s.goalDeriver.Summarize(goals, category)

	if category != "" && category != domain.GoalCategoryAll {
		filtered := make([]domain.PerformanceGoal, 0, len(goals))
		for _, goal := range goals {
			if goal.Category == category {
				filtered = append(filtered, goal)
			}
		}
		goals = filtered
	}

	return &domain.GoalsResponse{
		PropertyID: propertyID,
		Goals:      goals,
		Summary:    summary,
	}, nil
}

// ExportAnalytics valida o pedido e despacha a exportação em segundo plano.
// Falhas no despacho são registradas em log e nunca retornam ao chamador.
func (s *Service) ExportAnalytics(request *domain.ExportRequest) error {
	if request.Format != domain.ExportFormatPDF {
		return fmt.Errorf("formato de exportação não suportado: %s", request.Format)
	}
	if !request.TimeRange.IsValid() {
		return fmt.Errorf("é necessário informar as datas de início e fim em ordem")
	}

	property, err := s.propertyRepository.GetPropertyByID(request.PropertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return fmt.Errorf("imóvel não encontrado: %s", request.PropertyID)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := s.reportingService.DispatchExport(ctx, request); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"property_id": request.PropertyID,
				"format":      request.Format,
			}).Error("analytics: falha ao despachar exportação de relatório")
		}
	}()

	return nil
}

func (s *Service) GetMonthlyReports(period string) ([]*domain.MonthlyPerformanceReport, error) {
	if s.monthlyReportRepository == nil {
		return nil, fmt.Errorf("repositório de consolidados mensais não está disponível")
	}

	reports, err := s.monthlyReportRepository.GetByPeriod(period)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("analytics: erro ao buscar consolidados mensais")
		return nil, err
	}

	// O resumo de metas não é persistido; é recalculado a partir das metas
	for _, report := range reports {
		if report.GoalSummary == nil && len(report.Goals) > 0 {
			summary := s.goalDeriver.Summarize(report.Goals, domain.GoalCategoryAll)
			report.GoalSummary = &summary
		}
	}

	return reports, nil
}

func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	if s.monthlyReportRepository == nil {
		return nil, fmt.Errorf("repositório de consolidados mensais não está disponível")
	}

	periods, err := s.monthlyReportRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos disponíveis: %w", err)
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range periods {
		// Extrair ano e mês do período (formato mm-yyyy)
		if len(period) == 7 {
			monthMap[period[:2]] = true
			yearMap[period[3:]] = true
		}
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
