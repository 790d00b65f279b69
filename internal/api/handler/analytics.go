package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/analytics"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/log"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/utils"
)

// resolveTimeRange monta o período a partir dos parâmetros da requisição.
// Aceita um preset (period=last_30_days) ou datas explícitas (start_date/end_date).
func resolveTimeRange(r *http.Request) (domain.TimeRange, error) {
	if preset := r.URL.Query().Get("period"); preset != "" {
		return domain.ResolvePreset(domain.TimeRangePreset(preset), time.Now())
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("start_date inválido: %w", err)
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("end_date inválido: %w", err)
	}

	timeRange := domain.TimeRange{Start: *startDate, End: *endDate}
	if !timeRange.IsValid() {
		return domain.TimeRange{}, fmt.Errorf("é necessário informar start_date e end_date em ordem, ou um period válido")
	}

	return timeRange, nil
}

func GetPropertyAnalytics(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("property_id", id).Info("analytics: fetching property snapshot by ID")

		timeRange, err := resolveTimeRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Warn("analytics: invalid time range parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"property_id": id,
			"start_date":  timeRange.Start.Format(time.DateOnly),
			"end_date":    timeRange.End.Format(time.DateOnly),
		}).Debug("analytics: fetching snapshot with time range")

		snapshot, err := service.GetPropertySnapshot(id, timeRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"start_date":  timeRange.Start.Format(time.DateOnly),
				"end_date":    timeRange.End.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("analytics: failed to get snapshot for property")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("property_id", id).Info("analytics: successfully retrieved property snapshot")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Error("analytics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetPropertyAlerts(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("property_id", id).Info("alerts: fetching property alerts by ID")

		timeRange, err := resolveTimeRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Warn("alerts: invalid time range parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		filter := domain.AlertFilter{
			Severity:    domain.SeverityAll,
			IncludeRead: r.URL.Query().Get("include_read") == "true",
		}
		if severity := r.URL.Query().Get("severity"); severity != "" {
			filter.Severity = domain.Severity(severity)
		}

		response, err := service.GetAlerts(id, timeRange, filter)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"severity":    string(filter.Severity),
				"error":       err.Error(),
			}).Error("alerts: failed to get alerts for property")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"property_id":  id,
			"total_alerts": len(response.Alerts),
		}).Info("alerts: successfully derived property alerts")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Error("alerts: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetPropertyGoals(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("property_id", id).Info("goals: fetching property goals by ID")

		timeRange, err := resolveTimeRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Warn("goals: invalid time range parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		category := domain.GoalCategoryAll
		if value := r.URL.Query().Get("category"); value != "" {
			category = domain.AlertCategory(value)
		}

		response, err := service.GetGoals(id, timeRange, category)
		if err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"category":    string(category),
				"error":       err.Error(),
			}).Error("goals: failed to get goals for property")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"property_id": id,
			"total_goals": len(response.Goals),
		}).Info("goals: successfully derived property goals")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Error("goals: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportPropertyAnalytics aceita a solicitação de exportação e responde 202.
// A geração do relatório acontece em segundo plano.
func ExportPropertyAnalytics(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("property_id", id).Info("export: export request received")

		var request domain.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"error":       err.Error(),
			}).Warn("export: invalid request body")

			http.Error(w, "Corpo da requisição inválido: "+err.Error(), http.StatusBadRequest)
			return
		}

		// Garante que o ID da URL seja usado
		request.PropertyID = id

		if request.Format == "" {
			request.Format = domain.ExportFormatPDF
		}

		if err := service.ExportAnalytics(&request); err != nil {
			logger.WithFields(log.Fields{
				"property_id": id,
				"format":      string(request.Format),
				"error":       err.Error(),
			}).Warn("export: export request rejected")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"property_id": id,
			"format":      string(request.Format),
		}).Info("export: export dispatched in background")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Exportação iniciada",
			"property_id": id,
			"format":      request.Format,
		})
	})
}
