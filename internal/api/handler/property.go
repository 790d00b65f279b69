package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/property"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/apiErrors"
)

func PropertyList(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		var availableStatusList []string
		availableStatus := make([]domain.PropertyStatus, 0)
		if filterStatus != "" {
			availableStatusList = strings.Split(filterStatus, ",")

			for _, status := range availableStatusList {
				availableStatus = append(availableStatus, domain.PropertyStatus(status))
			}
		}

		properties, err := service.ListProperties(availableStatus)
		if err != nil {
			logrus.Error("Error listing properties:", err)

			// Verificar se é um PropertyError para obter detalhes específicos do erro
			var propertyErr *property.PropertyError
			if errors.As(err, &propertyErr) {
				apiErrors.WriteError(w, propertyErr.Code, propertyErr.Error(), nil)
				return
			}

			if errors.Is(err, property.ErrFetchProperties) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar imóveis no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar imóveis", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(properties); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SyncProperties(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncProperties")

		resp, err := service.SyncProperties()
		if err != nil {
			logrus.Error("Error syncing properties:", err)

			// Verificar se é um PropertyError para obter detalhes específicos do erro
			var propertyErr *property.PropertyError
			if errors.As(err, &propertyErr) {
				apiErrors.WriteError(w, propertyErr.Code, propertyErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, property.ErrPMSIntegration):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter imóveis da plataforma Stayza", nil)

			case errors.Is(err, property.ErrFetchProperties) || errors.Is(err, property.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar imóveis no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar imóveis", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// TODO talvez adicionar qual usuário está modificando o imóvel a partir do token
func UpdateProperty(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProperty")

		// Define o tipo de conteúdo da resposta
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do imóvel é obrigatório", nil)
			return
		}

		// Decodifica o corpo da requisição
		var updateRequest domain.UpdatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		// Atualiza o imóvel
		resp, err := service.UpdateProperty(&updateRequest)
		if err != nil {
			logrus.Error("Error updating property:", err)

			// Verificar se é um PropertyError para obter detalhes específicos do erro
			var propertyErr *property.PropertyError
			if errors.As(err, &propertyErr) {
				apiErrors.WriteError(w, propertyErr.Code, propertyErr.Error(), map[string]interface{}{
					"property_id": propertyErr.PropertyID,
					"error_type":  propertyErr.Err.Error(),
				})
				return
			}

			switch {
			case errors.Is(err, property.ErrPropertyIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do imóvel é obrigatório", nil)

			case errors.Is(err, property.ErrPropertyNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Imóvel não encontrado", map[string]interface{}{
					"property_id": id,
					"error_type":  "property_not_found",
				})

			case errors.Is(err, property.ErrInvalidSecret):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTokenChannel, "Chave inválida para a integração com o canal", nil)

			case errors.Is(err, property.ErrDatabaseOperation) || errors.Is(err, property.ErrUpdateProperty):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar imóvel no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar imóvel", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
