package property

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/pkg/apiErrors"
)

type PropertyService interface {
	UpdateProperty(request *domain.UpdatePropertyRequest) (*domain.UpdatePropertyResponse, error)
	ListProperties(availableStatus []domain.PropertyStatus) ([]*domain.PropertyResponse, error)
	SyncProperties() (*domain.SyncPropertiesResponse, error)
}

type Service struct {
	propertyRepository repository.PropertyRepository
	pmsService         pms.PMSIntegrator
	cfg                *config.Config
}

func NewService(
	propertyRepository repository.PropertyRepository,
	pmsService pms.PMSIntegrator,
	cfg *config.Config,
) PropertyService {
	return &Service{
		propertyRepository: propertyRepository,
		pmsService:         pmsService,
		cfg:                cfg,
	}
}

func (s *Service) ListProperties(availableStatus []domain.PropertyStatus) ([]*domain.PropertyResponse, error) {
	properties, err := s.propertyRepository.ListProperties(availableStatus)
	if err != nil {
		return nil, NewPropertyError(ErrFetchProperties, apiErrors.ErrDatabaseOperation, "Falha ao listar imóveis no banco de dados")
	}

	// Transforma os imóveis para o formato de resposta da API
	propertiesResponse := make([]*domain.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertiesResponse = append(propertiesResponse, &domain.PropertyResponse{
			ID:         property.ID,
			ExternalID: property.ExternalID,
			Name:       property.Name,
			Nickname:   property.Nickname,
			City:       property.City,
			HasChannel: property.ChannelSecret != nil,
			Status:     property.Status,
		})
	}

	return propertiesResponse, nil
}

func (s *Service) SyncProperties() (*domain.SyncPropertiesResponse, error) {
	response := &domain.SyncPropertiesResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar imóveis",
		Error:    true,
	}

	properties, err := s.pmsService.ListProperties()
	if err != nil {
		logrus.WithError(err).Error("property: erro ao listar imóveis na plataforma")
		return response, NewPropertyError(ErrPMSIntegration, apiErrors.ErrExternalService, "Falha ao obter imóveis da plataforma Stayza")
	}

	existingProperties, err := s.propertyRepository.ListPropertiesMap()
	if err != nil {
		logrus.WithError(err).Error("property: erro ao consultar imóveis existentes")
		return response, NewPropertyError(ErrFetchProperties, apiErrors.ErrDatabaseOperation, "Falha ao consultar imóveis existentes no banco de dados")
	}

	propertiesToCreate := make([]*domain.Property, 0)
	for _, property := range properties {
		if _, exists := existingProperties[property.ExternalID]; exists {
			continue
		}

		propertiesToCreate = append(propertiesToCreate, property)
	}

	if len(propertiesToCreate) > 0 {
		if err := s.propertyRepository.SaveOrUpdate(propertiesToCreate); err != nil {
			return response, NewPropertyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar imóveis")
		}
	}

	quantity := len(propertiesToCreate)

	logrus.Infof("%d imóveis foram sincronizados com sucesso", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d imóveis foram sincronizados com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateProperty(request *domain.UpdatePropertyRequest) (*domain.UpdatePropertyResponse, error) {
	if request.ID == "" {
		return nil, ErrPropertyIDRequired
	}

	// Busca o imóvel para verificar se existe
	property, err := s.propertyRepository.GetPropertyByID(request.ID)
	if err != nil {
		logrus.WithError(err).Error("property: erro ao buscar imóvel no banco de dados")
		return nil, NewPropertyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar imóvel no banco de dados")
	}

	if property == nil {
		return nil, NewPropertyErrorWithID(ErrPropertyNotFound, apiErrors.ErrInvalidRequest, request.ID, "Imóvel não encontrado")
	}

	if request.ChannelSecret != nil && *request.ChannelSecret == "" {
		return nil, NewPropertyErrorWithID(ErrInvalidSecret, apiErrors.ErrInvalidTokenChannel, request.ID, "Chave do canal não pode ser vazia")
	}

	// Atualiza o imóvel no repositório
	if err := s.propertyRepository.UpdateProperty(request); err != nil {
		logrus.WithError(err).Error("property: erro ao atualizar imóvel no banco de dados")
		return nil, NewPropertyErrorWithID(ErrUpdateProperty, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar imóvel no banco de dados")
	}

	return &domain.UpdatePropertyResponse{
		ID:       request.ID,
		Nickname: request.Nickname,
		City:     request.City,
		Status:   request.Status,
	}, nil
}
