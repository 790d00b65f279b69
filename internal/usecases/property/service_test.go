package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pmsmocks "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository/mocks"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestListProperties(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockPropertyRepository(ctrl)
	service := NewService(mockRepo, pmsmocks.NewMockPMSIntegrator(ctrl), &config.Config{})

	secret := "chave-do-canal"
	mockRepo.EXPECT().
		ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive}).
		Return([]*domain.Property{
			{ID: "prop_01", ExternalID: "stz_900", Name: "Casa da Praia", ChannelSecret: &secret, Status: domain.PropertyStatusActive},
			{ID: "prop_02", ExternalID: "stz_901", Name: "Loft Centro", Status: domain.PropertyStatusActive},
		}, nil)

	response, err := service.ListProperties([]domain.PropertyStatus{domain.PropertyStatusActive})
	require.NoError(t, err)

	require.Len(t, response, 2)
	assert.True(t, response[0].HasChannel)
	assert.False(t, response[1].HasChannel)
}

func TestSyncProperties(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockRepo *mocks.MockPropertyRepository, mockPMS *pmsmocks.MockPMSIntegrator)
		wantQty  int
		wantErr  bool
	}{
		{
			name: "Imóveis novos são cadastrados",
			setup: func(mockRepo *mocks.MockPropertyRepository, mockPMS *pmsmocks.MockPMSIntegrator) {
				mockPMS.EXPECT().ListProperties().Return([]*domain.Property{
					{ExternalID: "stz_900", Name: "Casa da Praia"},
					{ExternalID: "stz_901", Name: "Loft Centro"},
				}, nil)
				mockRepo.EXPECT().ListPropertiesMap().Return(map[string]struct{}{
					"stz_900": {},
				}, nil)
				mockRepo.EXPECT().
					SaveOrUpdate(gomock.Len(1)).
					Return(nil)
			},
			wantQty: 1,
		},
		{
			name: "Nada a fazer quando todos já existem",
			setup: func(mockRepo *mocks.MockPropertyRepository, mockPMS *pmsmocks.MockPMSIntegrator) {
				mockPMS.EXPECT().ListProperties().Return([]*domain.Property{
					{ExternalID: "stz_900", Name: "Casa da Praia"},
				}, nil)
				mockRepo.EXPECT().ListPropertiesMap().Return(map[string]struct{}{
					"stz_900": {},
				}, nil)
			},
			wantQty: 0,
		},
		{
			name: "Falha na plataforma interrompe a sincronização",
			setup: func(mockRepo *mocks.MockPropertyRepository, mockPMS *pmsmocks.MockPMSIntegrator) {
				mockPMS.EXPECT().ListProperties().Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := mocks.NewMockPropertyRepository(ctrl)
			mockPMS := pmsmocks.NewMockPMSIntegrator(ctrl)
			service := NewService(mockRepo, mockPMS, &config.Config{})

			tt.setup(mockRepo, mockPMS)

			response, err := service.SyncProperties()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, response.Error)
				return
			}

			require.NoError(t, err)
			assert.False(t, response.Error)
			assert.Equal(t, tt.wantQty, response.Quantity)
		})
	}
}

func TestUpdateProperty(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockPropertyRepository(ctrl)
	service := NewService(mockRepo, pmsmocks.NewMockPMSIntegrator(ctrl), &config.Config{})

	t.Run("ID obrigatório", func(t *testing.T) {
		_, err := service.UpdateProperty(&domain.UpdatePropertyRequest{})
		assert.ErrorIs(t, err, ErrPropertyIDRequired)
	})

	t.Run("Imóvel não encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetPropertyByID("prop_zz").Return(nil, nil)

		_, err := service.UpdateProperty(&domain.UpdatePropertyRequest{ID: "prop_zz"})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("Chave do canal vazia é rejeitada", func(t *testing.T) {
		mockRepo.EXPECT().GetPropertyByID("prop_01").Return(&domain.Property{ID: "prop_01"}, nil)

		_, err := service.UpdateProperty(&domain.UpdatePropertyRequest{
			ID:            "prop_01",
			ChannelSecret: stringPtr(""),
		})
		assert.ErrorIs(t, err, ErrInvalidSecret)
	})

	t.Run("Atualização bem sucedida", func(t *testing.T) {
		request := &domain.UpdatePropertyRequest{
			ID:       "prop_01",
			Nickname: stringPtr("Casa Azul"),
		}

		mockRepo.EXPECT().GetPropertyByID("prop_01").Return(&domain.Property{ID: "prop_01"}, nil)
		mockRepo.EXPECT().UpdateProperty(request).Return(nil)

		response, err := service.UpdateProperty(request)
		require.NoError(t, err)
		assert.Equal(t, "prop_01", response.ID)
		assert.Equal(t, "Casa Azul", *response.Nickname)
	})
}
