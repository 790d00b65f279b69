package domain

// PropertyStatus indica se um imóvel está disponível para análise
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "ACTIVE"
	PropertyStatusInactive PropertyStatus = "INACTIVE"
)

// Property representa um imóvel de temporada gerenciado na plataforma
type Property struct {
	ID             string         `json:"id"`
	ExternalID     string         `json:"external_id"`
	Name           string         `json:"name"`
	Nickname       *string        `json:"nickname"`
	City           *string        `json:"city"`
	RealtorID      *string        `json:"realtor_id"`
	ChannelSecret  *string        `json:"channel_secret"`
	Status         PropertyStatus `json:"status"`
}

// PropertyResponse é o formato de imóvel exposto pela API
type PropertyResponse struct {
	ID         string         `json:"id"`
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Nickname   *string        `json:"nickname"`
	City       *string        `json:"city"`
	HasChannel bool           `json:"has_channel"`
	Status     PropertyStatus `json:"status"`
}

// UpdatePropertyRequest carrega os campos editáveis de um imóvel
type UpdatePropertyRequest struct {
	ID            string  `json:"id"`
	Nickname      *string `json:"nickname,omitempty"`
	City          *string `json:"city,omitempty"`
	ChannelSecret *string `json:"channel_secret,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// UpdatePropertyResponse é a confirmação de atualização de um imóvel
type UpdatePropertyResponse struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	City     *string `json:"city,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// SyncPropertiesResponse resume o resultado da sincronização com a plataforma
type SyncPropertiesResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
