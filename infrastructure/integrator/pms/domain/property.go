package pmsdomain

// Property é o cadastro de imóvel exposto pela API do Stayza Core
type Property struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Status string `json:"status"`
}
