package reviewsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

type ReviewStatsParams struct {
	PropertyID string
	StartDate  string
	EndDate    string
}

// ReviewStat é uma medição bruta da plataforma de avaliações
type ReviewStat struct {
	Value      float64   `json:"value"`
	Change     *float64  `json:"change,omitempty"`
	Trend      string    `json:"trend"`
	MeasuredAt time.Time `json:"measured_at"`
}

type ReviewStatsResponse struct {
	PropertyID    string     `json:"property_id"`
	AverageRating ReviewStat `json:"average_rating"`
	ResponseRate  ReviewStat `json:"response_rate"`
	TotalReviews  ReviewStat `json:"total_reviews"`
}

func (c *ReviewsClient) GetReviewStats(params ReviewStatsParams) (*ReviewStatsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.cfg.Reviews.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/properties/%s/stats", params.PropertyID))

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.cfg.Reviews.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	response := &ReviewStatsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
