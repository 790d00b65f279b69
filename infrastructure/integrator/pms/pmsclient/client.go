package pmsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sirupsen/logrus"
	pmsdomain "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/domain"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
)

type Client interface {
	GetPropertyMetrics(externalID, startDate, endDate string) (*pmsdomain.PropertyMetrics, error)
	ListProperties() ([]pmsdomain.Property, error)
}

type PMSClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.PMS.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &PMSClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}

// doGet executa um GET com retentativas em falhas de rede. Erros de aplicação
// (envelope com success=false) nunca são retentados: o resultado seria o mesmo.
func (c *PMSClient) doGet(endpoint string, query url.Values) (json.RawMessage, error) {
	maxRetries := c.cfg.PMS.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Backoff linear: 1s, 2s, 3s
			time.Sleep(time.Duration(attempt) * time.Second)
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
			}).Warn("pms: repetindo requisição após falha de rede")
		}

		data, retryable, err := c.request(endpoint, query)
		if err == nil {
			return data, nil
		}
		if !retryable {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf("pms: requisição falhou após %d tentativas: %w", maxRetries+1, lastErr)
}

// request faz uma única tentativa. O segundo retorno indica se o erro é de
// rede (passível de retentativa) ou de aplicação (definitivo).
func (c *PMSClient) request(endpoint string, query url.Values) (json.RawMessage, bool, error) {
	endpointURL, err := url.Parse(c.cfg.PMS.URL)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpointURL.Path = path.Join(endpointURL.Path, endpoint)
	endpointURL.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.PMS.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	var envelope pmsdomain.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !envelope.Success || resp.StatusCode >= http.StatusBadRequest {
		return nil, false, &pmsdomain.APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Code,
			Message:    envelope.ErrorMessage(),
		}
	}

	return envelope.Data, false, nil
}
