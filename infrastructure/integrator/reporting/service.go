package reporting

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportingIntegrator despacha pedidos de exportação para o serviço de
// relatórios. A geração é assíncrona do lado de lá; aqui só enfileiramos.
type ReportingIntegrator interface {
	DispatchExport(ctx context.Context, request *domain.ExportRequest) error
}

type ReportingService struct {
	httpClient *http.Client
	cfg        *config.Config
}

func New(cfg *config.Config) ReportingIntegrator {
	timeout := time.Duration(cfg.Reporting.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ReportingService{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}

func (s *ReportingService) DispatchExport(ctx context.Context, request *domain.ExportRequest) error {
	endpoint, err := url.Parse(s.cfg.Reporting.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/exports")

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("erro ao serializar pedido de exportação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.cfg.Reporting.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return nil
}
