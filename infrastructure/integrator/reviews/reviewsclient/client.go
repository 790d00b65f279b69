package reviewsclient

import (
	"net/http"
	"time"

	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
)

type Client interface {
	GetReviewStats(params ReviewStatsParams) (*ReviewStatsResponse, error)
}

type ReviewsClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Reviews.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ReviewsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}
