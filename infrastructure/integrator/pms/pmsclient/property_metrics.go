package pmsclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	pmsdomain "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/domain"
)

func (c *PMSClient) GetPropertyMetrics(externalID, startDate, endDate string) (*pmsdomain.PropertyMetrics, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	data, err := c.doGet(fmt.Sprintf("/properties/%s/metrics", externalID), query)
	if err != nil {
		return nil, err
	}

	metrics := &pmsdomain.PropertyMetrics{}
	if err := json.Unmarshal(data, metrics); err != nil {
		logrus.WithError(err).Error("pms: erro ao decodificar métricas do imóvel")
		return nil, fmt.Errorf("erro ao decodificar métricas: %w", err)
	}

	return metrics, nil
}
