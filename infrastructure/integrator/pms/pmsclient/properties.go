package pmsclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	pmsdomain "github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/domain"
)

func (c *PMSClient) ListProperties() ([]pmsdomain.Property, error) {
	query := url.Values{}
	query.Set("limit", "100")

	data, err := c.doGet("/properties", query)
	if err != nil {
		return nil, err
	}

	properties := make([]pmsdomain.Property, 0)
	if err := json.Unmarshal(data, &properties); err != nil {
		logrus.WithError(err).Error("pms: erro ao decodificar lista de imóveis")
		return nil, fmt.Errorf("erro ao decodificar imóveis: %w", err)
	}

	return properties, nil
}
