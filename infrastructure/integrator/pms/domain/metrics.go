package pmsdomain

import "time"

// Metric é uma medição bruta retornada pela API do Stayza Core
type Metric struct {
	Value      float64   `json:"value"`
	Change     *float64  `json:"change,omitempty"`
	Trend      string    `json:"trend"`
	MeasuredAt time.Time `json:"measured_at"`
}

// OccupancyBlock agrupa as métricas de ocupação da resposta
type OccupancyBlock struct {
	OccupancyRate Metric `json:"occupancy_rate"`
}

// RevenueBlock agrupa as métricas de receita da resposta
type RevenueBlock struct {
	ADR          Metric `json:"adr"`
	RevPAR       Metric `json:"revpar"`
	TotalRevenue Metric `json:"total_revenue"`
}

// GuestsBlock agrupa as métricas de hóspedes da resposta
type GuestsBlock struct {
	Satisfaction  Metric `json:"satisfaction"`
	ReturningRate Metric `json:"returning_rate"`
	TotalGuests   Metric `json:"total_guests"`
}

// BookingsBlock agrupa as métricas de reservas da resposta
type BookingsBlock struct {
	CancellationRate Metric `json:"cancellation_rate"`
	TotalBookings    Metric `json:"total_bookings"`
	AverageStay      Metric `json:"average_stay"`
}

// PropertyMetrics é o payload completo de métricas de um imóvel em um período
type PropertyMetrics struct {
	PropertyID string         `json:"property_id"`
	Occupancy  OccupancyBlock `json:"occupancy"`
	Revenue    RevenueBlock   `json:"revenue"`
	Guests     GuestsBlock    `json:"guests"`
	Bookings   BookingsBlock  `json:"bookings"`
}
