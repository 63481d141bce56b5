package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/InventorySystem_Go/internal/domain"
)

// Recorder reports inventory operations to Prometheus
type Recorder struct {
	operations    *prometheus.CounterVec
	quantityDelta *prometheus.CounterVec
	actorsActive  prometheus.Gauge
}

// NewRecorder registers the inventory metrics with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameOperationsTotal,
				Help: HelpTextOperationsTotal,
			},
			[]string{LabelOperation, LabelResult},
		),
		quantityDelta: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameQuantityDeltaTotal,
				Help: HelpTextQuantityDeltaTotal,
			},
			[]string{LabelItem, LabelDirection},
		),
		actorsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricNameActorsActive,
				Help: HelpTextActorsActive,
			},
		),
	}
}

// RecordOperation counts one operation by its result code
func (r *Recorder) RecordOperation(op string, code domain.ErrorCode) {
	r.operations.WithLabelValues(op, code.String()).Inc()
}

// RecordQuantity counts units added (positive delta) or consumed (negative delta)
func (r *Recorder) RecordQuantity(item string, delta int) {
	switch {
	case delta > 0:
		r.quantityDelta.WithLabelValues(item, DirectionAdded).Add(float64(delta))
	case delta < 0:
		r.quantityDelta.WithLabelValues(item, DirectionConsumed).Add(float64(-delta))
	}
}

// SetActorsActive reports how many actors the host is driving
func (r *Recorder) SetActorsActive(n int) {
	r.actorsActive.Set(float64(n))
}
