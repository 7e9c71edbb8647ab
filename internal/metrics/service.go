package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "humtoken"

// Transfer outcomes as used in the outcome label.
const (
	TransferConfirmed = "confirmed"
	TransferRejected  = "rejected"
	TransferReadError = "read_error"
	TransferNetwork   = "network"
	TransferTimeout   = "timeout"
	TransferReverted  = "reverted"
)

// Service owns a dedicated registry so several servers may coexist in one
// process (tests).
type Service struct {
	Registry *prometheus.Registry

	transfers  *prometheus.CounterVec
	readErrors *prometheus.CounterVec
}

func New() (*Service, error) {
	registry := prometheus.NewRegistry()

	s := &Service{
		Registry: registry,
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Token transfers handled, by outcome.",
		}, []string{"outcome"}),
		readErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_read_errors_total",
			Help:      "Failed contract reads, by attribute.",
		}, []string{"field"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.transfers,
		s.readErrors,
	} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

func (s *Service) ObserveTransfer(outcome string) {
	s.transfers.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveReadError(field string) {
	s.readErrors.WithLabelValues(field).Inc()
}
