package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
)

type Handler struct {
	services *service.Services

	registry *prometheus.Registry
	metrics  *Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler with its own metrics registry, so
// several handlers can live in one process (and in tests) without
// colliding on collector registration.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		registry: registry,
		metrics:  NewMetrics(registry),
		logger:   logger,
	}
}
