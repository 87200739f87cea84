// Package metrics expone métricas Prometheus de negocio y HTTP.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/application/billing"
)

// Config etiquetas constantes de todas las series.
type Config struct {
	ServiceName string
	Environment string
}

var _ billing.Recorder = (*Metrics)(nil)

// Metrics agrupa los colectores registrados en un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	invoicesGenerated prometheus.Counter
	invoiceGross      prometheus.Histogram
	backupFailures    prometheus.Counter
	downloads         *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	inFlight          prometheus.Gauge
}

// New crea un registry con los colectores de proceso y Go más los de la aplicación.
func New(cfg Config) *Metrics {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "finbot-api"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{"service": serviceName, "env": environment}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		invoicesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "finbot_invoices_generated_total",
			Help:        "Rachunki procesados correctamente.",
			ConstLabels: constLabels,
		}),
		invoiceGross: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "finbot_invoice_gross_pln",
			Help:        "Importe bruto de los rachunki procesados (PLN).",
			Buckets:     []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000},
			ConstLabels: constLabels,
		}),
		backupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "finbot_backup_failures_total",
			Help:        "Copias de PDF que no se pudieron guardar.",
			ConstLabels: constLabels,
		}),
		downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "finbot_document_downloads_total",
			Help:        "Descargas de documentos por formato.",
			ConstLabels: constLabels,
		}, []string{"format"}), // pdf | xml
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "finbot_http_request_duration_seconds",
			Help:        "Duración de las peticiones HTTP.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "finbot_http_in_flight_requests",
			Help:        "Peticiones HTTP en curso.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.invoicesGenerated,
		m.invoiceGross,
		m.backupFailures,
		m.downloads,
		m.requestDuration,
		m.inFlight,
	)
	return m
}

// Registry para tests y exportadores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) InvoiceGenerated(gross decimal.Decimal) {
	if m == nil {
		return
	}
	m.invoicesGenerated.Inc()
	m.invoiceGross.Observe(gross.InexactFloat64())
}

func (m *Metrics) BackupFailed() {
	if m == nil {
		return
	}
	m.backupFailures.Inc()
}

func (m *Metrics) DocumentDownloaded(format string) {
	if m == nil {
		return
	}
	m.downloads.WithLabelValues(format).Inc()
}

// Handler sirve /metrics en formato de exposición Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware mide duración y peticiones en curso. La etiqueta route es el
// patrón de la ruta, no la URL, para no disparar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		m.inFlight.Inc()
		start := time.Now()
		err := c.Next()
		m.inFlight.Dec()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := "unknown"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		m.requestDuration.WithLabelValues(c.Method(), route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
