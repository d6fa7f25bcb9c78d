package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_http_requests_total",
		Help: "Peticiones HTTP por método, ruta y código de estado.",
	}, []string{"method", "route", "status"})

	stockAdjustments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_stock_adjustments_total",
		Help: "Operaciones de stock confirmadas (ajustes y movimientos).",
	})

	stockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_stock_rejections_total",
		Help: "Operaciones de stock rechazadas por validación o conflicto.",
	})

	productsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_products_created_total",
		Help: "Productos creados.",
	})
)

func observeStockAdjusted()  { stockAdjustments.Inc() }
func observeStockRejected()  { stockRejections.Inc() }
func observeProductCreated() { productsCreated.Inc() }

// MetricsMiddleware cuenta cada petición atendida por ruta registrada.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

// MetricsHandler expone /metrics en formato Prometheus vía el adaptor net/http.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
