package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agrilink-fulfillment/internal/http/handlers"
	"agrilink-fulfillment/internal/http/middleware"
	"agrilink-fulfillment/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	catalog *handlers.CatalogHandler,
	cart *handlers.CartHandler,
	orders *handlers.OrderHandler,
	payments *handlers.PaymentHandler,
	logistics *handlers.LogisticsHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))
	r.Use(middleware.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalog.List)
		r.Post("/", catalog.Create)
		r.Get("/{id}", catalog.Get)
		r.Put("/{id}", catalog.Update)
		r.Delete("/{id}", catalog.Delete)
	})

	r.Route("/cart/{userId}", func(r chi.Router) {
		r.Get("/", cart.Get)
		r.Delete("/", cart.Clear)
		r.Post("/items", cart.AddItem)
		r.Put("/items/{productId}", cart.UpdateItem)
		r.Delete("/items/{productId}", cart.RemoveItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.Place)
		r.Get("/", orders.List)
		r.Get("/{id}", orders.Get)
		r.Patch("/{id}/status", orders.TransitionStatus)
		r.Post("/{id}/payment", payments.Initiate)
		r.Get("/{id}/payment", payments.ListByOrder)
		r.Post("/{id}/assignment", logistics.Assign)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
