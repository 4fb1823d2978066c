package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/sales/internal/adapters/config"
	"github.com/rafaelleal24/sales/internal/adapters/http/controllers"
	"github.com/rafaelleal24/sales/internal/adapters/http/middleware"
)

type Router struct {
	healthController      *controllers.HealthController
	clientController      *controllers.ClientController
	productController     *controllers.ProductController
	reservationController *controllers.ReservationController
	invoiceController     *controllers.InvoiceController
	rateLimiter           middleware.RateLimiter
	rateLimit             int
	rateWindow            time.Duration
}

func NewRouter(
	healthController *controllers.HealthController,
	clientController *controllers.ClientController,
	productController *controllers.ProductController,
	reservationController *controllers.ReservationController,
	invoiceController *controllers.InvoiceController,
	rateLimiter middleware.RateLimiter,
	httpConfig config.HTTPConfig,
) *Router {
	rateLimit, rateWindow := httpConfig.RateLimit, httpConfig.RateWindow
	if rateLimit <= 0 {
		rateLimit = 15
	}
	if rateWindow <= 0 {
		rateWindow = time.Minute
	}
	return &Router{
		healthController:      healthController,
		clientController:      clientController,
		productController:     productController,
		reservationController: reservationController,
		invoiceController:     invoiceController,
		rateLimiter:           rateLimiter,
		rateLimit:             rateLimit,
		rateWindow:            rateWindow,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	limited := middleware.RateLimit(r.rateLimiter, r.rateLimit, r.rateWindow)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest(), middleware.SystemUser())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/clients", r.clientController.CreateClient)
		v1Group.GET("/clients/:id", r.clientController.GetClientByID)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetProductByID)
		v1Group.DELETE("/products/:id", r.productController.RemoveProduct)

		v1Group.POST("/reservations", r.reservationController.OpenReservation)
		v1Group.GET("/reservations/:id", r.reservationController.GetReservationByID)
		v1Group.POST("/reservations/:id/items", limited, r.reservationController.AddProduct)
		v1Group.POST("/reservations/:id/confirm", r.reservationController.ConfirmReservation)
		v1Group.POST("/reservations/:id/cancel", r.reservationController.CancelReservation)

		v1Group.POST("/invoices", limited, r.invoiceController.IssueInvoice)
		v1Group.GET("/invoices/:id", r.invoiceController.GetInvoiceByID)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
