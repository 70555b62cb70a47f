package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/controllers"
	"github.com/ramses2099/storeapiv2/middleware"
	"github.com/ramses2099/storeapiv2/routes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "store-service"

var shutdownTimeout time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Connect to PostgreSQL, create any missing tables and serve the HTTP API
until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 5*time.Second, "How long to wait for in-flight requests on shutdown")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(a *app) *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(a.cfg.RateLimitPerMinute, a.cfg.RateLimitBurst))
	r.Use(middleware.Timeout(a.cfg.RequestTimeout))
	if a.metrics != nil {
		r.Use(middleware.Metrics(a.metrics, serviceName, a.logger))
	}

	routes.RegisterRoutes(r, routes.Controllers{
		Users:        controllers.NewUserController(a.users),
		Customers:    controllers.NewCustomerController(a.customers),
		Employees:    controllers.NewEmployeeController(a.employees),
		Vendors:      controllers.NewVendorController(a.vendors),
		Categories:   controllers.NewCategoryController(a.categories),
		Products:     controllers.NewProductController(a.products),
		Orders:       controllers.NewOrderController(a.orders),
		OrderDetails: controllers.NewOrderDetailController(a.orderDetails),
	})
	return r
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	a.logger.Info("Store service started", zap.String("port", a.cfg.Port), zap.String("env", a.cfg.Env))

	select {
	case err := <-errCh:
		a.logger.Error("Server failed", zap.Error(err))
		return err
	case <-quit:
	}
	a.logger.Info("Shutting down store service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	a.logger.Info("Server exited cleanly")
	return nil
}
