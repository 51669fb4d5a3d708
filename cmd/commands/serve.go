package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"restomart/internal/handlers"
	"restomart/internal/jobs"
	"restomart/internal/jobs/background"
	"restomart/internal/middleware"
	"restomart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the daily report scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	archive := newArchive(ctx, a)

	reportJob := jobs.NewDailyReportService(a.reports, archive)
	scheduler, err := background.NewJobScheduler(reportJob, a.cfg.ReportCron, a.loc)
	if err != nil {
		return fmt.Errorf("failed to create job scheduler: %w", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("WARN: failed to stop job scheduler: %v", err)
		}
	}()

	e := newServer(a)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting restomart %s on port %s", version, a.cfg.Port)
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newArchive returns the report archive, or nil when archiving is disabled or unreachable.
func newArchive(ctx context.Context, a *app) services.ReportArchive {
	if !a.cfg.ArchiveEnabled() {
		return nil
	}
	archive, err := services.NewMinioReportArchive(a.cfg.Minio.Endpoint, a.cfg.Minio.AccessKey,
		a.cfg.Minio.SecretKey, a.cfg.Minio.Bucket, a.cfg.Minio.UseSSL)
	if err != nil {
		log.Printf("WARN: report archive disabled: %v", err)
		return nil
	}
	if err := archive.EnsureBucketExists(ctx); err != nil {
		log.Printf("WARN: report archive disabled: %v", err)
		return nil
	}
	return archive
}

func newServer(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	var cachePinger handlers.Pinger
	if a.cache != nil {
		cachePinger = a.cache
	}
	healthHandlers := handlers.NewHealthHandlers(a.pool, cachePinger, version)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	menuHandlers := handlers.NewMenuHandlers(a.menus)
	orderHandlers := handlers.NewOrderHandlers(a.orders)
	salesHandlers := handlers.NewSalesHandlers(a.orders, a.reports)

	v1 := versionMiddleware.VersionRoute(e, "v1")
	v1.POST("/menu-items", menuHandlers.CreateMenuItem)
	v1.GET("/menu-items", menuHandlers.ListMenuItems)
	v1.POST("/orders", orderHandlers.PlaceOrder)
	v1.GET("/orders", orderHandlers.ListOrders)
	v1.GET("/sales/summary", salesHandlers.GetSummary)
	v1.GET("/sales/by-menu-item", salesHandlers.GetByMenuItem)
	v1.GET("/sales/report", salesHandlers.GetReport)

	return e
}
