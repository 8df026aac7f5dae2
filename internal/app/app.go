// internal/app/app.go

package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"solarhub/api"
	"solarhub/internal/config"
	"solarhub/internal/db"
	"solarhub/internal/events"
	"solarhub/internal/handlers"
	"solarhub/internal/logger"
	"solarhub/internal/service"
	"solarhub/internal/utils"
	"solarhub/server"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	cfg      config.Config
	db       *gorm.DB
	eventBus *events.EventBus
	subs     []events.Subscription
	router   *gin.Engine
	server   *server.Server
	wg       sync.WaitGroup
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Initialize opens the database and wires repositories, services and routes.
func (a *App) Initialize() error {
	gdb, err := db.Open(a.cfg.DBDriver, a.cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.db = gdb
	a.eventBus = events.NewEventBus()
	for _, t := range events.AllTypes() {
		a.subs = append(a.subs, a.eventBus.Subscribe(t, logEvent))
	}

	quotationRepo := db.NewQuotationRepository(gdb)
	installationRepo := db.NewInstallationRepository(gdb)

	calculator := service.NewCalculatorService()
	quotations := service.NewQuotationService(quotationRepo, a.eventBus)
	installations := service.NewInstallationService(installationRepo, quotationRepo, a.eventBus)
	reports := service.NewReportService(quotationRepo)

	pdfOptions := utils.PDFOptions{CompanyName: a.cfg.CompanyName, FontDir: a.cfg.PDFFontDir}

	if a.cfg.LogLevel > logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	a.router = api.SetupRouter(api.Handlers{
		Calculator:   handlers.NewCalculatorHandler(calculator),
		Quotation:    handlers.NewQuotationHandler(quotations, pdfOptions),
		Installation: handlers.NewInstallationHandler(installations),
		Report:       handlers.NewReportHandler(reports),
	}, a.cfg.AllowedOrigins)
	return nil
}

// Handler exposes the routes, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Start() error {
	if a.router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.server = server.NewServer("", a.cfg.Port, a.router)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Start(); err != nil {
			logger.Error("Server error: %v", err)
		}
	}()

	logger.Info("Server started on port %d", a.cfg.Port)
	return nil
}

// Stop shuts the server down, drains event handlers and closes the database.
func (a *App) Stop(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Stop(ctx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		if a.eventBus != nil {
			for _, sub := range a.subs {
				a.eventBus.Unsubscribe(sub)
			}
			a.eventBus.Wait()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout")
	}

	if a.db != nil {
		if err := db.Close(a.db); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	logger.Info("Application stopped gracefully")
	return nil
}

func logEvent(e events.Event) {
	switch data := e.Data.(type) {
	case events.QuotationEventData:
		logger.Info("Event %s: quotation %s (%s) %.0f kW, status %s", e.Type, data.Reference, data.CustomerName, data.SystemSize, data.Status)
	case events.InstallationEventData:
		logger.Info("Event %s: installation %d (%s) %d PKR, status %s", e.Type, e.RecordID, data.CustomerName, data.TotalPrice, data.Status)
	default:
		logger.Debug("Event %s: record %d", e.Type, e.RecordID)
	}
}
