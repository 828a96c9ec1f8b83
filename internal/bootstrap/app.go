package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Sayed24/Employee-Management-System/internal/config"
	"github.com/Sayed24/Employee-Management-System/internal/database"
	"github.com/Sayed24/Employee-Management-System/internal/handler"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
	"github.com/Sayed24/Employee-Management-System/internal/repository"
	"github.com/Sayed24/Employee-Management-System/internal/service"
)

type App struct {
	Echo    *echo.Echo
	Store   *database.LocalStore
	Service *service.RosterService
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Open the local store
	store, err := database.NewLocalStore(ctx, config.DefaultEnvConfig.STORE_PATH)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	a.Store = store
	logger.InfoLog(ctx, "Local store opened at %s", config.DefaultEnvConfig.STORE_PATH)

	// Initialize dependencies
	rosterRepo := repository.NewRosterRepository(store, config.DefaultEnvConfig.STORE_KEY)
	rosterSvc := service.NewRosterService(rosterRepo)
	if err := rosterSvc.Load(ctx); err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	a.Service = rosterSvc
	logger.InfoLog(ctx, "Roster loaded with %d employees", rosterSvc.Count())

	rosterHandler := handler.NewRosterHandler(rosterSvc, handler.Options{
		PageSizeOptions:  config.DefaultEnvConfig.PAGE_SIZE_OPTIONS,
		DefaultPageSize:  config.DefaultEnvConfig.DEFAULT_PAGE_SIZE,
		SearchDebounce:   config.DefaultEnvConfig.SEARCH_DEBOUNCE,
		ReportConfigPath: config.DefaultEnvConfig.REPORT_CONFIG_PATH,
	})

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(rosterHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(rosterHandler *handler.RosterHandler) {
	a.Echo.GET("/roster", rosterHandler.RenderHandler)
	a.Echo.POST("/employees", rosterHandler.CreateHandler)
	a.Echo.PUT("/employees/:id", rosterHandler.UpdateHandler)
	a.Echo.DELETE("/employees/:id", rosterHandler.DeleteHandler)
	a.Echo.DELETE("/roster", rosterHandler.ClearHandler)

	intentGroup := a.Echo.Group("/intents")
	intentGroup.POST("/search", rosterHandler.SearchHandler)
	intentGroup.POST("/department", rosterHandler.DepartmentHandler)
	intentGroup.POST("/page-size", rosterHandler.PageSizeHandler)
	intentGroup.POST("/page", rosterHandler.GotoPageHandler)

	exportGroup := a.Echo.Group("/export")
	exportGroup.GET("/json", rosterHandler.ExportJSONHandler)
	exportGroup.GET("/excel", rosterHandler.ExportExcelHandler)

	a.Echo.POST("/import", rosterHandler.ImportHandler)
}

func (a *App) Run() error {
	defer a.Store.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
