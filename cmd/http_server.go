package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/activity"
	activitydb "github.com/salesdesk/crm-portal/internal/activity/postgres"
	"github.com/salesdesk/crm-portal/internal/auth"
	authdb "github.com/salesdesk/crm-portal/internal/auth/postgres"
	"github.com/salesdesk/crm-portal/internal/core/events"
	"github.com/salesdesk/crm-portal/internal/customer"
	customerdb "github.com/salesdesk/crm-portal/internal/customer/postgres"
	"github.com/salesdesk/crm-portal/internal/dashboard"
	dashboarddb "github.com/salesdesk/crm-portal/internal/dashboard/postgres"
	"github.com/salesdesk/crm-portal/internal/order"
	orderdb "github.com/salesdesk/crm-portal/internal/order/postgres"
	"github.com/salesdesk/crm-portal/internal/target"
	targetdb "github.com/salesdesk/crm-portal/internal/target/postgres"
	"github.com/salesdesk/crm-portal/internal/transport/rest"
	"github.com/salesdesk/crm-portal/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle portal API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	EventBus *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(log)

	customerRepo := customerdb.NewCustomerRepository(gormDB)
	orderRepo := orderdb.NewOrderRepository(gormDB)
	activityRepo := activitydb.NewActivityRepository(gormDB)
	targetRepo := targetdb.NewTargetRepository(gormDB)
	statsRepo := dashboarddb.NewStatsRepository(db)
	authRepo := authdb.NewRepository(gormDB)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenDuration)
	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCost)
	customerService := customer.NewService(customerRepo, log)
	orderService := order.NewService(orderRepo, customerRepo, eventBus, log)
	activityService := activity.NewService(activityRepo, customerRepo, eventBus, log)
	targetService := target.NewService(targetRepo, log)
	dashboardService := dashboard.NewService(statsRepo, log)

	registerEventHandlers(eventBus, customerService, log)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Customer:  customer.NewHandler(customerService),
		Order:     order.NewHandler(orderService),
		Activity:  activity.NewHandler(activityService),
		Target:    target.NewHandler(targetService),
		Dashboard: dashboard.NewHandler(dashboardService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   log,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		EventBus: eventBus,
	}, nil
}

// registerEventHandlers wires the in-process subscriptions: new orders roll
// into customer totals, completed activities leave an audit line.
func registerEventHandlers(bus *events.EventBus, customers *customer.Service, log *slog.Logger) {
	bus.Subscribe(events.EventTypeOrderCreated, func(ctx context.Context, e events.Event) error {
		created, ok := e.(*events.OrderCreatedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload for %s", e.EventType())
		}
		return customers.RecordOrder(created.CustomerID, created.Amount, created.OrderDate)
	})

	bus.Subscribe(events.EventTypeActivityCompleted, func(ctx context.Context, e events.Event) error {
		completed, ok := e.(*events.ActivityCompletedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload for %s", e.EventType())
		}
		log.Info("activity completed",
			"activity_id", completed.ActivityID,
			"rep_id", completed.RepID,
			"type", completed.ActivityType)
		return nil
	})
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open connection pool so both
// access paths share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
