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

	"github.com/frizen94/ERPRO/internal"
	"github.com/frizen94/ERPRO/internal/absence"
	absencepg "github.com/frizen94/ERPRO/internal/absence/postgres"
	"github.com/frizen94/ERPRO/internal/auth"
	authpg "github.com/frizen94/ERPRO/internal/auth/postgres"
	"github.com/frizen94/ERPRO/internal/dashboard"
	dashboardpg "github.com/frizen94/ERPRO/internal/dashboard/postgres"
	"github.com/frizen94/ERPRO/internal/functional"
	functionalpg "github.com/frizen94/ERPRO/internal/functional/postgres"
	"github.com/frizen94/ERPRO/internal/lookup"
	lookuppg "github.com/frizen94/ERPRO/internal/lookup/postgres"
	"github.com/frizen94/ERPRO/internal/perdiem"
	perdiempg "github.com/frizen94/ERPRO/internal/perdiem/postgres"
	"github.com/frizen94/ERPRO/internal/person"
	personpg "github.com/frizen94/ERPRO/internal/person/postgres"
	"github.com/frizen94/ERPRO/internal/report"
	"github.com/frizen94/ERPRO/internal/shift"
	shiftpg "github.com/frizen94/ERPRO/internal/shift/postgres"
	"github.com/frizen94/ERPRO/internal/transport/rest"
	"github.com/frizen94/ERPRO/internal/transport/swagger"
	"github.com/frizen94/ERPRO/internal/weapon"
	weaponpg "github.com/frizen94/ERPRO/internal/weapon/postgres"
	"github.com/frizen94/ERPRO/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

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

	logger.Init(config.Env)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ORM: %w", err)
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	tokens := &auth.JWTTokenGenerator{
		AccessTokenSecret:  []byte(config.Security.AccessTokenSecret),
		RefreshTokenSecret: []byte(config.Security.RefreshTokenSecret),
		AccessTokenTTL:     config.Security.AccessTokenTTL,
		RefreshTokenTTL:    config.Security.RefreshTokenTTL,
	}
	authHandler := auth.NewHandler(auth.NewService(authpg.NewRepository(db), tokens, log))

	personRepo := personpg.NewPersonRepository(gormDB)
	personHandler := person.NewHandler(person.NewService(personRepo, log))

	functionalHandler := functional.NewHandler(functional.NewService(functionalpg.NewFunctionalRecordRepository(gormDB), log))
	absenceHandler := absence.NewHandler(absence.NewService(absencepg.NewAbsenceRepository(gormDB), log))

	shiftRepo := shiftpg.NewShiftRepository(gormDB)
	shiftHandler := shift.NewHandler(shift.NewService(shiftRepo, log))

	lookupService := lookup.NewService(lookuppg.NewLookupRepository(gormDB), log)
	lookupHandler := lookup.NewHandler(lookupService)

	perdiemHandler := perdiem.NewHandler(perdiem.NewService(perdiempg.NewPerDiemRepository(gormDB), lookupService, log))
	weaponHandler := weapon.NewHandler(weapon.NewService(weaponpg.NewWeaponRepository(gormDB), log))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboardpg.NewDashboardRepository(gormDB), lookupService, log))
	reportHandler := report.NewHandler(report.NewService(personRepo, shiftRepo, log))

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, rest.Handlers{
		Auth:       authHandler,
		Person:     personHandler,
		Functional: functionalHandler,
		Absence:    absenceHandler,
		Shift:      shiftHandler,
		PerDiem:    perdiemHandler,
		Weapon:     weaponHandler,
		Lookup:     lookupHandler,
		Dashboard:  dashboardHandler,
		Report:     reportHandler,
	}, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// initDB opens the raw pgx-backed connection used by sqlx consumers (auth,
// health checks, goose).
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers GORM over the existing connection. TranslateError turns
// unique-constraint violations into gorm.ErrDuplicatedKey, which the
// repositories map to domain conflict errors.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
