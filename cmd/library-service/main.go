package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"Library_Demo_Service/internal/library-service/api/handler"
	"Library_Demo_Service/internal/library-service/api/routes"
	"Library_Demo_Service/internal/library-service/config"
	"Library_Demo_Service/internal/library-service/health"
	"Library_Demo_Service/internal/library-service/mapper"
	"Library_Demo_Service/internal/library-service/service"
	"Library_Demo_Service/pkg/logger"
	"Library_Demo_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Printf("log file disabled: %v", err)
		fileSyncer = nil
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", appConfig.Server.AppName))
	if fileSyncer != nil {
		defer fileSyncer.Close()
		stopReload := logger.ReloadOnSignal(zapLogger, fileSyncer)
		defer stopReload()
	}
	defer zapLogger.Sync()

	// set up database
	gormConfig := &gorm.Config{Logger: logger.NewGormLogger(zapLogger, appConfig.Server.LogLevel)}
	db, err := openDatabase(appConfig, gormConfig)
	if err != nil {
		zapLogger.Fatal("failed to set up postgres", zap.Error(err))
	}
	defer db.close()
	source := db.source

	// load mapped statements
	var statements *mapper.Statements
	if appConfig.Mapper.XMLPath != "" {
		statements, err = mapper.LoadStatementsFile(appConfig.Mapper.XMLPath)
	} else {
		statements, err = mapper.DefaultStatements()
	}
	if err != nil {
		zapLogger.Fatal("failed to load mapper statements", zap.Error(err))
	}
	zapLogger.Info("loaded mapper statements", zap.String("namespace", statements.Namespace), zap.Int("count", statements.Len()))

	// set up dependencies
	testMapper := mapper.NewTestMapper(db.gorm, statements)
	databaseService := service.NewDatabaseService(source, testMapper)
	welcomeService := service.NewWelcomeService(appConfig.Server.AppName)
	indicator := health.NewDataSourceIndicator(source, appConfig.Postgres.Label, appConfig.Health.ValidationTimeout)

	// the database may come up later; report its state and keep serving
	startupCtx, startupCancel := context.WithTimeout(context.Background(), appConfig.Pool.ConnectionTimeout+appConfig.Health.ValidationTimeout)
	if h := indicator.Health(startupCtx); h.IsUp() {
		zapLogger.Info("connected to postgres successfully", zap.String("url", source.URL()), zap.Bool("pool_enabled", appConfig.Pool.Enabled))
	} else {
		zapLogger.Warn("postgres is not reachable at startup", zap.String("url", source.URL()), zap.Any("details", h.Details))
	}
	startupCancel()

	databaseHandler := handler.NewDatabaseHandler(zapLogger, databaseService)
	welcomeHandler := handler.NewWelcomeHandler(welcomeService)
	healthHandler := handler.NewHealthHandler(zapLogger, indicator)

	// periodic health probe
	prober := health.NewProber(zapLogger, indicator, appConfig.Health.ProbeSchedule)
	if err = prober.Start(); err != nil {
		zapLogger.Fatal("failed to start database health probe", zap.Error(err))
	}
	defer prober.Stop()

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zapLogger))
	r.SetHTMLTemplate(handler.Templates)

	routes.SetUpDatabaseRoutes(r, databaseHandler)
	routes.SetUpWelcomeRoutes(r, welcomeHandler, healthHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
