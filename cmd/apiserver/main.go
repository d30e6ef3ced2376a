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
	"time"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/apiserver/handler"
	"github.com/farmchainx/farmchainx/internal/apiserver/middleware"
	"github.com/farmchainx/farmchainx/internal/auth/jwt"
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/farmchainx/farmchainx/internal/common/config"
	"github.com/farmchainx/farmchainx/internal/i18n"
	"github.com/farmchainx/farmchainx/pkg/helper"
	"github.com/farmchainx/farmchainx/pkg/logger"
	"github.com/farmchainx/farmchainx/pkg/metrics"
	"github.com/farmchainx/farmchainx/pkg/trace"
	"github.com/farmchainx/farmchainx/pkg/version"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", cnst.CommandName, version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.CommandName,
		Short: "FarmChainX API Server",
		Long:  `FarmChainX API Server serves accounts, crops and orders for the farm supply chain`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", cnst.ApiServerYaml, "path to configuration file, like /etc/farmchainx/apiserver.yaml")
	rootCmd.AddCommand(versionCmd)
}

func initLogger(cfg *config.APIServerConfig) *zap.Logger {
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return lg
}

func initI18n(cfg *config.I18nConfig) {
	if err := i18n.InitTranslator(cfg.Path); err != nil {
		log.Printf("Failed to load translations from %s, using built-in messages: %v", cfg.Path, err)
	}
}

func initTracing(ctx context.Context, lg *zap.Logger, cfg *trace.Config) func(context.Context) error {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}
	shutdown, err := trace.InitTracing(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	return shutdown
}

func initDatabase(lg *zap.Logger, cfg *config.DatabaseConfig) database.Database {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		lg.Fatal("Failed to initialize database", zap.String("type", cfg.Type), zap.Error(err))
	}
	return db
}

// prepareUsers repairs legacy accounts and makes sure the configured
// super admin exists
func prepareUsers(ctx context.Context, lg *zap.Logger, db database.Database, cfg *config.SuperAdminConfig) error {
	scope := trace.Tracer(cnst.TraceAPIServer).Start(ctx, cnst.SpanStartupRepair)
	defer scope.End()

	result, err := database.RepairUsers(scope.Ctx, db, lg)
	if err != nil {
		scope.Fail(err)
		return fmt.Errorf("failed to repair users: %w", err)
	}
	scope.WithAttrs(
		attribute.Int("repair.roles", result.Roles),
		attribute.Int("repair.passwords", result.Passwords),
		attribute.Int("repair.approvals", result.Approvals),
	)
	lg.Info("user repair finished",
		zap.Int("roles", result.Roles),
		zap.Int("passwords", result.Passwords),
		zap.Int("approvals", result.Approvals))

	created, err := database.InitSuperAdmin(scope.Ctx, db, cfg)
	if err != nil {
		scope.Fail(err)
		return fmt.Errorf("failed to create super admin: %w", err)
	}
	if created {
		lg.Info("super admin created", zap.String("email", database.NormalizeEmail(cfg.Email)))
	}
	return nil
}

func initCache(ctx context.Context, lg *zap.Logger, cfg *config.CacheConfig) cache.Cache {
	c, err := cache.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("Failed to initialize cache", zap.String("type", cfg.Type), zap.Error(err))
	}
	return c
}

func corsConfig(cfg *config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowOrigins = cfg.AllowOrigins
	if len(cfg.AllowMethods) > 0 {
		cc.AllowMethods = cfg.AllowMethods
	}
	cc.AllowHeaders = append([]string{cnst.HeaderAuth, cnst.HeaderRequestID, cnst.XLang}, cc.AllowHeaders...)
	cc.AllowHeaders = append(cc.AllowHeaders, cfg.AllowHeaders...)
	cc.ExposeHeaders = []string{cnst.HeaderRequestID}
	cc.AllowCredentials = cfg.AllowCredentials
	if cfg.MaxAge > 0 {
		cc.MaxAge = cfg.MaxAge
	}
	return cc
}

func initRouter(db database.Database, c cache.Cache, cfg *config.APIServerConfig, lg *zap.Logger) *gin.Engine {
	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		lg.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	r := gin.New()
	r.Use(middleware.Recovery(lg))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(lg))
	if m != nil {
		r.Use(m.Middleware())
	}
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware(cfg.Trace.ServiceName))
	}
	r.Use(cors.New(corsConfig(&cfg.CORS)))
	r.Use(middleware.Language())

	h := handler.NewHandler(db, jwtService, cache.NewManager(c, cfg.Cache.TTL, lg), m, lg)
	h.RegisterRoutes(r)
	if m != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	r.NoRoute(h.NotFound)

	return r
}

func run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration %s: %v", cfgPath, err)
	}

	lg := initLogger(cfg)
	defer lg.Sync()
	lg.Info("Loaded configuration", zap.String("path", cfgPath))

	initI18n(&cfg.I18n)
	gin.SetMode(cfg.Server.Mode)

	shutdownTracing := initTracing(ctx, lg, &cfg.Trace)
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			lg.Warn("failed to shutdown tracing", zap.Error(err))
		}
	}()

	db := initDatabase(lg, &cfg.Database)
	defer db.Close()

	if err := prepareUsers(ctx, lg, db, &cfg.SuperAdmin); err != nil {
		lg.Fatal("Failed to prepare users", zap.Error(err))
	}

	c := initCache(ctx, lg, &cfg.Cache)
	defer c.Close()

	router := initRouter(db, c, cfg, lg)

	pidFile := helper.GetPIDPath(cfg.Server.PID)
	if err := helper.WritePID(pidFile); err != nil {
		lg.Warn("Failed to write PID file", zap.String("path", pidFile), zap.Error(err))
	} else {
		defer func() { _ = helper.RemovePID(pidFile) }()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("Starting apiserver",
			zap.String("version", version.Get()),
			zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	lg.Info("Shutting down apiserver", zap.String("signal", sig.String()))

	sctx, scancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		lg.Error("Failed to shutdown server", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
