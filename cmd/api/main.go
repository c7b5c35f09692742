package main

import (
	"time"

	"go-hris-console/internal/app"
	"go-hris-console/internal/bootstrap"
	"go-hris-console/internal/config"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	shutdownTelemetry := telemetry.Setup(telemetry.Config{
		ServiceName: "hr-console",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})

	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	infra, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	hooks := append(infra.ShutdownHooks(), bootstrap.ShutdownFunc(shutdownTelemetry))
	bootstrap.StartHTTPServer(
		otelhttp.NewHandler(r, "hr-console"),
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			IdleTimeout:     cfg.IdleTimeout,
			ShutdownTimeout: 10 * time.Second,
		},
		infra.Audit,
		hooks...,
	)
}
