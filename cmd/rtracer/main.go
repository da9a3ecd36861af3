// Command rtracer runs a small HTTP service that tags every request with a
// correlation id and logs it from synchronous and deferred work alike.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/rtracer/pkg/config"
	"github.com/dmitrymomot/rtracer/pkg/httpserver"
	"github.com/dmitrymomot/rtracer/pkg/logger"
	"github.com/dmitrymomot/rtracer/pkg/requestid"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Service    string `env:"APP_SERVICE" envDefault:"rtracer"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFile    string `env:"LOG_FILE"`
	LogMaxSize int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge  int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

func main() {
	var (
		appCfg    appConfig
		tracerCfg requestid.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&tracerCfg)
	config.MustLoad(&serverCfg)

	tracer := requestid.NewFromConfig(tracerCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithRotatingFile(appCfg.LogFile, appCfg.LogMaxSize, appCfg.LogBackups, appCfg.LogMaxAge),
		logger.WithContextExtractors(tracer.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(serverCfg,
		httpserver.WithLogger(log),
		httpserver.WithMiddleware(tracer.Middleware),
	)

	if err := srv.Run(context.Background(), newRouter(tracer, log)); err != nil {
		log.Error("server exited", logger.Error(err), slog.String("addr", serverCfg.Addr))
		os.Exit(1)
	}
}
