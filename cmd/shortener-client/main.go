package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/shortener-client/internal/app"
	"github.com/MikhailRaia/shortener-client/internal/config"
	"github.com/MikhailRaia/shortener-client/internal/logger"
)

func main() {
	cfg := config.NewConfig()
	args := flag.Args()

	logFile := cfg.LogFile
	if logFile == "" && len(args) == 0 {
		// stderr belongs to the interactive view
		logFile = config.DefaultLogFile()
	}
	logger.InitLogger(cfg.LogLevel, logger.Output(logFile))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg, os.Stdout, os.Stderr)
	if err := application.Run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("Error running application")
	}
}
