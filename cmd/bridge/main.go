package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-meet-bridge/internal/app"
	"github.com/MKhiriev/go-meet-bridge/internal/config"
	"github.com/MKhiriev/go-meet-bridge/internal/logger"
	"github.com/MKhiriev/go-meet-bridge/internal/service"
	"github.com/MKhiriev/go-meet-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries the converted payload, everything else goes to stderr
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-meet-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithMinLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("bridge failed")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	svc := service.NewBridgeService(cfg.Bridge, log)

	runner, err := app.NewRunner(svc, cfg.Bridge, log)
	if err != nil {
		return fmt.Errorf("error creating runner: %w", err)
	}

	in, err := app.OpenInput(cfg.Bridge.InputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	// unblocks a pending read of a file input on SIGINT/SIGTERM
	stopClose := context.AfterFunc(ctx, func() { in.Close() })
	defer stopClose()

	// output is opened only once the whole conversion has succeeded
	var out bytes.Buffer
	if err = runner.Run(ctx, in, &out); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	return app.WriteOutput(cfg.Bridge.OutputPath, out.Bytes())
}
