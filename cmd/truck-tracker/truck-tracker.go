package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ahmed-reda-301/truck-tracker/internal/api"
	"github.com/ahmed-reda-301/truck-tracker/internal/config"
	"github.com/ahmed-reda-301/truck-tracker/internal/fixtures"
	"github.com/ahmed-reda-301/truck-tracker/internal/fleet"
	"github.com/ahmed-reda-301/truck-tracker/internal/influx"
	"github.com/ahmed-reda-301/truck-tracker/internal/logging"
	"github.com/ahmed-reda-301/truck-tracker/internal/monitor"
	"github.com/ahmed-reda-301/truck-tracker/internal/paths"
	"github.com/ahmed-reda-301/truck-tracker/internal/sim"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage"
	"github.com/ahmed-reda-301/truck-tracker/internal/worker"
)

// Version and BuildDate can be set at build time via ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

func main() {
	if os.Getenv("TRUCK_TRACKER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	app := &cli.App{
		Name:        "truck-tracker",
		Version:     Version,
		Description: "Fleet tracking simulation engine for Saudi Arabian highway routes",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "directory holding " + config.ConfigFileName,
			},
		},

		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "start the simulation engine and HTTP API",
				Action: runEngine,
			},
			{
				Name:   "routes",
				Usage:  "list the known highway routes and their waypoints",
				Action: listRoutes,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func runEngine(c *cli.Context) error {
	if err := config.Load(c.String("config")); err != nil {
		log.Warn().Err(err).Msg("Config file not found, using defaults")
		config.LoadDefaults()
	}

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	logger.Info().Str("version", Version).Str("buildDate", BuildDate).Msg("Starting truck tracker")

	vehicles, err := fixtures.LoadVehicles(config.GetString("dataDir"))
	if err != nil {
		return err
	}

	store := fleet.NewStore(config.GetInt("sim.alertRetention"))
	store.Load(vehicles)

	seed := config.GetInt64("sim.seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simulator := sim.New(sim.Config{
		TravelWindow:          config.GetDuration("sim.travelWindow"),
		SpeedAlertProbability: config.GetFloat64("sim.speedAlertProbability"),
		FuelAlertProbability:  config.GetFloat64("sim.fuelAlertProbability"),
	}, seed)

	backend, err := storage.NewBackend(config.Storage(), logger)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.RegisterFleet(vehicles); err != nil {
		return err
	}

	var metrics *influx.Manager
	if config.GetBool("influx.enabled") {
		metrics = influx.NewManager(logger, config.GetString("influx.backupPath"))
		if err := metrics.Connect(); err != nil {
			logger.Warn().Err(err).Msg("InfluxDB unavailable, points go to the backup file")
		}
		defer metrics.Close()
	}

	runner := worker.NewRunner(worker.Dependencies{
		Store:     store,
		Simulator: simulator,
		Backend:   backend,
		Metrics:   metrics,
		Logger:    logger,
	}, config.GetDuration("sim.tickInterval"))
	if err := runner.Start(); err != nil {
		return err
	}
	defer runner.Stop()

	statusMonitor := monitor.NewService(monitor.Dependencies{
		Store:     store,
		Runner:    runner,
		Logger:    logger,
		StatusDir: config.GetString("logsDir"),
		Interval:  5 * time.Second,
	})
	if err := statusMonitor.Start(); err != nil {
		return err
	}
	defer statusMonitor.Stop()

	server := api.NewServer(api.Dependencies{
		Store:   store,
		Backend: backend,
		Runner:  runner,
		Logger:  logger,
	})

	errChan := make(chan error, 1)
	go func() {
		listen := config.GetString("api.listen")
		logger.Info().Str("listen", listen).Msg("HTTP API listening")
		errChan <- server.Listen(listen)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
		return server.Shutdown()
	}
}

func listRoutes(c *cli.Context) error {
	for _, p := range paths.All() {
		log.Info().
			Str("route", p.Name).
			Int("waypoints", len(p.Waypoints)).
			Float64("lengthKm", p.LengthKm()).
			Send()
	}
	return nil
}

func buildLogger() (zerolog.Logger, error) {
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return zerolog.Nop(), err
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, "truck_tracker", time.Now()))
	if err != nil {
		return zerolog.Nop(), err
	}

	return logging.New(logging.Options{
		Level:          config.GetString("logLevel"),
		ConsoleWriter:  os.Getenv("TRUCK_TRACKER_LOG_FORMAT") != "JSON",
		File:           logFile,
		GraylogEnabled: config.GetBool("graylog.enabled"),
		GraylogAddress: config.GetString("graylog.address"),
	}), nil
}
