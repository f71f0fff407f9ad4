package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"github.com/blueline/fantasyhockey/go/internal/web"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	clock := clockwork.NewRealClock()

	publisher, nc := setupPublisher(cfg)
	if nc != nil {
		defer nc.Close()
	}

	worker := outbox.NewWorker(database, publisher, cfg.outboxConfig(), clock, log.Logger)
	if err := worker.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start outbox worker")
	}
	defer worker.Stop()

	server := web.NewServer(cfg.Server.Port, setupApps(database, clock))

	shutdown := make(chan bool)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutdown signal received")
		close(shutdown)
	}()

	server.ListenAndServe(shutdown, &wg)
	wg.Wait()
	log.Info().Msg("server stopped")
}

// setupPublisher connects to NATS when a url is configured, otherwise events
// drain to the log so local development needs no broker
func setupPublisher(cfg *Config) (outbox.EventPublisher, *nats.Conn) {
	if cfg.NATS.URL == "" {
		log.Info().Msg("no NATS url configured, publishing outbox events to log")
		return outbox.NewLogPublisher(log.Logger), nil
	}

	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.NATS.URL).Msg("failed to connect to NATS")
	}
	log.Info().Str("url", cfg.NATS.URL).Msg("connected to NATS")
	return outbox.NewNATSPublisher(nc, cfg.NATS.SubjectPrefix), nc
}
