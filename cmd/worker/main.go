package main

import (
	"context"
	"os"
	"os/signal"
	"petcare/config"
	"petcare/di"
	"petcare/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	defer func() {
		if err := consumer.Client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}()

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Payroll consumer stopped with an error")

		return
	}

	log.Info().Msg("Payroll consumer stopped.")
}
