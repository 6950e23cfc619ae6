package main

import (
	"errors"
	"os"
	"petcare/config"
	"petcare/helper"
	"petcare/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.Run(cfg, helper.Action(os.Args[1])); err != nil {
		if errors.Is(err, helper.ErrUnknownAction) {
			log.Fatal().Str("action", os.Args[1]).Msg("Invalid action. Use 'up', 'down', 'step-up', 'drop' or 'version'")
		}

		log.Fatal().Err(err).Msg("Migration failed")
	}
}
