// Package main runs the interactive in-memory banking ledger.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/ledgershell"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	accountRepo := accountrepo.NewRepoMem()
	accountService := accountservice.New(accountRepo, config)
	transferService := transferservice.New(accountService)

	shell, err := ledgershell.New(accountService, transferService, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create shell")
	}

	logger.Info().Msg("LEDGER SHELL HAS STARTED")

	ctx := logger.WithContext(context.Background())

	if err := shell.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("shell stopped")
	}
}
