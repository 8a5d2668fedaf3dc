// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return 2
	}

	log, closer := logger.NewClientLogger("go-pass-vault", cfg.App.LogFile)
	defer closer.Close()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Stringer("build", build).Str("account", cfg.App.Account).Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, client.MsgUnexpected)
		return 1
	}
	defer storages.Close()

	services, err := service.NewClientServices(*cfg, storages, log)
	if err != nil {
		log.Error().Err(err).Msg("create client services")
		fmt.Fprintln(os.Stderr, client.MsgUnexpected)
		return 1
	}

	app := client.NewApp(services, client.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		PromptOut:   os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		BuildInfo:   build,
	}, log)

	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, client.UserMessage(err))
		return 1
	}
	return 0
}
