// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Command rpcal runs the calendar client core standalone: the refresh
// loop in place of a plugin host's render ticks, plus the optional local
// debug server for inspecting the cache and filter output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// Windows hosts may lack a zoneinfo database; bundle one so the
	// display timezone always resolves.
	_ "time/tzdata"

	"github.com/ffxiv-rp-calendar/rpcal/internal/api"
	"github.com/ffxiv-rp-calendar/rpcal/internal/calendar"
	"github.com/ffxiv-rp-calendar/rpcal/internal/config"
	"github.com/ffxiv-rp-calendar/rpcal/internal/events"
	"github.com/ffxiv-rp-calendar/rpcal/internal/host"
	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/supervisor"
	"github.com/ffxiv-rp-calendar/rpcal/internal/supervisor/services"
	"github.com/ffxiv-rp-calendar/rpcal/internal/worlds"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rpcal:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (default: search standard locations)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.Info().Str("api", cfg.API.BaseURL).Str("timezone", cfg.Display.Timezone).Msg("starting rpcal")

	worldTable := worlds.NewService(worlds.StaticTable{})

	player := host.NewUnresolvedPlayer()
	if cfg.Display.World != "" {
		if world, ok := worldTable.WorldByName(cfg.Display.World); ok {
			player.SetWorld(world.ID)
			logging.Info().Str("world", world.Name).Uint32("world_id", world.ID).Msg("player world resolved")
		} else {
			logging.Warn().Str("world", cfg.Display.World).Msg("unknown world name; location views unavailable")
		}
	}

	client := calendar.NewClient(cfg)
	refs := calendar.NewReferenceCache(client)

	saver := host.SaverFunc(func() {
		path := cfg.Path()
		if path == "" {
			return
		}
		if err := cfg.Save(path); err != nil {
			logging.Err(err).Str("path", path).Msg("failed to persist repaired config")
		}
	})

	svc := events.NewService(events.Options{
		Config:     cfg,
		Fetcher:    calendar.NewBreakerClient(client),
		References: refs,
		Worlds:     worldTable,
		Player:     player,
		Notifier:   host.NewBroadcaster(),
		ErrorSink:  host.LogSink{},
		Saver:      saver,
	})
	defer svc.Close()

	tree := supervisor.NewTree(slog.New(logging.NewSlogHandler()), supervisor.DefaultTreeConfig())
	tree.AddPipelineService(services.NewRefreshService(svc, cfg.Refresh.PollInterval))

	if cfg.Server.Enabled {
		router := api.NewRouter(api.NewHandler(svc, refs))
		server := &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           router.Setup(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		tree.AddAPIService(services.NewHTTPService(server, 10*time.Second))
		logging.Info().Str("addr", server.Addr).Msg("debug server enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}
	logging.Info().Msg("shutdown complete")
	return nil
}
