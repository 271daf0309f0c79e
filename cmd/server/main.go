package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/decipheralgo/go-realtime-server/internal/config"
	"github.com/decipheralgo/go-realtime-server/persona"
	"github.com/decipheralgo/go-realtime-server/server"
	"github.com/decipheralgo/go-realtime-server/server/statestore"
	"github.com/decipheralgo/go-realtime-server/upstream"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("server exited with error")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load() // best effort; real deployments set the env directly

	cfg := config.New()
	logger := newLogger(cfg)
	displayAppname(cfg.GetAppName())

	if cfg.GetOpenAIAPIKey() == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set; /realtime-ephemeral will return a fixed error")
	}

	composer := persona.New(
		persona.ParseSpice(cfg.GetDefaultSpice(), persona.DefaultSpice),
		cfg.GetPersonaAddendum(),
	)
	oauthState := statestore.NewInMemoryRepo(cfg.GetStateTokenTTL())

	httpClient := upstream.NewHTTPClient()
	realtimeClient := upstream.NewRealtimeClient(cfg, httpClient)
	tiktokClient := upstream.NewTikTokClient(cfg, httpClient)

	handler := server.New(cfg, logger, oauthState, composer, realtimeClient, tiktokClient)

	addr := cfg.GetHost() + cfg.GetPort()
	httpServer := &http.Server{Addr: addr, Handler: handler}

	go listenAndServe(logger, httpServer)
	logStartupRoutes(logger, addr)

	waitForStopSignal()
	return shutdown(httpServer)
}

func newLogger(cfg config.Config) zerolog.Logger {
	if cfg.GetEnv() == "DEV" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func listenAndServe(logger zerolog.Logger, httpServer *http.Server) {
	logger.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func logStartupRoutes(logger zerolog.Logger, addr string) {
	logger.Info().Msgf("Health:         http://%s%s", addr, server.RouteHealth)
	logger.Info().Msgf("Realtime token: http://%s%s", addr, server.RouteRealtimeEphemeral)
	logger.Info().Msgf("TikTok login:   http://%s%s", addr, server.RouteTikTokLogin)
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
