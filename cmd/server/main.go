package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	callmem "github.com/Wyydra/audiorooms/internal/adapter/driven/call/memory"
	"github.com/Wyydra/audiorooms/internal/adapter/driven/device/mediadevices"
	devicemem "github.com/Wyydra/audiorooms/internal/adapter/driven/device/memory"
	"github.com/Wyydra/audiorooms/internal/adapter/driven/gateway/ws"
	repo "github.com/Wyydra/audiorooms/internal/adapter/driven/persistence/memory"
	handler "github.com/Wyydra/audiorooms/internal/adapter/driving/http"
	"github.com/Wyydra/audiorooms/internal/config"
	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := zerolog.ConsoleWriter{Out: os.Stdout}
	l := zerolog.New(w).Level(cfg.Level()).With().Timestamp().Caller().Logger()
	log.Logger = l

	var devices port.DeviceManager
	switch cfg.DeviceBackend {
	case config.DeviceBackendMediaDevices:
		md := mediadevices.NewDeviceManager(l)
		defer md.Close()
		devices = md
	default:
		devices = devicemem.NewDeviceManager(
			domain.DeviceInfo{ID: "default", Name: "Default microphone", IsDefault: true},
		)
	}

	engine := callmem.NewCallEngine(cfg.APIKey, l)
	hub := ws.NewHub()
	sessions := repo.NewSessionRepository()

	controller := service.NewCallSessionController(engine, service.CallOptions{
		Type:   domain.CallType(cfg.CallType),
		Notify: cfg.CallNotify,
	}, l)
	registry := service.NewParticipantViewRegistry(ws.NewViewContainer(hub), l)
	microphones := service.NewMicrophoneSelector(devices, l)
	room := service.NewRoomService(controller, registry, microphones, sessions, l)

	h := handler.NewHandler(room, hub, cfg.Credentials())
	h.StaticDir = cfg.StaticDir
	h.AllowAnyOrigin = cfg.WSAllowAnyOrigin
	if cfg.SimulationEnabled {
		h.Simulator = engine
	}

	go hub.Run()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	room.Start(ctx, cfg.Credentials())

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: h.NewRouter(),
	}

	errChan := make(chan error, 1)
	go func() {
		l.Info().Str("address", cfg.Address()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		l.Info().Msg("Shutting down server...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := room.Close(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("Failed to leave call on shutdown")
	}

	hub.Stop()
	l.Info().Msg("Server exited")
	return nil
}
