package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/eights/config"
	"github.com/minaorangina/eights/server"
	"github.com/minaorangina/eights/store"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(ctx, store.NewInMemoryGameStore(), server.ServerOpts{
		BotDelay:  cfg.BotDelay,
		Seed:      cfg.Seed,
		StaticDir: cfg.StaticDir,
		Log:       log,
		AccessLog: log.Writer(),
	})
	s.Addr = cfg.Addr()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("addr", s.Addr).Info("Listening...")
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
