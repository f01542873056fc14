package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/backend"
	"github.com/leandroveron1110/locus-delivery/internal/channel"
	"github.com/leandroveron1110/locus-delivery/internal/configs"
	httpdelivery "github.com/leandroveron1110/locus-delivery/internal/delivery/http"
	"github.com/leandroveron1110/locus-delivery/internal/identity"
	"github.com/leandroveron1110/locus-delivery/internal/session"
)

// @title delivery company portal
// @version 1.0
// @description Order core for the delivery-company portal. Seeds a session order store from the backend, keeps it live over the event channel and serves the projected order list, zones and profile to the portal UI.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if lvl, perr := logrus.ParseLevel(cfg.LogLevel); perr == nil {
		logrus.SetLevel(lvl)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	id := identity.New(cfg.CompanyID)
	api := backend.NewClient(cfg.APIBaseURL, id.Token)

	sess := session.New(api, cfg.CompanyID, func(companyID string, sink channel.Sink) *channel.Channel {
		return channel.New(cfg.SocketURL, companyID, sink)
	})

	if cfg.CompanyID != "" {
		if err := sess.Start(ctx); err != nil {
			logrus.Errorf("initial sync: %s", err)
		}
		logrus.Printf("session started for company %s", cfg.CompanyID)
	} else {
		logrus.Print("no company configured, waiting for login")
	}

	h := httpdelivery.NewHandler(sess, api, id)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	sess.Close()
	logrus.Print("portal stopped")
}
