package main

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/hackhub-team/hackhub/internal/api"
	"github.com/hackhub-team/hackhub/internal/auth"
	"github.com/hackhub-team/hackhub/internal/config"
	"github.com/hackhub-team/hackhub/internal/logging"
	"github.com/hackhub-team/hackhub/internal/metrics"
	"github.com/hackhub-team/hackhub/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

func main() {
	config.SetupCommon()
	logging.Init()

	cfg := config.New()
	logrus.Debugf("config: %+v", cfg)

	ctx := context.Background()

	var (
		store    storage.Storage
		provider auth.Provider
	)
	if cfg.Dev {
		logrus.Warn("dev mode: in-memory storage, bearer tokens accepted as uids")
		store = storage.NewMemory()
		devProvider := auth.NewStaticProvider()
		devProvider.Permissive = true
		provider = devProvider
	} else {
		var opts []option.ClientOption
		if cfg.FirebaseCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
		if err != nil {
			logrus.Fatalf("Failed to create firebase app: %v", err)
		}

		authClient, err := app.Auth(ctx)
		if err != nil {
			logrus.Fatalf("Failed to create auth client: %v", err)
		}

		fsClient, err := app.Firestore(ctx)
		if err != nil {
			logrus.Fatalf("Failed to create firestore client: %v", err)
		}
		defer fsClient.Close()

		store = storage.NewFirestore(fsClient)
		provider = auth.NewFirebaseProvider(authClient)
	}

	metrics.Register()

	service := api.NewService(cfg, store, provider)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.CORS())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	service.RegisterRoutes(e)

	logrus.Infof("starting server on %s", cfg.ListenAddr)
	if err := e.Start(cfg.ListenAddr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
