// README: Entry point; loads config, wires services, starts HTTP server and the dispatch consumer.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bettercommute/internal/ai"
	"bettercommute/internal/config"
	httptransport "bettercommute/internal/http"
	"bettercommute/internal/infra"
	"bettercommute/internal/logger"
	"bettercommute/internal/maps"
	"bettercommute/internal/modules/booking"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/modules/dispatch"
	"bettercommute/internal/modules/support"
	"bettercommute/internal/modules/trip"
	"bettercommute/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	firebase, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile, cfg.Firebase.StorageBucket)
	if err != nil {
		zl.Fatal("firebase init", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		zl.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	rabbit, err := infra.NewRabbit(cfg.Rabbit.URL)
	if err != nil {
		zl.Fatal("rabbitmq init", zap.Error(err))
	}
	defer rabbit.Close()

	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		zl.Fatal("maps init", zap.Error(err))
	}
	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		zl.Fatal("maps init", zap.Error(err))
	}

	var classifier support.Classifier
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiClassifier(ctx, cfg.AI.GeminiKey)
		if err != nil {
			zl.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		classifier = gemini
	}

	publisher, err := dispatch.NewPublisher(rabbit, cfg.Rabbit.BookingExchange)
	if err != nil {
		zl.Fatal("dispatch publisher init", zap.Error(err))
	}

	catalogStore := catalog.NewStore(dbPool, redisClient, cfg.Catalog.CacheTTL)
	catalogSvc := catalog.NewService(catalogStore, zl.Named("catalog"))

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, publisher, zl.Named("booking"))

	tripStore := trip.NewStore(redisClient, cfg.Trip.SessionTTL)
	tripSvc := trip.NewService(tripStore, placesSvc, routeSvc, catalogSvc, bookingSvc, zl.Named("trip"))

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore)

	supportStore := support.NewStore(dbPool)
	supportSvc := support.NewService(supportStore, firebase.Bucket(), classifier, zl.Named("support"))

	consumer := dispatch.NewConsumer(rabbit, cfg.Rabbit.AssignmentQueue, cfg.Rabbit.BookingExchange, bookingStore, zl.Named("dispatch"))
	go func() {
		if err := consumer.Run(ctx); err != nil {
			zl.Error("dispatch consumer stopped", zap.Error(err))
		}
	}()

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Verifier: firebase,
		Places:   placesSvc,
		Catalog:  catalogSvc,
		Trip:     tripSvc,
		Bookings: bookingSvc,
		Users:    userSvc,
		Support:  supportSvc,
		Log:      zl.Named("http"),
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zl.Error("http shutdown", zap.Error(err))
		}
	}()

	zl.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("http server", zap.Error(err))
	}
}
