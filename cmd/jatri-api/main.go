// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jatriwheels/internal/config"
	httptransport "jatriwheels/internal/http"
	"jatriwheels/internal/infra"
	"jatriwheels/internal/maps"
	"jatriwheels/internal/modules/admin"
	"jatriwheels/internal/modules/booking"
	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/modules/rental"
	"jatriwheels/internal/modules/testimonial"
	"jatriwheels/internal/modules/user"
	"jatriwheels/internal/modules/vehicle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal("geocoder init", zap.Error(err))
	}
	distances, err := maps.NewDistanceService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal("distance service init", zap.Error(err))
	}

	quoteSvc := quote.NewService(geocoder, distances, cfg.Quote, logger)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore)

	rentalStore := rental.NewStore(dbPool)
	rentalSvc := rental.NewService(rentalStore)

	vehicleStore := vehicle.NewStore(dbPool)
	vehicleSvc := vehicle.NewService(vehicleStore)

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore, bookingStore)

	adminStore := admin.NewStore(dbPool)
	tokens := admin.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	revoker := admin.NewRedisRevoker(redisClient)
	adminSvc := admin.NewService(adminStore, tokens, revoker, logger)
	statsSvc := admin.NewStatsService(bookingStore, userStore)

	testimonialStore := testimonial.NewStore(dbPool)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Quote:          quoteSvc,
		Booking:        bookingSvc,
		Rental:         rentalSvc,
		Vehicle:        vehicleSvc,
		User:           userSvc,
		Admin:          adminSvc,
		Stats:          statsSvc,
		Testimonials:   testimonialStore,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Logger:         logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}
