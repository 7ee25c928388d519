package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dollshop-backend/internal/config"
	"dollshop-backend/internal/db"
	"dollshop-backend/internal/httpserver"
	alarmrepo "dollshop-backend/internal/repository/alarm"
	calendarrepo "dollshop-backend/internal/repository/calendar"
	cartrepo "dollshop-backend/internal/repository/cart"
	clothesrepo "dollshop-backend/internal/repository/clothes"
	commentrepo "dollshop-backend/internal/repository/comment"
	devicerepo "dollshop-backend/internal/repository/device"
	musicrepo "dollshop-backend/internal/repository/music"
	orderrepo "dollshop-backend/internal/repository/order"
	postrepo "dollshop-backend/internal/repository/post"
	productrepo "dollshop-backend/internal/repository/product"
	modelrepo "dollshop-backend/internal/repository/productmodel"
	userrepo "dollshop-backend/internal/repository/user"
	authsvc "dollshop-backend/internal/service/auth"
	cartsvc "dollshop-backend/internal/service/cart"
	catalogsvc "dollshop-backend/internal/service/catalog"
	companionsvc "dollshop-backend/internal/service/companion"
	forumsvc "dollshop-backend/internal/service/forum"
	ordersvc "dollshop-backend/internal/service/order"
	usersvc "dollshop-backend/internal/service/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool)
	clothesRepo := clothesrepo.NewPostgres(dbpool)
	modelRepo := modelrepo.NewPostgres(dbpool)
	postRepo := postrepo.NewPostgres(dbpool)
	commentRepo := commentrepo.NewPostgres(dbpool)
	deviceRepo := devicerepo.NewPostgres(dbpool)
	alarmRepo := alarmrepo.NewPostgres(dbpool)
	musicRepo := musicrepo.NewPostgres(dbpool)
	calendarRepo := calendarrepo.NewPostgres(dbpool)

	deps := httpserver.Deps{
		Auth:      authsvc.New(userRepo, cartRepo, cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL),
		Users:     usersvc.New(userRepo, cartRepo),
		Carts:     cartsvc.New(cartRepo),
		Orders:    ordersvc.New(orderRepo),
		Catalog:   catalogsvc.New(productRepo, clothesRepo, modelRepo),
		Forum:     forumsvc.New(postRepo, commentRepo),
		Companion: companionsvc.New(deviceRepo, alarmRepo, musicRepo, calendarRepo),
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
