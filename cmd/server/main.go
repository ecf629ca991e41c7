package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stonks/internal/auth"
	"stonks/internal/config"
	"stonks/internal/db"
	"stonks/internal/handler"
	"stonks/internal/repository"
	"stonks/internal/router"
	"stonks/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := db.NewMongo(ctx, cfg.MongoURI())
	cancel()
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	userRepo := repository.NewUserRepository(client)
	userService := service.NewUserService(userRepo)
	secrets := auth.NewStaticSecret(cfg.APIPassword)
	userHandler := handler.NewUserHandler(userService, secrets)

	router.Register(e, cfg, userHandler)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
