package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jrmarques7/ISABELA-TCC/app"
	"github.com/Jrmarques7/ISABELA-TCC/config"
	"github.com/Jrmarques7/ISABELA-TCC/database"
	"github.com/Jrmarques7/ISABELA-TCC/httpx"
	"github.com/Jrmarques7/ISABELA-TCC/log"
	"github.com/Jrmarques7/ISABELA-TCC/routes"
)

func main() {
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := httpx.HashPassword(os.Args[2])
		if err != nil {
			log.Fatal("main.hash_password:", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal("main.config:", err)
	}
	log.SetFormat(cfg.LogFormat)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	store, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer store.Close()

	if !cfg.AdminEnabled() {
		log.Warn("ADMIN_PASSWORD_HASH not set: delete, export and report endpoints are open")
	}

	app := app.App{
		Store:  store,
		Config: cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Error("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stop
		log.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("main.server.shutdown:", err)
		}
	}()

	log.Info("Listening on " + cfg.Url())
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
	}
	return err
}
