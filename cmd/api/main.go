package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appai "github.com/jmazoveracode/veracode-target-urls/internal/application/ai"
	"github.com/jmazoveracode/veracode-target-urls/internal/application/extract"
	"github.com/jmazoveracode/veracode-target-urls/internal/config"
	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
	aiclient "github.com/jmazoveracode/veracode-target-urls/internal/infra/ai/openai"
	mysqlp "github.com/jmazoveracode/veracode-target-urls/internal/infra/db/mysql"
	pgp "github.com/jmazoveracode/veracode-target-urls/internal/infra/db/postgres"
	"github.com/jmazoveracode/veracode-target-urls/internal/infra/httpserver"
	"github.com/jmazoveracode/veracode-target-urls/internal/infra/veracode"
	"github.com/jmazoveracode/veracode-target-urls/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	creds, err := veracode.LoadCredentials()
	if err != nil {
		log.Fatalf("credentials error: %v", err)
	}

	ctx := context.Background()

	client := veracode.NewClient(creds, cfg.API.BaseURL, cfg.API.UserAgent)
	svc := &extract.Service{Source: client, Clock: extract.SystemClock{}}

	var repo domain.Repository
	checkers := map[string]middleware.HealthChecker{}

	if cfg.HistoryEnabled() {
		switch cfg.Database.Driver {
		case "mysql":
			db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
			if err != nil {
				log.Fatalf("mysql connect error: %v", err)
			}
			defer db.Close()
			repo = mysqlp.NewRunRepository(db)
			checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
		case "postgres":
			db, err := pgp.Connect(ctx, cfg.PostgresDSN())
			if err != nil {
				log.Fatalf("postgres connect error: %v", err)
			}
			defer db.Close()
			repo = pgp.NewRunRepository(db)
			checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
		default:
			log.Fatalf("unsupported database driver: %s", cfg.Database.Driver)
		}
		svc.Repo = repo
	}

	var aiSvc *appai.Service
	if cfg.AIEnabled() {
		aiSvc = appai.NewService(aiclient.NewClient(cfg.AI.APIKey, cfg.AI.Model))
	}

	var apiKeys []string
	if v := os.Getenv("EXTRACTOR_API_KEYS"); v != "" {
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				apiKeys = append(apiKeys, k)
			}
		}
	}

	handler := httpserver.NewRouter(svc, aiSvc, repo, httpserver.Options{
		APIKeys:        apiKeys,
		HealthCheckers: checkers,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		// an extraction holds the request for 1+N upstream GETs
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
