package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	appai "github.com/jmazoveracode/veracode-target-urls/internal/application/ai"
	"github.com/jmazoveracode/veracode-target-urls/internal/application/extract"
	"github.com/jmazoveracode/veracode-target-urls/internal/config"
	aiclient "github.com/jmazoveracode/veracode-target-urls/internal/infra/ai/openai"
	mysqlp "github.com/jmazoveracode/veracode-target-urls/internal/infra/db/mysql"
	pgp "github.com/jmazoveracode/veracode-target-urls/internal/infra/db/postgres"
	"github.com/jmazoveracode/veracode-target-urls/internal/infra/report"
	minioStore "github.com/jmazoveracode/veracode-target-urls/internal/infra/storage"
	"github.com/jmazoveracode/veracode-target-urls/internal/infra/veracode"
)

// Flagless by design: running the binary performs the full extraction and
// report. Upstream failures are printed and the process still exits 0; only
// startup problems (config, credentials, database) are fatal.
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

	// optional run history
	if cfg.HistoryEnabled() {
		switch cfg.Database.Driver {
		case "mysql":
			db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
			if err != nil {
				log.Fatalf("mysql connect error: %v", err)
			}
			defer db.Close()
			svc.Repo = mysqlp.NewRunRepository(db)
		case "postgres":
			db, err := pgp.Connect(ctx, cfg.PostgresDSN())
			if err != nil {
				log.Fatalf("postgres connect error: %v", err)
			}
			defer db.Close()
			svc.Repo = pgp.NewRunRepository(db)
		default:
			log.Fatalf("unsupported database driver: %s", cfg.Database.Driver)
		}
	}

	fmt.Println("=== Veracode Dynamic Analysis Target URL Extractor ===")
	fmt.Println()

	res := svc.Extract(ctx)

	report.Print(os.Stdout, res.Records)
	if len(res.Records) == 0 {
		return
	}

	if err := report.WriteFile(cfg.Output.File, res.Records); err != nil {
		log.Printf("report write error: %v", err)
		return
	}
	fmt.Printf("Results saved to: %s\n", cfg.Output.File)

	if cfg.MinioEnabled() {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Printf("minio init error: %v", err)
		} else {
			key := fmt.Sprintf("reports/%s/%s", res.Run.ID, filepath.Base(cfg.Output.File))
			url, err := store.Upload(ctx, cfg.Output.File, key)
			if err != nil {
				log.Printf("report upload error: %v", err)
			} else {
				fmt.Printf("Report uploaded to: %s\n", url)
				res.Run.ArtifactURL = url
				if svc.Repo != nil {
					if err := svc.Repo.SaveRun(ctx, res.Run); err != nil {
						log.Printf("run history: save artifact url: %v", err)
					}
				}
			}
		}
	}

	if cfg.AIEnabled() {
		aiSvc := appai.NewService(aiclient.NewClient(cfg.AI.APIKey, cfg.AI.Model))
		summary, err := aiSvc.SummarizeRecords(ctx, res.Records)
		if err != nil {
			log.Printf("coverage summary error: %v", err)
		} else {
			fmt.Println("\n=== COVERAGE SUMMARY ===")
			fmt.Println(summary)
		}
	}
}
