package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	raven "github.com/getsentry/raven-go"
	"github.com/rs/zerolog"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/config"
	"github.com/golang-cafe/company-directory/internal/job"
	"github.com/golang-cafe/company-directory/internal/storage"
	"github.com/golang-cafe/company-directory/internal/storage/memstore"
	"github.com/golang-cafe/company-directory/internal/storage/postgres"
	"github.com/golang-cafe/company-directory/internal/storage/redisstore"
)

func main() {
	feedPath := flag.String("feed", "postings.json", "path to the postings feed")
	flag.Parse()

	log.Println("backfilling companies from postings feed")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config %v", err)
	}
	if cfg.SentryDSN != "" {
		raven.SetDSN(cfg.SentryDSN)
	}
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("unable to open storage: %v", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	codec := blob.NewCodec(store, logger)
	directory := company.NewDirectory(codec)

	f, err := os.Open(*feedPath)
	if err != nil {
		log.Fatalf("unable to open postings feed: %v", err)
	}
	defer f.Close()
	var postings []job.Posting
	if err := json.NewDecoder(f).Decode(&postings); err != nil {
		log.Fatalf("unable to decode postings feed: %v", err)
	}

	created := directory.BulkBackfill(postings)
	log.Printf("backfilled %d companies from %d postings\n", created, len(postings))
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.GetDbConn(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.New(db), nil
	case "redis":
		return redisstore.New(cfg.RedisURL)
	default:
		return memstore.New()
	}
}
