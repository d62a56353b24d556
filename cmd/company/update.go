package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	raven "github.com/getsentry/raven-go"
	"github.com/rs/zerolog"

	"github.com/golang-cafe/company-directory/internal/blob"
	"github.com/golang-cafe/company-directory/internal/blocklist"
	"github.com/golang-cafe/company-directory/internal/company"
	"github.com/golang-cafe/company-directory/internal/config"
	"github.com/golang-cafe/company-directory/internal/storage"
	"github.com/golang-cafe/company-directory/internal/storage/memstore"
	"github.com/golang-cafe/company-directory/internal/storage/postgres"
	"github.com/golang-cafe/company-directory/internal/storage/redisstore"
)

// Admin maintenance for the company directory: update profile fields,
// block/unblock a company or print its record.
func main() {
	name := flag.String("name", "", "company name, exact and case sensitive")
	biography := flag.String("biography", "", "company biography")
	website := flag.String("website", "", "company website url")
	industry := flag.String("industry", "", "company industry")
	foundedYear := flag.String("founded", "", "company founded year")
	companySize := flag.String("size", "", "company size band")
	logoImageID := flag.String("logo", "", "company logo image id")
	block := flag.Bool("block", false, "block the company")
	unblock := flag.Bool("unblock", false, "unblock the company")
	report := flag.Bool("report", false, "bump the company's moderation report counter")
	show := flag.Bool("show", false, "print the company record and exit")
	flag.Parse()

	if *name == "" {
		log.Fatal("name cannot be empty")
	}
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
	blocked := blocklist.NewList(codec, directory)

	switch {
	case *show:
		c, ok := directory.Get(*name)
		if !ok {
			log.Fatalf("no company record for %q", *name)
		}
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		fmt.Printf("average salary %s, reported %s, %d reviews, %d followers\n",
			humanize.Comma(int64(c.Stats.AverageSalary)),
			humanize.Comma(int64(c.Stats.AverageReportedSalary)),
			c.Stats.TotalReviews,
			c.Stats.FollowCount,
		)
	case *block:
		blocked.Block(*name)
		log.Printf("blocked %s\n", *name)
	case *unblock:
		blocked.Unblock(*name)
		log.Printf("unblocked %s\n", *name)
	case *report:
		if !directory.AddReport(*name) {
			log.Fatalf("no company record for %q", *name)
		}
		log.Printf("reported %s\n", *name)
	default:
		directory.Upsert(*name, company.Update{
			Biography:   *biography,
			Website:     *website,
			Industry:    *industry,
			FoundedYear: *foundedYear,
			CompanySize: *companySize,
			LogoImageID: *logoImageID,
		})
		log.Println(*name)
	}
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
