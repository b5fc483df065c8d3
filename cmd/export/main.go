package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/infrastructure/devops"
	"divron.com/attendance/storage"
	"github.com/joho/godotenv"
)

// Offline report export against the file backing, without running the server.
func main() {
	periodFlag := flag.String("period", "daily", "report period: daily, monthly or yearly")
	format := flag.String("format", "csv", "output format: csv or xlsx")
	out := flag.String("out", "", "output path (default: conventional report filename)")
	flag.Parse()

	period, err := core.ParsePeriod(*periodFlag)
	if err != nil {
		log.Fatalf("bad period: %v", err)
	}
	if *format != "csv" && *format != "xlsx" {
		log.Fatalf("bad format %q: must be csv or xlsx", *format)
	}

	_ = godotenv.Load()
	cfg, err := devops.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	kv, err := storage.NewFile(cfg.Storage.Dir)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}

	store := core.NewStore(kv)
	records, err := store.Attendance(ctx)
	if err != nil {
		log.Fatalf("read attendance: %v", err)
	}

	now := time.Now()
	filtered := core.FilterByPeriod(records, period, now)

	path := *out
	if path == "" {
		path = core.ReportFileName(period, now, *format)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if *format == "csv" {
		err = core.WriteCSV(f, filtered)
	} else {
		err = core.WriteXLSX(f, filtered)
	}
	if err != nil {
		log.Fatalf("write report: %v", err)
	}

	fmt.Printf("Wrote %d records to %s\n", len(filtered), path)
}
