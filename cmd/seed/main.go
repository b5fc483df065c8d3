package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/infrastructure/devops"
	"divron.com/attendance/storage"
	"github.com/joho/godotenv"
)

// Seeds the file backing with demo employees and a bit of attendance history.
func main() {
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
	if err := store.Init(ctx); err != nil {
		log.Fatalf("init store: %v", err)
	}

	demo := []core.Registration{
		{Name: "Asha Patel", Email: "asha@divron.com", Department: "Engineering", Password: "changeme1"},
		{Name: "Tom Keller", Email: "tom@divron.com", Department: "Engineering", Password: "changeme2"},
		{Name: "Mei Lin", Email: "mei@divron.com", Department: "Finance", Password: "changeme3"},
	}

	for _, reg := range demo {
		emp, err := core.Register(ctx, store, reg, time.Now())
		if err == core.ErrDuplicateEmail {
			fmt.Printf("skipping %s: already registered\n", reg.Email)
			continue
		}
		if err != nil {
			log.Fatalf("register %s: %v", reg.Email, err)
		}

		// one on-time check-in/out pair yesterday per employee
		yesterday := time.Now().AddDate(0, 0, -1)
		morning := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 8, 30, 0, 0, yesterday.Location())
		record, err := core.CheckIn(ctx, store, emp.ID, morning)
		if err != nil {
			log.Fatalf("check in %s: %v", reg.Email, err)
		}
		if _, err := core.CheckOut(ctx, store, emp.ID, morning.Add(9*time.Hour)); err != nil {
			log.Fatalf("check out %s: %v", reg.Email, err)
		}
		fmt.Printf("seeded %s (%s, %s)\n", emp.Name, emp.ID, record.Status)
	}
}
