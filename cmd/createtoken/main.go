package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/infrastructure/devops"
	"divron.com/attendance/security"
	"divron.com/attendance/storage"
	"github.com/joho/godotenv"
)

// Mints a session token for an existing employee, for poking the API by hand.
func main() {
	email := flag.String("email", core.SeedAdminEmail, "employee email to issue the token for")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

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

	employees, err := store.Employees(ctx)
	if err != nil {
		log.Fatalf("read employees: %v", err)
	}

	for _, e := range employees {
		if e.Email == *email {
			token, err := security.CreateSessionToken(e.ID, e.Email, e.Role, []byte(cfg.JWTSecret), *ttl)
			if err != nil {
				log.Fatalf("create token: %v", err)
			}
			fmt.Println(token)
			return
		}
	}
	log.Fatalf("no employee with email %s", *email)
}
