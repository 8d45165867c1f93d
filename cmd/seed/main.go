package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/service/seed"
	"github.com/vladislavdragonenkov/crm/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
)

// Утилита для разработки: наполняет базу фиксированными клиентами и товарами.
// Повторный запуск безопасен.
func main() {
	var dsn string
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: CRM_POSTGRES_DSN)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("CRM_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("CRM_POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("open postgres store: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		fail("ensure schema: %v", err)
	}

	seeder := seed.NewSeeder(
		postgres.NewCustomerRepository(store),
		postgres.NewProductRepository(store),
		log.WithField("component", "seeder"),
	)
	if err := seeder.Seed(); err != nil {
		fail("seed failed: %v", err)
	}

	fmt.Println("seeded initial data")
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
