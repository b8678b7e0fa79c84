package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/crm-backend/internal/app"
	"github.com/yungbote/crm-backend/internal/seed"
)

func main() {
	var fixturesPath string
	flag.StringVar(&fixturesPath, "fixtures", "", "YAML fixtures file (defaults to the embedded sample data)")
	flag.Parse()

	_ = godotenv.Load()
	// Seeding never needs the scheduler or the redis heartbeat.
	_ = os.Setenv("JOBS_ENABLED", "false")

	a, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	fixtures, err := loadFixtures(fixturesPath)
	if err != nil {
		a.Log.Error("Load fixtures failed", "error", err)
		a.Close()
		os.Exit(1)
	}

	seeder := seed.NewSeeder(a.Log, a.Services.Mutation, a.Services.Query)
	sum, err := seeder.Run(context.Background(), fixtures)
	if err != nil {
		a.Log.Error("Seeding failed", "error", err)
		a.Close()
		os.Exit(1)
	}

	a.Log.Info("Seeding finished",
		"customers_created", sum.CustomersCreated,
		"products_created", sum.ProductsCreated,
		"orders_created", sum.OrdersCreated,
		"rejected", len(sum.Errors),
	)
	for _, msg := range sum.Errors {
		fmt.Println(msg)
	}
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.DefaultFixtures()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return seed.ParseFixtures(raw)
}
