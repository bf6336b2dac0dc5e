package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/star_burger/config"
	"github.com/Gunvolt24/star_burger/internal/geocode"
	"github.com/Gunvolt24/star_burger/internal/geocode/yandex"
	"github.com/Gunvolt24/star_burger/internal/repo/postgres"
	"github.com/Gunvolt24/star_burger/pkg/logger"
)

// CLI-приложение для прогрева геокэша: адреса ресторанов и незавершённых
// заказов прогоняются через резолвер, чтобы первый отчёт менеджера
// не ждал внешний геокодер.
func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "total time budget for the warm-up run")
	ordersToo := flag.Bool("orders", true, "also warm addresses of pending orders")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	menuRepo := postgres.NewMenuRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	store := postgres.NewLocationStore(pool)
	provider := yandex.NewClient(cfg.Geocoder.APIKey, yandex.WithBaseURL(cfg.Geocoder.BaseURL))
	resolver := geocode.NewCachedResolver(store, provider, logg,
		geocode.WithTimeout(cfg.Geocoder.Timeout),
		geocode.WithTTL(cfg.Geocoder.CacheTTL),
	)

	addresses, err := menuRepo.RestaurantAddresses(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restaurant addresses: %v\n", err)
		os.Exit(1)
	}

	if *ordersToo {
		pending, err := orderRepo.ListPending(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pending orders: %v\n", err)
			os.Exit(1)
		}
		for _, o := range pending {
			addresses = append(addresses, o.Address)
		}
	}

	// схлопываем дубликаты, сохраняя порядок
	seen := make(map[string]struct{}, len(addresses))
	unique := addresses[:0]
	for _, addr := range addresses {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		unique = append(unique, addr)
	}

	if err := resolver.WarmUp(ctx, unique); err != nil {
		fmt.Fprintf(os.Stderr, "warm-up: %v\n", err)
		os.Exit(1)
	}

	resolved, failed := 0, 0
	for _, addr := range unique {
		if _, ok, err := resolver.Resolve(ctx, addr); err != nil {
			fmt.Fprintf(os.Stderr, "resolve %q: %v\n", addr, err)
			os.Exit(1)
		} else if ok {
			resolved++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "unresolved: %s\n", addr)
		}
	}

	fmt.Fprintf(os.Stderr, "warm-up done: %d resolved, %d unresolved of %d\n",
		resolved, failed, len(unique))
	if failed > 0 {
		os.Exit(2)
	}
}
