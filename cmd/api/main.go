package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/osystem/os-api/internal/auth"
	"github.com/osystem/os-api/internal/bootstrap"
	"github.com/osystem/os-api/internal/checklist"
	checklistrepo "github.com/osystem/os-api/internal/checklist/repo"
	"github.com/osystem/os-api/internal/order"
	orderrepo "github.com/osystem/os-api/internal/order/repo"
	"github.com/osystem/os-api/internal/router"
	userrepo "github.com/osystem/os-api/internal/user/repo"
	"github.com/osystem/os-api/pkg/database"
	"github.com/osystem/os-api/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.InitLogger(utilities.LoggerConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting os-api")

	// init db
	cfg := database.ConfigFromEnv()
	sqlDB, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	// wrap with sqlx for convenience in repos/services
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")
	defer sqlxDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// repositories
	users := userrepo.NewPostgresDirectory(sqlxDB)
	orders := orderrepo.NewPostgresStore(sqlxDB)
	templates := checklistrepo.NewPostgresRepo(sqlxDB)

	for _, ensure := range []func(context.Context) error{
		users.EnsureTable, orders.EnsureTable, templates.EnsureTable,
	} {
		if err := ensure(ctx); err != nil {
			sugar.Fatalf("ensure table: %v", err)
		}
	}

	if err := bootstrap.Seed(ctx, sugar, users, templates, bootstrap.ConfigFromEnv()); err != nil {
		sugar.Fatalf("seed: %v", err)
	}

	// services and handlers
	authCfg := auth.ConfigFromEnv()
	authHandler := auth.NewHandler(auth.NewService(users, authCfg), sugar)
	orderHandler := order.NewHandler(order.NewService(orders), sugar)
	checklistHandler := checklist.NewHandler(templates, sugar)

	handler := router.New(sugar, authHandler, orderHandler, checklistHandler, []byte(authCfg.SecretKey))

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8000"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// run server in background
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	sugar.Infow("service is running", "addr", addr)

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
