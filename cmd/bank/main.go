package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"bank-console/internal/config"
	"bank-console/internal/console"
	"bank-console/internal/database"
	"bank-console/internal/repositories"
	"bank-console/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	hashPIN := flag.String("hash-pin", "", "print the bcrypt hash of a teller PIN for TELLER_PIN_HASH and exit")
	showMetrics := flag.Bool("metrics", true, "print session counters on exit")
	flag.Parse()

	if err := loadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *hashPIN != "" {
		hash, err := services.HashPIN(*hashPIN, cfg.Security.BCryptCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	logger, closeLog, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(cfg, logger, *showMetrics); err != nil {
		slog.Error("bank console stopped", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, showMetrics bool) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize audit database: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	activityLogger := services.NewActivityLogger(logger)

	auditService := services.NewAuditService(
		repositories.NewAuditLogRepository(db.DB),
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		activityLogger,
		metrics,
	)
	customerRepo := repositories.NewCustomerRepository()
	bankService := services.NewBankService(customerRepo, auditService, activityLogger, metrics, cfg.Accounts.Terms(), time.Now)
	statementService := services.NewStatementService(customerRepo, auditService, activityLogger, metrics, cfg.Accounts.EndOfMonthGuard)
	tellerAuth := services.NewTellerAuth(
		cfg.Security.TellerPINHash,
		cfg.Security.MaxFailedAttempts,
		cfg.Security.LockoutWindow,
		auditService,
		activityLogger,
		metrics,
	)

	sessionID := uuid.NewString()
	ctx := services.WithSessionID(context.Background(), sessionID)

	seeded, err := services.NewCustomerSeeder(bankService, 0).Seed(ctx, cfg.App.SeedDemoCustomers, cfg.App.RandomCustomers)
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	slog.Info("bank console started",
		"session_id", sessionID,
		"environment", cfg.App.Environment,
		"customers", seeded,
		"teller_auth", tellerAuth.Enabled(),
		"eom_guard", cfg.Accounts.EndOfMonthGuard)

	c := console.New(
		console.NewPrompter(os.Stdin, os.Stdout),
		bankService,
		statementService,
		auditService,
		tellerAuth,
		console.Options{
			BankName:       cfg.App.BankName,
			MinTransaction: cfg.Limits.MinTransaction,
			MaxTransaction: cfg.Limits.MaxTransaction,
		},
		time.Now,
	)
	if err := c.Run(ctx); err != nil {
		return err
	}

	if showMetrics {
		lines, err := services.SummarizeCounters(registry)
		if err != nil {
			return err
		}
		fmt.Println("Session counters:")
		for _, line := range lines {
			fmt.Println("  " + line)
		}
	}

	slog.Info("bank console closed", "session_id", sessionID)
	return nil
}

// loadEnvFile loads path into the environment when it exists. Variables
// already set take precedence.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// newLogger writes JSON logs to LOG_FILE, or to stderr when unset
func newLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelWarn
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog, nil
}
