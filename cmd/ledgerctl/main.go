// Command ledgerctl performs one-off maintenance on the ledger store:
// applying schema migrations and creating profiles from the shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-ledger/internal/config"
	"github.com/Dan9191/finance-ledger/internal/repository"
	"github.com/Dan9191/finance-ledger/internal/service"
)

const usage = `usage:
  ledgerctl migrate
  ledgerctl add-profile -name NAME -username USERNAME -password PASSWORD`

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	dialect, err := repository.ParseDialect(cfg.DBDriver)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	switch os.Args[1] {
	case "migrate":
		if err := repository.Migrate(dialect, cfg.DBConn); err != nil {
			logger.Fatalf("Migration failed: %v", err)
		}
		logger.Info("Database schema is up to date")
	case "add-profile":
		if err := addProfile(logger, cfg, dialect, os.Args[2:]); err != nil {
			logger.Fatal(err)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func addProfile(logger *logrus.Logger, cfg *config.Config, dialect repository.Dialect, args []string) error {
	fs := flag.NewFlagSet("add-profile", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	username := fs.String("username", "", "login identifier")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.Open(ctx, dialect, cfg.DBConn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewService(repository.NewRepository(db, dialect), logger, cfg)
	id, err := svc.Register(ctx, *name, *username, *password)
	switch {
	case errors.Is(err, service.ErrDuplicateLogin):
		return fmt.Errorf("profile with username %q already exists", *username)
	case errors.Is(err, service.ErrInvalidInput):
		fs.Usage()
		return err
	case err != nil:
		return err
	}

	fmt.Printf("Profile %q added with ID: %d\n", *name, id)
	return nil
}
