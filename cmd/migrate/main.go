package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/config"
	"github.com/rs/zerolog"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
	)
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		logger = logger.Level(level)
	}

	if err := runMigration(logger, action, *migrationsDir, cfg.Database.DSN()); err != nil {
		logger.Fatal().Err(err).Str("action", action).Msg("migration failed")
	}

	logger.Info().Str("action", action).Msg("migration completed")
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(logger zerolog.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up", "down":
		apply := m.Up
		if action == "down" {
			apply = m.Down
		}
		if err := apply(); err != nil && err != migrate.ErrNoChange {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if err == migrate.ErrNilVersion {
				logger.Info().Msg("no migration applied")
				return nil
			}
			return err
		}
		logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("current migration version")
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
