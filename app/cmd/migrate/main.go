package main

import (
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"vocablo/app/config"
	"vocablo/app/utils/database"
	"vocablo/app/utils/logger"
	"vocablo/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	conn, err := database.Open(cfg.DSN(), appLogger)
	if err != nil {
		appLogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		appLogger.Error("failed to open embedded migrations", "error", err)
		os.Exit(1)
	}

	migrator := migration.NewMigrator(conn.DB(), appLogger, sub)

	switch *command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	default:
		appLogger.Error("unknown command", "command", *command)
		os.Exit(1)
	}
	if err != nil {
		appLogger.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}

	appLogger.Info("migration complete", "command", *command)
}
