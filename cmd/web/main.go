package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/parkdui/LG-Thingo/internal/ai"
	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/envstruct"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/logging"
	"github.com/parkdui/LG-Thingo/internal/pprofserver"
	"github.com/parkdui/LG-Thingo/internal/reply"
	"github.com/parkdui/LG-Thingo/internal/repositories"
	"github.com/parkdui/LG-Thingo/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	catalog        *characters.Catalog
	replies        *reply.Service
	transcripts    *repositories.TranscriptRepository
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
}

type config struct {
	Addr         string        `env:"THINGO_ADDR" envDefault:"localhost:4000"`
	PprofPort    string        `env:"THINGO_PPROF_PORT" envDefault:":6060"`
	SqliteURL    string        `env:"THINGO_SQLITE_URL" envDefault:"./thingo.sqlite"`
	OpenAIAPIKey string        `env:"OPENAI_API_KEY" envDefault:""`
	ReplyTimeout time.Duration `env:"THINGO_REPLY_TIMEOUT" envDefault:"30s"`
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// Missing .env is fine, the environment may be configured externally.
	if err := godotenv.Load(); err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "no .env file loaded")
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

// run wires the application and starts the server. It takes its dependencies
// as arguments so tests can inject an environment and capture the logs.
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	catalog := characters.NewCatalog()
	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.ReplyTimeout)

	app := application{
		logger:         logger,
		catalog:        catalog,
		replies:        reply.NewService(catalog, aiClient, logger),
		transcripts:    repositories.NewTranscriptRepository(sessionManager, logger),
		sessionManager: sessionManager,
		htmx:           htmx.New(),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
