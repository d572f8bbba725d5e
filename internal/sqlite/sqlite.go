package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/internal/random"

	_ "embed"
	_ "github.com/mattn/go-sqlite3" // Enable sqlite3 driver
)

//go:embed schema.sql
var schemaDefinition string

// Database holds the split connection pools for the session store: one
// writer, many readers.
type Database struct {
	ReadWrite *sqlx.DB
	ReadOnly  *sqlx.DB
	logger    *slog.Logger
}

// NewDatabase connects to the database and applies the schema.
//
// It establishes two database connections, one for read/write operations and one for read-only operations.
// This is a best practice mentioned in https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
//
// The url parameter is the path to the SQLite database file or ":memory:" for an in-memory database.
func NewDatabase(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	var (
		err         error
		readWriteDB *sqlx.DB
		readDB      *sqlx.DB
	)

	// For in-memory databases, we need shared cache mode so that both connections access the same data.
	//
	// Parallel tests need a different database name for each test to avoid sharing data.
	// See https://www.sqlite.org/inmemorydb.html.
	isInMemory := strings.Contains(url, ":memory:")
	inMemoryConfig := ""
	if isInMemory {
		var randomID string
		if randomID, err = random.Letters(20); err != nil {
			return nil, errors.Wrap(err, "generate random ID")
		}
		url = randomID
		inMemoryConfig = "&mode=memory&cache=shared"
	}
	commonConfig := strings.Join([]string{
		// Write-ahead logging enables higher performance and concurrent readers.
		"_journal_mode=wal",
		// Avoids SQLITE_BUSY errors when the database is under load.
		"_busy_timeout=5000",
		// Increases performance at the cost of durability https://www.sqlite.org/pragma.html#pragma_synchronous.
		"_synchronous=normal",
		// Stores temporary tables and indices in memory.
		"_temp_store=memory",
	}, "&")

	readWriteConfig := fmt.Sprintf("file:%s?_txlock=immediate&%s%s", url, commonConfig, inMemoryConfig)
	if readWriteDB, err = sqlx.ConnectContext(ctx, "sqlite3", readWriteConfig); err != nil {
		return nil, errors.Wrap(err, "connect read-write", slog.String("url", url))
	}
	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	if _, err = readWriteDB.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, errors.Wrap(err, "apply schema")
	}

	readConfig := fmt.Sprintf("file:%s?_txlock=deferred&_query_only=true&%s%s", url, commonConfig, inMemoryConfig)
	if readDB, err = sqlx.ConnectContext(ctx, "sqlite3", readConfig); err != nil {
		return nil, errors.Wrap(err, "connect read-only", slog.String("url", url))
	}
	readDB.SetMaxOpenConns(10)
	readDB.SetMaxIdleConns(10)
	readDB.SetConnMaxLifetime(time.Hour)
	readDB.SetConnMaxIdleTime(time.Hour)

	return &Database{
		ReadWrite: readWriteDB,
		ReadOnly:  readDB,
		logger:    logger.With("source", "Database"),
	}, nil
}

// Close closes both connection pools.
func (db *Database) Close() error {
	var errs []error
	if err := db.ReadOnly.Close(); err != nil {
		errs = append(errs, errors.Wrap(err, "close read-only pool"))
	}
	if err := db.ReadWrite.Close(); err != nil {
		errs = append(errs, errors.Wrap(err, "close read-write pool"))
	}
	return errors.Join(errs...)
}
