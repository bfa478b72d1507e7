package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/morningmoney/internal/config"
	"github.com/carson-networks/morningmoney/internal/storage/investment"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

// Storage owns the SQLite database. It is opened once at process start and
// closed at shutdown.
type Storage struct {
	DB           *sql.DB
	exec         bob.DB
	Transactions transaction.ITransactionTable
	Investments  investment.IInvestmentTable
}

// DSN builds the modernc sqlite connection string for path.
func DSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// EnsureDir creates the directory that will hold the database file.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}

// Open creates the database directory if needed, migrates the schema and
// returns a ready Storage.
func Open(ctx context.Context, env *config.Config) (*Storage, error) {
	if err := EnsureDir(env.DBPath); err != nil {
		return nil, err
	}

	dsn := DSN(env.DBPath)
	if _, err := RunMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// one local writer; a single connection also serializes SQLite access
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	exec := bob.NewDB(db)
	reader := NewReader(exec)

	logrus.WithField("dbPath", env.DBPath).Debug("Storage.Open.ready")

	return &Storage{
		DB:           db,
		exec:         exec,
		Transactions: reader.Transactions,
		Investments:  reader.Investments,
	}, nil
}

// Write begins a database transaction and returns a Writer bound to it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
