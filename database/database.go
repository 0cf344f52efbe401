// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blinklabs-io/ghostpost/database/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Database is the transactional store backing the commitment ledger,
// the callback board, and the forum tables. All writes that must be
// atomic as a unit go through a single gorm transaction.
type Database struct {
	db      *gorm.DB
	logger  *slog.Logger
	dataDir string
}

// Config describes the database configuration.
type Config struct {
	// Logger is used for database log output. Defaults to discarding
	// log output.
	Logger *slog.Logger
	// DataDir is the persistent data directory. An empty value selects
	// an in-memory database, useful for testing.
	DataDir string
}

// New creates a Database. Uses an in-memory database if DataDir is empty.
func New(cfg *Config) (*Database, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	var gormDb *gorm.DB
	var err error
	if cfg.DataDir == "" {
		// Use in-memory database when no data directory is specified, useful for testing
		// cache=shared allows multiple connections to share the same in-memory database
		gormDb, err = gorm.Open(
			sqlite.Open(
				"file::memory:?cache=shared&_pragma=busy_timeout(10000)",
			),
			&gorm.Config{
				Logger:                 gormlogger.Discard,
				SkipDefaultTransaction: true,
				TranslateError:         true,
			},
		)
		if err != nil {
			return nil, err
		}
	} else {
		// Make sure that we can read data dir, and create if it doesn't exist
		if _, err := os.Stat(cfg.DataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			// Create data directory
			if err := os.MkdirAll(cfg.DataDir, fs.ModePerm); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		// Open sqlite DB
		dbPath := filepath.Join(
			cfg.DataDir,
			"ghostpost.sqlite",
		)
		// WAL journal mode, disable sync on write, wait out writer
		// contention instead of failing fast
		connOpts := "_pragma=journal_mode(WAL)&_pragma=sync(OFF)&_pragma=busy_timeout(10000)"
		gormDb, err = gorm.Open(
			sqlite.Open(
				fmt.Sprintf("file:%s?%s", dbPath, connOpts),
			),
			&gorm.Config{
				Logger:                 gormlogger.Discard,
				SkipDefaultTransaction: true,
				TranslateError:         true,
			},
		)
		if err != nil {
			return nil, err
		}
	}
	db := &Database{
		db:      gormDb,
		dataDir: cfg.DataDir,
		logger:  cfg.Logger,
	}
	if err := db.init(); err != nil {
		return nil, err
	}
	// Create table schemas
	for _, model := range models.MigrateModels {
		db.logger.Debug(fmt.Sprintf("creating table: %#v", model))
		if err := db.db.AutoMigrate(model); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (d *Database) init() error {
	if d.logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		d.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	// Configure tracing for GORM
	if err := d.db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return err
	}
	return nil
}

// DB returns the underlying gorm DB handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Transaction runs the given function inside a single database
// transaction, rolling back on error.
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.db.Transaction(fn)
}

// resolveDB returns the transaction handle when one is provided and
// the base handle otherwise.
func (d *Database) resolveDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return d.db
}

// Close shuts down the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
