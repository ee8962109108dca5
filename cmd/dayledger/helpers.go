package main

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/saadjs/dayledger/internal/app"
	"github.com/saadjs/dayledger/internal/config"
	"github.com/saadjs/dayledger/internal/db"
	"github.com/saadjs/dayledger/internal/devicetime"
	"github.com/saadjs/dayledger/internal/kvstore"
	"github.com/saadjs/dayledger/internal/ledger"
	"github.com/saadjs/dayledger/internal/logging"
)

// pinnedDateKey records a past date chosen with "dayledger date" so later
// invocations keep showing it instead of rolling straight back to today.
const pinnedDateKey = "dayledger.cli.pinned"

type env struct {
	cfg        config.Config
	db         *sql.DB
	store      *kvstore.SQLite
	clock      *devicetime.Service
	ledger     *ledger.Ledger
	logger     *zap.Logger
	rolledOver bool
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cfg.DBPath == "" {
		p, err := app.DefaultDBPath()
		if err != nil {
			return config.Config{}, err
		}
		cfg.DBPath = p
	}
	return cfg, nil
}

func openDB(path string) (*sql.DB, error) {
	if err := app.EnsureDBDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return sqldb, nil
}

// withEnv wires config, storage and the ledger, and runs the start-up
// rollover check before handing control to run. The check is skipped while
// the active day is the pinned one.
func withEnv(run func(*env) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sqldb, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	e := &env{
		cfg:    cfg,
		db:     sqldb,
		store:  kvstore.NewSQLite(sqldb),
		clock:  devicetime.New(nil, cfg.Timezone, cfg.Locale, logger),
		logger: logger,
	}
	e.ledger = ledger.New(e.store, e.clock, logger, ledger.WithHistoryLimit(cfg.HistoryLimit))
	if e.pinnedDate() != e.ledger.Current().Date {
		e.rolledOver = e.ledger.CheckAndRollover()
	}
	return run(e)
}

func (e *env) pinnedDate() string {
	v, ok, err := e.store.Get(pinnedDateKey)
	if err != nil {
		e.logger.Warn("read pinned date failed", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return string(v)
}

func (e *env) pinDate(date string) error {
	if date == e.ledger.Today() {
		date = ""
	}
	return e.store.Set(pinnedDateKey, []byte(date))
}

func formatNumber(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
