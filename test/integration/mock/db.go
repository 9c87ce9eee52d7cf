// Package mock provides test doubles for the integration suite: an in-memory
// SQLite database, an embedded Redis, and a stub HTTP server for upstream
// providers.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection with the model set the suite
// migrates and resets between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared test database and migrates the given models. The
// connection is a process-wide singleton; the model map is keyed by table
// name so that feature steps can assert against tables generically.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = connect(models)
	})
	return db
}

func connect(models map[string]any) *Db {
	// A single connection keeps every gorm session on the same in-memory
	// database.
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// ClearDB removes every row from every registered table. Called between
// scenarios so each one starts from an empty database.
func (d *Db) ClearDB() error {
	for table, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
