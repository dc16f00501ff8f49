// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Kind identifies the backing engine.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// DB wraps *sql.DB with the engine kind so the same query text runs on
// both drivers. Queries are written with $N placeholders in strictly
// ascending order; for SQLite they are rewritten to ? before execution.
type DB struct {
	*sql.DB
	kind Kind
}

// Tx mirrors DB for transactions.
type Tx struct {
	*sql.Tx
	kind Kind
}

var placeholderRe = regexp.MustCompile(`\$\d+`)

// Open connects to the database selected by databaseType ("sqlite" or
// "postgres") and verifies the connection. For SQLite, foreign key
// enforcement is switched on via DSN pragma if the caller did not.
func Open(databaseType, databaseURL string) (*DB, error) {
	switch Kind(databaseType) {
	case KindSQLite:
		dsn := databaseURL
		if !strings.Contains(dsn, "_pragma=foreign_keys") {
			if strings.Contains(dsn, "?") {
				dsn += "&_pragma=foreign_keys(1)"
			} else {
				dsn += "?_pragma=foreign_keys(1)"
			}
		}
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// An in-memory SQLite database exists per connection; the pool
		// must not open a second one.
		if strings.Contains(dsn, ":memory:") {
			conn.SetMaxOpenConns(1)
		}
		if err := conn.Ping(); err != nil {
			return nil, fmt.Errorf("sqlite ping failed: %w", err)
		}
		return &DB{DB: conn, kind: KindSQLite}, nil

	case KindPostgres:
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		return &DB{DB: conn, kind: KindPostgres}, nil

	default:
		return nil, fmt.Errorf("unknown database type %q (want sqlite or postgres)", databaseType)
	}
}

// Kind returns the backing engine kind.
func (d *DB) Kind() Kind {
	return d.kind
}

func (d *DB) bind(query string) string {
	if d.kind == KindSQLite {
		return placeholderRe.ReplaceAllString(query, "?")
	}
	return query
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.DB.Exec(d.bind(query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.DB.Query(d.bind(query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.DB.QueryRow(d.bind(query), args...)
}

func (d *DB) Begin() (*Tx, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, kind: d.kind}, nil
}

func (t *Tx) bind(query string) string {
	if t.kind == KindSQLite {
		return placeholderRe.ReplaceAllString(query, "?")
	}
	return query
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.Tx.Exec(t.bind(query), args...)
}

func (t *Tx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.Tx.Query(t.bind(query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.Tx.QueryRow(t.bind(query), args...)
}
