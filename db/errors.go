// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// SQLite extended result codes for constraint failures. The primary code
// for all of them is 19 (SQLITE_CONSTRAINT).
const (
	sqliteConstraint           = 19
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// Postgres error classes/codes (see pgerrcode).
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a uniqueness constraint failure
// (duplicate name, citation URL, or composite key) on either engine.
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return true
		case sqliteConstraint:
			return strings.Contains(se.Error(), "UNIQUE")
		}
		return false
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return string(pe.Code) == pgUniqueViolation
	}
	return false
}

// IsCheckViolation reports whether err is a range, ordering, domain-value,
// or NOT NULL violation.
func IsCheckViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraintCheck, sqliteConstraintNotNull:
			return true
		case sqliteConstraint:
			msg := se.Error()
			return strings.Contains(msg, "CHECK") || strings.Contains(msg, "NOT NULL")
		}
		return false
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return string(pe.Code) == pgCheckViolation || string(pe.Code) == pgNotNullViolation
	}
	return false
}

// IsForeignKeyViolation reports whether err is a referential integrity
// failure (a write referencing a missing parent row).
func IsForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraintForeignKey:
			return true
		case sqliteConstraint:
			return strings.Contains(se.Error(), "FOREIGN KEY")
		}
		return false
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return string(pe.Code) == pgForeignKeyViolation
	}
	return false
}
