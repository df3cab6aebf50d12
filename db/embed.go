// Package db provides the embedded database schema.
package db

import _ "embed"

// Schema contains the DDL statements for the products and orders tables.
// Every statement is idempotent so it can be applied on each start.
//
//go:embed migrations/001_schema.sql
var Schema string
