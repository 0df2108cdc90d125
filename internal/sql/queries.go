// Package sql carries the SQL shipped with the binary: schema migrations
// and the statements used by the Postgres report store.
package sql

import (
	"embed"
)

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/insert_report.sql
var InsertReport string

//go:embed queries/select_fa_number.sql
var SelectFANumber string
