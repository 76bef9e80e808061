package accountrepo

import (
	"fmt"
	"strings"
)

// Dialect selects the SQL flavor of the backing store.
type Dialect string

// Supported SQL dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite3"
)

// DialectForDriver maps a database/sql driver name to its dialect.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case "postgres":
		return DialectPostgres, nil
	case "mysql":
		return DialectMySQL, nil
	case "sqlite3", "sqlite":
		return DialectSQLite, nil
	}

	return "", fmt.Errorf("unsupported database driver %q", driver)
}

// UpsertQuery returns the insert-or-update statement for the dialect:
// replace-on-conflict for embedded engines, update-on-duplicate-key for
// client/server engines.
func (d Dialect) UpsertQuery() string {
	switch d {
	case DialectSQLite:
		return `INSERT OR REPLACE INTO bank_accounts (uuid, name, coins, level) VALUES (?, ?, ?, ?)`
	case DialectMySQL:
		return `INSERT INTO bank_accounts (uuid, name, coins, level) VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name), coins = VALUES(coins), level = VALUES(level)`
	default:
		return d.Rebind(`INSERT INTO bank_accounts (uuid, name, coins, level) VALUES (?, ?, ?, ?)
ON CONFLICT (uuid) DO UPDATE SET name = EXCLUDED.name, coins = EXCLUDED.coins, level = EXCLUDED.level`)
	}
}

// Rebind rewrites ? placeholders into the dialect's bindvar format.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var sb strings.Builder

	n := 0

	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
