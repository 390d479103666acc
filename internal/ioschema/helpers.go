package ioschema

import "fmt"

type columnDef struct {
	table, column string
	varchar       int
}

// collatedColumns are name columns used as lookup keys by
// the Weakness import.
var collatedColumns = []columnDef{
	{"types", "name", 50},
	{"pokemons", "name", 100},
}

// formatCollationSQL formats the collation SQL statement.
func formatCollationSQL(col columnDef) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		col.table, col.column, col.varchar,
	)
}
