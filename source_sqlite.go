package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

type sqliteSource struct {
	db       *sql.DB
	workarea string
	log      *Logger
	mapper   *TypeMapper
}

func (s *sqliteSource) CurrentWorkarea(context.Context) (string, error) {
	if s.workarea != "" {
		return s.workarea, nil
	}
	return "main", nil
}

func (s *sqliteSource) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *sqliteSource) ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA table_info(%s)", quoteDouble(table)),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnDefinition
	for rows.Next() {
		var (
			cid     int
			name    string
			decl    string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &decl, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		base, length := splitSQLiteDeclaredType(decl)
		cols = append(cols, ColumnDefinition{
			Name:       name,
			NativeType: base,
			Nullable:   notNull == 0,
			CharMaxLen: length,
			// SQLite stores text verbatim; no UTC read expressions.
		})
	}
	return cols, rows.Err()
}

// splitSQLiteDeclaredType normalizes a declared type such as
// "VARCHAR(30)" into its lowercase base spelling and length.
func splitSQLiteDeclaredType(decl string) (string, int64) {
	decl = strings.TrimSpace(strings.ToLower(decl))
	if decl == "" {
		// Columns may be declared with no type at all.
		return "text", 0
	}
	open := strings.IndexByte(decl, '(')
	if open < 0 {
		return decl, 0
	}
	base := strings.TrimSpace(decl[:open])
	rest := strings.TrimSuffix(decl[open+1:], ")")
	if comma := strings.IndexByte(rest, ','); comma >= 0 {
		rest = rest[:comma]
	}
	n, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
	if err != nil {
		return base, 0
	}
	return base, n
}
