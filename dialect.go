package main

import (
	"database/sql"
	"fmt"
	"strings"
)

// Dialect identifies a SQL engine's type, keyword, and DDL conventions.
type Dialect int

const (
	DialectMySQL Dialect = iota
	DialectMSSQL
	DialectPostgres
	DialectOracle
	DialectSQLite
)

func (d Dialect) String() string {
	switch d {
	case DialectMySQL:
		return "mysql"
	case DialectMSSQL:
		return "mssql"
	case DialectPostgres:
		return "postgres"
	case DialectOracle:
		return "oracle"
	case DialectSQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// parseDialect resolves a config tag to a Dialect.
func parseDialect(tag string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "mysql":
		return DialectMySQL, nil
	case "mssql", "sqlserver", "odbc":
		return DialectMSSQL, nil
	case "postgres", "postgresql", "pgsql":
		return DialectPostgres, nil
	case "oracle":
		return DialectOracle, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (must be mysql, mssql, postgres, oracle, or sqlite)", tag)
	}
}

// DialectSupport bundles everything the core needs for one dialect,
// resolved once at startup.
type DialectSupport struct {
	Dialect  Dialect
	Mapper   *TypeMapper
	Reserved map[string]struct{}

	// DriverName is the database/sql driver this dialect registers.
	DriverName string

	// Placeholder renders the i-th (0-based) insert parameter.
	Placeholder func(i int) string

	// InsertUTCRewrite wraps an insert placeholder so UTC zoning is
	// re-applied on write. Nil for dialects with no defined rule;
	// compileInsert fails fast on those.
	InsertUTCRewrite func(placeholder string) string

	// InlineNullability reports whether CREATE TABLE column clauses may
	// carry NULL / NOT NULL.
	InlineNullability bool

	// QuoteIdent quotes an identifier for statements run on this dialect.
	QuoteIdent func(name string) string

	newSource func(db *sql.DB, workarea string, log *Logger) MetadataSource
}

// NewSource builds this dialect's catalog reader over an open connection.
func (s *DialectSupport) NewSource(db *sql.DB, workarea string, log *Logger) MetadataSource {
	return s.newSource(db, workarea, log)
}

// newDialectSupport resolves a dialect tag into its full support bundle.
// An unknown tag is a configuration error raised before any I/O.
func newDialectSupport(d Dialect, log *Logger) (*DialectSupport, error) {
	switch d {
	case DialectMySQL:
		m := newMySQLMapper(log)
		return &DialectSupport{
			Dialect:           d,
			Mapper:            m,
			Reserved:          reservedWordSet(mysqlReservedWords),
			DriverName:        "mysql",
			Placeholder:       func(int) string { return "?" },
			InsertUTCRewrite:  func(p string) string { return fmt.Sprintf("CONVERT_TZ(%s, '+00:00', @@global.time_zone)", p) },
			InlineNullability: true,
			QuoteIdent:        quoteBacktick,
			newSource: func(db *sql.DB, wa string, log *Logger) MetadataSource {
				return &mysqlSource{db: db, workarea: wa, log: log, mapper: m}
			},
		}, nil
	case DialectMSSQL:
		m := newMSSQLMapper(log)
		return &DialectSupport{
			Dialect:           d,
			Mapper:            m,
			Reserved:          reservedWordSet(mssqlReservedWords),
			DriverName:        "sqlserver",
			Placeholder:       func(i int) string { return fmt.Sprintf("@p%d", i+1) },
			InsertUTCRewrite:  func(p string) string { return fmt.Sprintf("CAST(%s AS DATETIMEOFFSET) AT TIME ZONE 'UTC'", p) },
			InlineNullability: true,
			QuoteIdent:        quoteBracket,
			newSource: func(db *sql.DB, wa string, log *Logger) MetadataSource {
				return &mssqlSource{db: db, workarea: wa, log: log, mapper: m}
			},
		}, nil
	case DialectPostgres:
		m := newPostgresMapper(log)
		return &DialectSupport{
			Dialect:     d,
			Mapper:      m,
			Reserved:    reservedWordSet(postgresReservedWords),
			DriverName:  "pgx",
			Placeholder: func(i int) string { return fmt.Sprintf("$%d", i+1) },
			// The cast form is the parameter-compatible spelling of
			// TIMESTAMP 'x' AT TIME ZONE 'UTC'.
			InsertUTCRewrite:  func(p string) string { return fmt.Sprintf("%s::timestamp AT TIME ZONE 'UTC'", p) },
			InlineNullability: true,
			QuoteIdent:        quoteDouble,
			newSource: func(db *sql.DB, wa string, log *Logger) MetadataSource {
				return &postgresSource{db: db, workarea: wa, log: log, mapper: m}
			},
		}, nil
	case DialectOracle:
		m := newOracleMapper(log)
		return &DialectSupport{
			Dialect:           d,
			Mapper:            m,
			Reserved:          reservedWordSet(oracleReservedWords),
			DriverName:        "oracle",
			Placeholder:       func(i int) string { return fmt.Sprintf(":%d", i+1) },
			InlineNullability: true,
			QuoteIdent:        quoteDouble,
			newSource: func(db *sql.DB, wa string, log *Logger) MetadataSource {
				return &oracleSource{db: db, workarea: wa, log: log, mapper: m}
			},
		}, nil
	case DialectSQLite:
		m := newSQLiteMapper(log)
		return &DialectSupport{
			Dialect:           d,
			Mapper:            m,
			Reserved:          reservedWordSet(sqliteReservedWords),
			DriverName:        "sqlite",
			Placeholder:       func(int) string { return "?" },
			InlineNullability: false,
			QuoteIdent:        quoteDouble,
			newSource: func(db *sql.DB, wa string, log *Logger) MetadataSource {
				return &sqliteSource{db: db, workarea: wa, log: log, mapper: m}
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %v", d)
	}
}

func quoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func quoteBracket(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func quoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
