package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type mysqlSource struct {
	db       *sql.DB
	workarea string
	log      *Logger
	mapper   *TypeMapper
}

// openMySQL opens a MySQL connection with time parsing forced to UTC so
// temporal values scan as time.Time consistently.
func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

func (s *mysqlSource) CurrentWorkarea(ctx context.Context) (string, error) {
	if s.workarea != "" {
		return s.workarea, nil
	}
	var name string
	if err := s.db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return "", fmt.Errorf("current database: %w", err)
	}
	s.workarea = name
	return name, nil
}

func (s *mysqlSource) ListTables(ctx context.Context) ([]string, error) {
	wa, err := s.CurrentWorkarea(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES
		 WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE'
		 ORDER BY TABLE_NAME`,
		wa,
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

func (s *mysqlSource) ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error) {
	wa, err := s.CurrentWorkarea(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT COLUMN_NAME, DATA_TYPE,
		        COALESCE(CHARACTER_MAXIMUM_LENGTH, 0),
		        COALESCE(NUMERIC_PRECISION, 0),
		        COALESCE(NUMERIC_SCALE, 0),
		        IS_NULLABLE
		 FROM INFORMATION_SCHEMA.COLUMNS
		 WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		 ORDER BY ORDINAL_POSITION`,
		wa, table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnDefinition
	for rows.Next() {
		var c ColumnDefinition
		var nullable string
		if err := rows.Scan(&c.Name, &c.NativeType, &c.CharMaxLen, &c.NumericPrecision, &c.NumericScale, &nullable); err != nil {
			return nil, err
		}
		c.Nullable = nullable == "YES"
		c.ToUTCExpression = s.mapper.UTCReadExpression(c.NativeType, c.Name)
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
