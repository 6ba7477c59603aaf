package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb" // sqlserver driver
)

type mssqlSource struct {
	db       *sql.DB
	workarea string
	log      *Logger
	mapper   *TypeMapper
}

func (s *mssqlSource) CurrentWorkarea(ctx context.Context) (string, error) {
	if s.workarea != "" {
		return s.workarea, nil
	}
	var name string
	if err := s.db.QueryRowContext(ctx, "SELECT DB_NAME()").Scan(&name); err != nil {
		return "", fmt.Errorf("current database: %w", err)
	}
	s.workarea = name
	return name, nil
}

func (s *mssqlSource) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES
		 WHERE TABLE_TYPE = 'BASE TABLE'
		 ORDER BY TABLE_NAME`,
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

func (s *mssqlSource) ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT COLUMN_NAME, DATA_TYPE,
		        COALESCE(CHARACTER_MAXIMUM_LENGTH, 0),
		        COALESCE(NUMERIC_PRECISION, 0),
		        COALESCE(NUMERIC_SCALE, 0),
		        IS_NULLABLE
		 FROM INFORMATION_SCHEMA.COLUMNS
		 WHERE TABLE_NAME = @p1
		 ORDER BY ORDINAL_POSITION`,
		table,
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
		c.NativeType, c.CharMaxLen = normalizeMSSQLType(c.NativeType, c.CharMaxLen)
		c.Nullable = nullable == "YES"
		c.ToUTCExpression = s.mapper.UTCReadExpression(c.NativeType, c.Name)
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// normalizeMSSQLType restores the MAX spelling for unbounded columns.
// INFORMATION_SCHEMA reports varchar(max) and friends as the base type
// with a character maximum length of -1, which is not a usable length.
func normalizeMSSQLType(nativeType string, maxLen int64) (string, int64) {
	if maxLen != -1 {
		return nativeType, maxLen
	}
	switch nativeType {
	case "varchar", "nvarchar", "varbinary":
		return nativeType + "(max)", 0
	}
	return nativeType, 0
}
