package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/sijms/go-ora/v2" // oracle driver
)

type oracleSource struct {
	db       *sql.DB
	workarea string
	log      *Logger
	mapper   *TypeMapper
}

func (s *oracleSource) CurrentWorkarea(ctx context.Context) (string, error) {
	if s.workarea != "" {
		return s.workarea, nil
	}
	var name string
	if err := s.db.QueryRowContext(ctx, "SELECT USER FROM DUAL").Scan(&name); err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}
	s.workarea = name
	return name, nil
}

func (s *oracleSource) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT TABLE_NAME FROM USER_TABLES ORDER BY TABLE_NAME`,
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

// ListColumns matches the table name case-insensitively by uppercasing,
// the way Oracle stores unquoted identifiers.
func (s *oracleSource) ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT COLUMN_NAME, DATA_TYPE,
		        COALESCE(CHAR_LENGTH, 0),
		        COALESCE(DATA_PRECISION, 0),
		        COALESCE(DATA_SCALE, 0),
		        NULLABLE
		 FROM USER_TAB_COLUMNS
		 WHERE TABLE_NAME = :1
		 ORDER BY COLUMN_ID`,
		strings.ToUpper(table),
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
		c.Nullable = nullable == "Y"
		c.ToUTCExpression = s.mapper.UTCReadExpression(c.NativeType, c.Name)
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
