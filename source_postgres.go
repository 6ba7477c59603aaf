package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

type postgresSource struct {
	db       *sql.DB
	workarea string
	log      *Logger
	mapper   *TypeMapper
}

func (s *postgresSource) CurrentWorkarea(ctx context.Context) (string, error) {
	if s.workarea != "" {
		return s.workarea, nil
	}
	var name string
	if err := s.db.QueryRowContext(ctx, "SELECT current_schema()").Scan(&name); err != nil {
		return "", fmt.Errorf("current schema: %w", err)
	}
	s.workarea = name
	return name, nil
}

func (s *postgresSource) ListTables(ctx context.Context) ([]string, error) {
	wa, err := s.CurrentWorkarea(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		 ORDER BY table_name`,
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

func (s *postgresSource) ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error) {
	wa, err := s.CurrentWorkarea(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT column_name, data_type,
		        COALESCE(character_maximum_length, 0),
		        COALESCE(numeric_precision, 0),
		        COALESCE(numeric_scale, 0),
		        is_nullable
		 FROM information_schema.columns
		 WHERE table_schema = $1 AND table_name = $2
		 ORDER BY ordinal_position`,
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
