package main

import "context"

// MetadataSource reads table and column metadata from a source engine's
// catalog. One implementation per dialect; all are thin wrappers over
// information_schema / catalog queries.
type MetadataSource interface {
	// ListTables returns source table names in source-reported order.
	ListTables(ctx context.Context) ([]string, error)

	// ListColumns returns the column definitions for one table in
	// ordinal order, with the dialect's UTC read expression attached to
	// timezone-sensitive columns.
	ListColumns(ctx context.Context, table string) ([]ColumnDefinition, error)

	// CurrentWorkarea returns the active database/schema name.
	CurrentWorkarea(ctx context.Context) (string, error)
}
