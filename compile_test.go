package main

import (
	"strings"
	"testing"
)

func dialectSupport(t *testing.T, d Dialect) *DialectSupport {
	t.Helper()
	sup, err := newDialectSupport(d, discardLogger())
	if err != nil {
		t.Fatalf("newDialectSupport(%v): %v", d, err)
	}
	return sup
}

func TestCompileCreateTable(t *testing.T) {
	tr := newTestTransformer(t, DialectMySQL, DialectPostgres)
	cols := tr.Transform([]ColumnDefinition{
		{Name: "id", NativeType: "int", Nullable: false},
		{Name: "name", NativeType: "varchar", CharMaxLen: 100, Nullable: true},
		{Name: "price", NativeType: "decimal", NumericPrecision: 10, NumericScale: 2, Nullable: true},
	})

	got := compileCreateTable("products", cols, dialectSupport(t, DialectPostgres))
	want := `CREATE TABLE "products" (id integer NOT NULL, name varchar(100) NULL, price numeric(10,2) NULL)`
	if got != want {
		t.Errorf("create table:\n got %s\nwant %s", got, want)
	}
}

// SQLite DDL carries no inline nullability clauses.
func TestCompileCreateTableSQLite(t *testing.T) {
	tr := newTestTransformer(t, DialectMySQL, DialectSQLite)
	cols := tr.Transform([]ColumnDefinition{
		{Name: "id", NativeType: "int", Nullable: false},
		{Name: "name", NativeType: "varchar", CharMaxLen: 100, Nullable: true},
	})

	got := compileCreateTable("products", cols, dialectSupport(t, DialectSQLite))
	if strings.Contains(got, "NULL") {
		t.Errorf("sqlite DDL must not carry nullability: %s", got)
	}
	if !strings.Contains(got, "id integer") {
		t.Errorf("int did not collapse to integer storage class: %s", got)
	}
}

func TestCompileSelect(t *testing.T) {
	tr := newTestTransformer(t, DialectMySQL, DialectPostgres)
	cols := tr.Transform([]ColumnDefinition{
		{Name: "id", NativeType: "int"},
		{Name: "created_at", NativeType: "timestamp",
			ToUTCExpression: "CONVERT_TZ(created_at, @@session.time_zone, '+00:00')"},
	})

	sel := compileSelect("events", cols, dialectSupport(t, DialectMySQL))
	want := "SELECT id, CONVERT_TZ(created_at, @@session.time_zone, '+00:00') AS created_at FROM `events`"
	if sel.Text != want {
		t.Errorf("select:\n got %s\nwant %s", sel.Text, want)
	}
	if len(sel.Columns) != 2 || sel.Columns[0] != "id" || sel.Columns[1] != "created_at" {
		t.Errorf("bound column order = %v", sel.Columns)
	}
}

// MSSQL datetimeoffset migrating to PostgreSQL: UTC read expression in
// the SELECT, UTC re-zoning expression around the INSERT placeholder.
func TestCompileMSSQLToPostgresDatetimeOffset(t *testing.T) {
	src := dialectSupport(t, DialectMSSQL)
	tgt := dialectSupport(t, DialectPostgres)
	tr, err := newTransformer(src, tgt)
	if err != nil {
		t.Fatalf("newTransformer: %v", err)
	}

	cols := tr.Transform([]ColumnDefinition{
		{Name: "seen_at", NativeType: "datetimeoffset",
			ToUTCExpression: src.Mapper.UTCReadExpression("datetimeoffset", "seen_at")},
	})

	sel := compileSelect("events", cols, src)
	if !strings.Contains(sel.Text, "seen_at AT TIME ZONE 'UTC' AS seen_at") {
		t.Errorf("select lacks UTC read expression: %s", sel.Text)
	}

	ins, err := compileInsert("events", cols, tgt)
	if err != nil {
		t.Fatalf("compileInsert: %v", err)
	}
	if !strings.Contains(ins, "$1::timestamp AT TIME ZONE 'UTC'") {
		t.Errorf("insert lacks UTC rewrite: %s", ins)
	}
}

func TestCompileInsertPlaceholders(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectMySQL, "INSERT INTO `t` (a, b) VALUES (?, ?)"},
		{DialectPostgres, `INSERT INTO "t" (a, b) VALUES ($1, $2)`},
		{DialectMSSQL, "INSERT INTO [t] (a, b) VALUES (@p1, @p2)"},
		{DialectOracle, `INSERT INTO "t" (a, b) VALUES (:1, :2)`},
		{DialectSQLite, `INSERT INTO "t" (a, b) VALUES (?, ?)`},
	}
	for _, tt := range tests {
		tr := newTestTransformer(t, DialectMySQL, tt.dialect)
		cols := tr.Transform([]ColumnDefinition{
			{Name: "a", NativeType: "int"},
			{Name: "b", NativeType: "varchar", CharMaxLen: 10},
		})
		got, err := compileInsert("t", cols, dialectSupport(t, tt.dialect))
		if err != nil {
			t.Fatalf("compileInsert(%v): %v", tt.dialect, err)
		}
		if got != tt.want {
			t.Errorf("insert for %v:\n got %s\nwant %s", tt.dialect, got, tt.want)
		}
	}
}

func TestCompileInsertUTCRewrites(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectMySQL, "CONVERT_TZ(?, '+00:00', @@global.time_zone)"},
		{DialectMSSQL, "CAST(@p1 AS DATETIMEOFFSET) AT TIME ZONE 'UTC'"},
		{DialectPostgres, "$1::timestamp AT TIME ZONE 'UTC'"},
	}
	for _, tt := range tests {
		tr := newTestTransformer(t, DialectMSSQL, tt.dialect)
		cols := tr.Transform([]ColumnDefinition{
			{Name: "seen_at", NativeType: "datetimeoffset",
				ToUTCExpression: "seen_at AT TIME ZONE 'UTC'"},
		})
		got, err := compileInsert("t", cols, dialectSupport(t, tt.dialect))
		if err != nil {
			t.Fatalf("compileInsert(%v): %v", tt.dialect, err)
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("insert for %v lacks %q: %s", tt.dialect, tt.want, got)
		}
	}
}

// A dialect with no UTC insert rule fails at compile time, not at bind
// time.
func TestCompileInsertUnsupportedUTCDialect(t *testing.T) {
	for _, d := range []Dialect{DialectOracle, DialectSQLite} {
		tr := newTestTransformer(t, DialectMSSQL, d)
		cols := tr.Transform([]ColumnDefinition{
			{Name: "seen_at", NativeType: "datetimeoffset",
				ToUTCExpression: "seen_at AT TIME ZONE 'UTC'"},
		})
		if _, err := compileInsert("t", cols, dialectSupport(t, d)); err == nil {
			t.Errorf("compileInsert(%v) expected unsupported-dialect error", d)
		}
	}
}
