package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowImporter coerces raw source row values into target bind parameters
// and executes the prepared insert, one row at a time.
type RowImporter struct {
	columns []TransformedColumnDefinition
	stmt    *sql.Stmt
}

func newRowImporter(stmt *sql.Stmt, columns []TransformedColumnDefinition) *RowImporter {
	return &RowImporter{columns: columns, stmt: stmt}
}

// BindAndExecute coerces one row (values aligned with the transformed
// column order) and executes the insert. Any failure aborts the table
// import; there is no per-row retry.
func (imp *RowImporter) BindAndExecute(ctx context.Context, row []any) error {
	if len(row) != len(imp.columns) {
		return stepErrf("bind row", "got %d values for %d columns", len(row), len(imp.columns))
	}
	args := make([]any, len(row))
	for i, col := range imp.columns {
		v, err := coerceValue(row[i], col)
		if err != nil {
			return stepErr(fmt.Sprintf("bind column %s", col.Name), err)
		}
		args[i] = v
	}
	if _, err := imp.stmt.ExecContext(ctx, args...); err != nil {
		return stepErr("execute insert", err)
	}
	return nil
}

const importTimeLayout = "2006-01-02 15:04:05"

// coerceValue applies the type-directed transform for one column value.
// GUID handling keys off the column's source provenance, not the type
// it became on the target.
func coerceValue(raw any, col TransformedColumnDefinition) (any, error) {
	if col.isGUIDSource() {
		return coerceGUID(raw)
	}

	switch {
	case isTextType(col.Canonical):
		if raw == nil {
			return nil, nil
		}
		s, ok := rawString(raw)
		if !ok {
			return raw, nil
		}
		return stripUnprintable(s), nil

	case isTemporalType(col.Canonical):
		return coerceTemporal(raw, col.ToUTCExpression != "")

	case col.Canonical == TypeBool:
		return coerceBool(raw)

	case col.Canonical == TypeMoney:
		return coerceMoney(raw)

	case col.Canonical == TypeDecimal, col.Canonical == TypeFloat, col.Canonical == TypeDouble:
		if isEmptyOrNil(raw) {
			return nil, nil
		}
		if s, ok := rawString(raw); ok {
			return stripCurrency(s), nil
		}
		return raw, nil

	case isIntegerType(col.Canonical):
		// Empty integers coerce to zero, not NULL.
		if isEmptyOrNil(raw) {
			return int64(0), nil
		}
		return raw, nil

	case col.Canonical == TypeBlob, col.Canonical == TypeBinary, col.Canonical == TypeCharBinary:
		return raw, nil

	default:
		if raw == nil {
			return nil, nil
		}
		return raw, nil
	}
}

// coerceGUID turns a hyphenated GUID string into its 16 raw bytes for
// large-binary binding. Raw byte payloads pass through untouched.
func coerceGUID(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := rawString(raw)
	if !ok {
		return raw, nil
	}
	if s == "" {
		return nil, nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("decode guid %q: %w", s, err)
	}
	b := [16]byte(u)
	return b[:], nil
}

// coerceTemporal parses a date/time value and formats it as
// "YYYY-MM-DD HH:MM:SS", converting to UTC when a conversion expression
// applies to the column.
func coerceTemporal(raw any, toUTC bool) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if t, ok := raw.(time.Time); ok {
		if toUTC {
			t = t.UTC()
		}
		return t.Format(importTimeLayout), nil
	}
	s, ok := rawString(raw)
	if !ok {
		return raw, nil
	}
	if s == "" || strings.EqualFold(s, "NULL") {
		return nil, nil
	}
	t, err := parseAnyTime(s)
	if err != nil {
		return nil, err
	}
	if toUTC {
		t = t.UTC()
	}
	return t.Format(importTimeLayout), nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

func parseAnyTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", s)
}

// coerceBool normalizes bit/boolean values to a 0/1 integer; empty
// strings and nil bind as NULL with integer parameter kind.
func coerceBool(raw any) (any, error) {
	if isEmptyOrNil(raw) {
		return nil, nil
	}
	switch v := raw.(type) {
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case int64:
		if v != 0 {
			return int64(1), nil
		}
		return int64(0), nil
	}
	if s, ok := rawString(raw); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "t", "true", "y", "yes":
			return int64(1), nil
		case "0", "f", "false", "n", "no":
			return int64(0), nil
		default:
			return nil, fmt.Errorf("cannot coerce %q to boolean", s)
		}
	}
	return nil, fmt.Errorf("cannot coerce %T to boolean", raw)
}

// coerceMoney strips the currency symbol and normalizes the remainder
// as a plain decimal string.
func coerceMoney(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := rawString(raw)
	if !ok {
		return raw, nil
	}
	s = stripCurrency(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse money value %q: %w", s, err)
	}
	return d.String(), nil
}

func isEmptyOrNil(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := rawString(raw)
	return ok && s == ""
}

// rawString converts driver-provided string-ish values.
func rawString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

// stripUnprintable drops control characters, keeping tabs and newlines.
func stripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// stripCurrency removes currency symbols and thousands separators.
func stripCurrency(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ',':
			return -1
		}
		if unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
