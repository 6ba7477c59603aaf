package main

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// fixmeCapture builds a logger that records fixme diagnostics.
func fixmeCapture() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{
		consoleMask: LogFixme,
		console:     log.New(&buf, "", 0),
	}, &buf
}

func allDialectSupports(t *testing.T) []*DialectSupport {
	t.Helper()
	var sups []*DialectSupport
	for _, d := range []Dialect{DialectMySQL, DialectMSSQL, DialectPostgres, DialectOracle, DialectSQLite} {
		sup, err := newDialectSupport(d, discardLogger())
		if err != nil {
			t.Fatalf("newDialectSupport(%v): %v", d, err)
		}
		sups = append(sups, sup)
	}
	return sups
}

// A dialect must recognize its own canonical outputs: feeding any
// canonical-to-native result (length suffix stripped, the way the
// transformer strips it) back through nativeToCanonical must not land
// on the unknown tag.
func TestRoundTripNeverUnknown(t *testing.T) {
	for _, sup := range allDialectSupports(t) {
		for _, ct := range allCanonicalTypes() {
			native := sup.Mapper.CanonicalToNative(ct)
			if m := fixedLenRe.FindStringSubmatch(native); m != nil {
				native = m[1]
			}
			if got := sup.Mapper.NativeToCanonical(native); got == TypeUnknown {
				t.Errorf("%v: %v -> %q -> unknown", sup.Dialect, ct, native)
			}
		}
	}
}

func TestNativeToCanonical(t *testing.T) {
	tests := []struct {
		dialect Dialect
		native  string
		want    CanonicalType
	}{
		{DialectMySQL, "varchar", TypeString},
		{DialectMySQL, "timestamp", TypeTimestamp},
		{DialectMySQL, "mediumint", TypeMediumInt},
		{DialectMSSQL, "uniqueidentifier", TypeGUID},
		{DialectMSSQL, "datetimeoffset", TypeDateTimeTz},
		{DialectMSSQL, "money", TypeMoney},
		{DialectMSSQL, "timestamp", TypeCharBinary}, // rowversion, not a point in time
		{DialectPostgres, "timestamp with time zone", TypeDateTimeTz},
		{DialectPostgres, "jsonb", TypeJSON},
		{DialectOracle, "VARCHAR2", TypeString},
		{DialectOracle, "TIMESTAMP(6) WITH TIME ZONE", TypeDateTimeTz},
		{DialectOracle, "NUMBER", TypeDecimal},
		{DialectSQLite, "integer", TypeBigInt},
		{DialectSQLite, "real", TypeDouble},
		{DialectSQLite, "text", TypeString},
	}
	for _, tt := range tests {
		sup, err := newDialectSupport(tt.dialect, discardLogger())
		if err != nil {
			t.Fatalf("newDialectSupport(%v): %v", tt.dialect, err)
		}
		if got := sup.Mapper.NativeToCanonical(tt.native); got != tt.want {
			t.Errorf("%v nativeToCanonical(%q) = %v, want %v", tt.dialect, tt.native, got, tt.want)
		}
	}
}

// An unmapped native type maps to the unknown tag and logs its fixme
// diagnostic exactly once per distinct spelling.
func TestUnknownNativeTypeLogsOnce(t *testing.T) {
	logger, buf := fixmeCapture()
	m := newMySQLMapper(logger)

	for i := 0; i < 3; i++ {
		if got := m.NativeToCanonical("geometry"); got != TypeUnknown {
			t.Fatalf("nativeToCanonical(geometry) = %v, want unknown", got)
		}
	}
	if got := strings.Count(buf.String(), "geometry"); got != 1 {
		t.Errorf("fixme logged %d times, want 1\nlog: %s", got, buf.String())
	}

	// A second distinct spelling gets its own single diagnostic.
	m.NativeToCanonical("hierarchyid")
	m.NativeToCanonical("hierarchyid")
	if got := strings.Count(buf.String(), "hierarchyid"); got != 1 {
		t.Errorf("fixme logged %d times for second type, want 1", got)
	}
}

// The unknown tag resolves to the dialect's generic string type.
func TestUnknownCanonicalFallsBackToGenericString(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectMySQL, "varchar"},
		{DialectMSSQL, "varchar"},
		{DialectPostgres, "varchar"},
		{DialectOracle, "VARCHAR2"},
		{DialectSQLite, "text"},
	}
	for _, tt := range tests {
		sup, err := newDialectSupport(tt.dialect, discardLogger())
		if err != nil {
			t.Fatalf("newDialectSupport(%v): %v", tt.dialect, err)
		}
		if got := sup.Mapper.CanonicalToNative(TypeUnknown); got != tt.want {
			t.Errorf("%v canonicalToNative(unknown) = %q, want %q", tt.dialect, got, tt.want)
		}
	}
}

// A maintenance gap in the canonical table falls back to the generic
// string type and logs once.
func TestCanonicalGapFallsBackAndLogsOnce(t *testing.T) {
	logger, buf := fixmeCapture()
	m := newMySQLMapper(logger)
	delete(m.toNative, TypeInterval)

	for i := 0; i < 2; i++ {
		if got := m.CanonicalToNative(TypeInterval); got != "varchar" {
			t.Fatalf("canonicalToNative(interval) = %q, want varchar fallback", got)
		}
	}
	if got := strings.Count(buf.String(), "interval"); got != 1 {
		t.Errorf("fixme logged %d times, want 1", got)
	}
}

func TestUTCReadExpressions(t *testing.T) {
	tests := []struct {
		dialect Dialect
		native  string
		column  string
		want    string
	}{
		{DialectMySQL, "timestamp", "created_at", "CONVERT_TZ(created_at, @@session.time_zone, '+00:00')"},
		{DialectMySQL, "datetime", "updated_at", "CONVERT_TZ(updated_at, @@session.time_zone, '+00:00')"},
		{DialectMySQL, "varchar", "name", ""},
		{DialectMSSQL, "datetimeoffset", "seen_at", "seen_at AT TIME ZONE 'UTC'"},
		{DialectMSSQL, "datetime2", "seen_at", ""},
		{DialectPostgres, "timestamp with time zone", "ts", "ts AT TIME ZONE 'UTC'"},
		{DialectPostgres, "time with time zone", "tt", "tt AT TIME ZONE 'UTC'"},
		{DialectOracle, "TIMESTAMP WITH TIME ZONE", "TS", "SYS_EXTRACT_UTC(TS)"},
		{DialectSQLite, "text", "ts", ""},
	}
	for _, tt := range tests {
		sup, err := newDialectSupport(tt.dialect, discardLogger())
		if err != nil {
			t.Fatalf("newDialectSupport(%v): %v", tt.dialect, err)
		}
		if got := sup.Mapper.UTCReadExpression(tt.native, tt.column); got != tt.want {
			t.Errorf("%v UTCReadExpression(%q) = %q, want %q", tt.dialect, tt.native, got, tt.want)
		}
	}
}
