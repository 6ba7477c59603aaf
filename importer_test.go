package main

import (
	"bytes"
	"testing"
	"time"
)

func textColumn() TransformedColumnDefinition {
	return TransformedColumnDefinition{Canonical: TypeString}
}

func TestCoerceTextStripsUnprintable(t *testing.T) {
	got, err := coerceValue("ab\x00c\x1bd\tok\n", textColumn())
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != "abcd\tok\n" {
		t.Errorf("got %q", got)
	}
}

func TestCoerceIntegerEmptyBecomesZero(t *testing.T) {
	col := TransformedColumnDefinition{Canonical: TypeInt}
	for _, raw := range []any{"", []byte("")} {
		got, err := coerceValue(raw, col)
		if err != nil {
			t.Fatalf("coerceValue(%v): %v", raw, err)
		}
		if got != int64(0) {
			t.Errorf("empty integer coerced to %v, want 0", got)
		}
	}
	got, err := coerceValue(int64(42), col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != int64(42) {
		t.Errorf("got %v", got)
	}
}

func TestCoerceBool(t *testing.T) {
	col := TransformedColumnDefinition{Canonical: TypeBool}
	tests := []struct {
		raw  any
		want any
	}{
		{nil, nil},
		{"", nil},
		{true, int64(1)},
		{false, int64(0)},
		{int64(3), int64(1)},
		{"true", int64(1)},
		{"No", int64(0)},
		{[]byte("1"), int64(1)},
	}
	for _, tt := range tests {
		got, err := coerceValue(tt.raw, col)
		if err != nil {
			t.Fatalf("coerceValue(%v): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("coerceValue(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
	if _, err := coerceValue("maybe", col); err == nil {
		t.Error("expected error for unrecognized boolean spelling")
	}
}

func TestCoerceGUID(t *testing.T) {
	col := TransformedColumnDefinition{OriginalNativeType: "uniqueidentifier"}
	if !col.isGUIDSource() {
		t.Fatal("uniqueidentifier not detected as GUID source")
	}

	got, err := coerceValue("6F9619FF-8B86-D011-B42D-00C04FC964FF", col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	b, ok := got.([]byte)
	if !ok || len(b) != 16 {
		t.Fatalf("got %T of length %d, want 16 raw bytes", got, len(b))
	}
	want := []byte{0x6f, 0x96, 0x19, 0xff, 0x8b, 0x86, 0xd0, 0x11,
		0xb4, 0x2d, 0x00, 0xc0, 0x4f, 0xc9, 0x64, 0xff}
	if !bytes.Equal(b, want) {
		t.Errorf("decoded bytes = %x, want %x", b, want)
	}

	if got, err := coerceValue("", col); err != nil || got != nil {
		t.Errorf("empty guid = (%v, %v), want NULL", got, err)
	}
	if _, err := coerceValue("not-a-guid", col); err == nil {
		t.Error("expected decode error for malformed guid")
	}
}

func TestCoerceMoney(t *testing.T) {
	col := TransformedColumnDefinition{Canonical: TypeMoney}
	tests := []struct {
		raw  any
		want any
	}{
		{"$1,234.56", "1234.56"},
		{"€99.90", "99.9"},
		{" 12.00 ", "12"},
		{"", nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got, err := coerceValue(tt.raw, col)
		if err != nil {
			t.Fatalf("coerceValue(%v): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("coerceValue(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
	if _, err := coerceValue("$abc", col); err == nil {
		t.Error("expected parse error for non-numeric money value")
	}
}

func TestCoerceTemporal(t *testing.T) {
	col := TransformedColumnDefinition{Canonical: TypeDateTime}

	in := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
	got, err := coerceValue(in, col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != "2024-03-09 14:30:05" {
		t.Errorf("got %q", got)
	}

	got, err = coerceValue("2024-03-09T14:30:05Z", col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != "2024-03-09 14:30:05" {
		t.Errorf("string parse got %q", got)
	}

	for _, raw := range []any{nil, "", "NULL"} {
		got, err := coerceValue(raw, col)
		if err != nil || got != nil {
			t.Errorf("coerceValue(%v) = (%v, %v), want NULL", raw, got, err)
		}
	}

	if _, err := coerceValue("yesterday-ish", col); err == nil {
		t.Error("expected error for unparseable datetime")
	}
}

func TestCoerceTemporalUTCConversion(t *testing.T) {
	col := TransformedColumnDefinition{
		ColumnDefinition: ColumnDefinition{ToUTCExpression: "seen_at AT TIME ZONE 'UTC'"},
		Canonical:        TypeDateTimeTz,
	}
	zone := time.FixedZone("CET", 3600)
	in := time.Date(2024, 3, 9, 15, 30, 5, 0, zone)
	got, err := coerceValue(in, col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != "2024-03-09 14:30:05" {
		t.Errorf("got %q, want UTC-shifted wall time", got)
	}
}

func TestCoerceDecimalStripsCurrency(t *testing.T) {
	col := TransformedColumnDefinition{Canonical: TypeDecimal}
	got, err := coerceValue("1,250.75", col)
	if err != nil {
		t.Fatalf("coerceValue: %v", err)
	}
	if got != "1250.75" {
		t.Errorf("got %q", got)
	}
	if got, _ := coerceValue("", col); got != nil {
		t.Errorf("empty decimal = %v, want NULL", got)
	}
}
