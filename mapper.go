package main

import "fmt"

// TypeMapper translates between a dialect's native type names and the
// canonical vocabulary. Both directions are flat static tables; no
// dialect maps through another dialect.
type TypeMapper struct {
	dialect Dialect
	log     *Logger

	// toCanonical is keyed by the exact spelling the dialect's catalog
	// returns (lowercase for MySQL/MSSQL/PostgreSQL/SQLite, uppercase
	// for Oracle).
	toCanonical map[string]CanonicalType

	// toNative must cover every canonical tag. Entries may carry a
	// fixed-length suffix such as "raw(16)"; the transformer strips it.
	toNative map[CanonicalType]string

	// genericNative is the fallback emitted when toNative has a
	// maintenance gap: the dialect's generic variable-length string type.
	genericNative string

	// utcReadExpr maps a native type to a printf pattern producing a
	// SQL fragment that reads the column converted to UTC. The single
	// %s verb receives the column name.
	utcReadExpr map[string]string

	seenUnknownNative map[string]struct{}
	seenGapCanonical  map[CanonicalType]struct{}
}

// NativeToCanonical resolves a catalog type spelling to its canonical
// tag. Unrecognized spellings resolve to TypeUnknown; the gap is logged
// once per distinct spelling per process.
func (m *TypeMapper) NativeToCanonical(nativeType string) CanonicalType {
	if t, ok := m.toCanonical[nativeType]; ok {
		return t
	}
	if _, seen := m.seenUnknownNative[nativeType]; !seen {
		if m.seenUnknownNative == nil {
			m.seenUnknownNative = make(map[string]struct{})
		}
		m.seenUnknownNative[nativeType] = struct{}{}
		m.log.Fixmef("no canonical mapping for %s native type %q", m.dialect, nativeType)
	}
	return TypeUnknown
}

// CanonicalToNative resolves a canonical tag to the dialect's native
// type, possibly carrying a "(n)" fixed-length suffix. A missing entry
// is a table maintenance gap: the dialect's generic string type is
// returned and the gap logged once per tag per process.
func (m *TypeMapper) CanonicalToNative(t CanonicalType) string {
	if native, ok := m.toNative[t]; ok {
		return native
	}
	if _, seen := m.seenGapCanonical[t]; !seen {
		if m.seenGapCanonical == nil {
			m.seenGapCanonical = make(map[CanonicalType]struct{})
		}
		m.seenGapCanonical[t] = struct{}{}
		m.log.Fixmef("no %s native mapping for canonical type %s, using %s", m.dialect, t, m.genericNative)
	}
	return m.genericNative
}

// UTCReadExpression returns the dialect's UTC-normalizing read fragment
// for a native type, or "" when the type needs none.
func (m *TypeMapper) UTCReadExpression(nativeType, column string) string {
	pattern, ok := m.utcReadExpr[nativeType]
	if !ok {
		return ""
	}
	return fmt.Sprintf(pattern, column)
}

// hasUTCRule reports whether the native type carries a UTC conversion.
func (m *TypeMapper) hasUTCRule(nativeType string) bool {
	_, ok := m.utcReadExpr[nativeType]
	return ok
}
