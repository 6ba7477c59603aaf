package main

// ColumnDefinition is one physical source column as reported by the
// metadata source. Immutable once read.
type ColumnDefinition struct {
	Name             string
	NativeType       string // exact spelling the catalog returns
	Nullable         bool
	CharMaxLen       int64
	NumericPrecision int64
	NumericScale     int64

	// ToUTCExpression is a source-dialect SQL fragment that reads the
	// column normalized to UTC, empty when no conversion is needed.
	ToUTCExpression string
}

// TransformedColumnDefinition extends a ColumnDefinition with the
// target-side decisions made by the transformer. Created once per
// column, never mutated afterwards.
type TransformedColumnDefinition struct {
	ColumnDefinition

	Canonical CanonicalType

	// OriginalNativeType always holds the pre-transform source spelling,
	// even when the same spelling exists in the target dialect. Row
	// import keys special cases (GUID hex decode) off this field.
	OriginalNativeType string

	// TargetNativeType is the target-dialect type with any fixed-length
	// suffix already stripped into CharMaxLen.
	TargetNativeType string

	// ForcedLength is set when the mapping table dictated a fixed length
	// that overrides whatever length the source reported.
	ForcedLength bool

	ParameterKind ParamKind

	// SourceAliasName holds the original column name when Name was
	// renamed away from a target reserved word, empty otherwise.
	SourceAliasName string
}

// SelectSpec is a compiled source read: statement text plus the column
// order values will be scanned in.
type SelectSpec struct {
	Text    string
	Columns []string // working names, in scan order
}
