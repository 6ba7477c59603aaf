package main

import (
	"fmt"
	"strings"
)

// compileCreateTable produces the target CREATE TABLE statement,
// preserving transformed column order. Table names are quoted for the
// executing dialect; column names are not, since reserved-word
// collisions are handled by renaming.
func compileCreateTable(table string, columns []TransformedColumnDefinition, target *DialectSupport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (", target.QuoteIdent(table))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.Name)
		b.WriteByte(' ')
		b.WriteString(col.TargetNativeType)
		b.WriteString(typeLengthSuffix(col))
		if target.InlineNullability {
			if col.Nullable {
				b.WriteString(" NULL")
			} else {
				b.WriteString(" NOT NULL")
			}
		}
	}
	b.WriteByte(')')
	return b.String()
}

// typeLengthSuffix renders "(len)", "(prec,scale)", or "" depending on
// what the column's type family takes. A length forced by the mapping
// table always wins over source-reported sizes.
func typeLengthSuffix(col TransformedColumnDefinition) string {
	if col.ForcedLength {
		return fmt.Sprintf("(%d)", col.CharMaxLen)
	}
	switch col.Canonical {
	case TypeChar, TypeString, TypeUnicodeString, TypeCharBinary, TypeBinary:
		if col.CharMaxLen > 0 {
			return fmt.Sprintf("(%d)", col.CharMaxLen)
		}
	case TypeDecimal, TypeMoney:
		if col.NumericPrecision > 0 {
			if col.NumericScale > 0 {
				return fmt.Sprintf("(%d,%d)", col.NumericPrecision, col.NumericScale)
			}
			return fmt.Sprintf("(%d)", col.NumericPrecision)
		}
	}
	return ""
}

// compileSelect produces the source read statement. Each column is read
// as its UTC expression (aliased back to the working name), or as the
// original source name when a reserved-word rename happened, or plainly.
func compileSelect(table string, columns []TransformedColumnDefinition, source *DialectSupport) SelectSpec {
	parts := make([]string, 0, len(columns))
	order := make([]string, 0, len(columns))
	for _, col := range columns {
		switch {
		case col.ToUTCExpression != "":
			parts = append(parts, col.ToUTCExpression+" AS "+col.Name)
		case col.SourceAliasName != "":
			parts = append(parts, col.SourceAliasName+" AS "+col.Name)
		default:
			parts = append(parts, col.Name)
		}
		order = append(order, col.Name)
	}
	return SelectSpec{
		Text:    "SELECT " + strings.Join(parts, ", ") + " FROM " + source.QuoteIdent(table),
		Columns: order,
	}
}

// compileInsert produces the target insert statement with one parameter
// per column. Timezone-aware datetime columns that carry a UTC read
// expression get their placeholder wrapped so UTC zoning is re-applied
// on write; a target dialect with no rewrite rule fails here, not at
// bind time.
func compileInsert(table string, columns []TransformedColumnDefinition, target *DialectSupport) (string, error) {
	names := make([]string, 0, len(columns))
	values := make([]string, 0, len(columns))
	for i, col := range columns {
		names = append(names, col.Name)
		ph := target.Placeholder(i)
		if col.Canonical == TypeDateTimeTz && col.ToUTCExpression != "" {
			if target.InsertUTCRewrite == nil {
				return "", stepErrf("compile insert",
					"unsupported dialect %s for UTC-zoned column %s", target.Dialect, col.Name)
			}
			ph = target.InsertUTCRewrite(ph)
		}
		values = append(values, ph)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		target.QuoteIdent(table), strings.Join(names, ", "), strings.Join(values, ", ")), nil
}
