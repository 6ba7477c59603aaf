package main

// SQLite has only the integer/real/text/blob storage classes, so
// canonical types collapse many-to-one in both directions. Declared
// types from PRAGMA table_info are normalized to lowercase with any
// length suffix stripped before lookup.
func newSQLiteMapper(log *Logger) *TypeMapper {
	return &TypeMapper{
		dialect:       DialectSQLite,
		log:           log,
		genericNative: "text",
		toCanonical: map[string]CanonicalType{
			"integer":          TypeBigInt,
			"int":              TypeInt,
			"tinyint":          TypeTinyInt,
			"smallint":         TypeSmallInt,
			"mediumint":        TypeMediumInt,
			"bigint":           TypeBigInt,
			"boolean":          TypeBool,
			"bool":             TypeBool,
			// Declared "real" historically mapped to the money tag in
			// older plan logs; that was a table artifact, not a
			// precision choice, so it maps to the generic double here.
			"real":             TypeDouble,
			"double":           TypeDouble,
			"double precision": TypeDouble,
			"float":            TypeFloat,
			"numeric":          TypeDecimal,
			"decimal":          TypeDecimal,
			"text":             TypeString,
			"char":             TypeChar,
			"character":        TypeChar,
			"varchar":          TypeString,
			"nvarchar":         TypeUnicodeString,
			"nchar":            TypeUnicodeString,
			"clob":             TypeLongString,
			"blob":             TypeBlob,
			"date":             TypeDate,
			"time":             TypeTime,
			"datetime":         TypeDateTime,
			"timestamp":        TypeTimestamp,
			"json":             TypeJSON,
		},
		toNative: map[CanonicalType]string{
			TypeUnknown:        "text",
			TypeBool:           "integer",
			TypeTinyInt:        "integer",
			TypeSmallInt:       "integer",
			TypeMediumInt:      "integer",
			TypeInt:            "integer",
			TypeBigInt:         "integer",
			TypeFloat:          "real",
			TypeDouble:         "real",
			TypeDecimal:        "numeric",
			TypeMoney:          "numeric",
			TypeChar:           "text",
			TypeString:         "text",
			TypeLongString:     "text",
			TypeUnicodeString:  "text",
			TypeCharBinary:     "blob",
			TypeBinary:         "blob",
			TypeBlob:           "blob",
			TypeDate:           "text",
			TypeTime:           "text",
			TypeTimeTz:         "text",
			TypeDateTime:       "text",
			TypeDateTimeTz:     "text",
			TypeTimestamp:      "text",
			TypeInterval:       "text",
			TypeJSON:           "text",
			TypeGUID:           "blob",
			TypeAutoIncrTiny:   "integer",
			TypeAutoIncrSmall:  "integer",
			TypeAutoIncrMedium: "integer",
			TypeAutoIncrInt:    "integer",
			TypeAutoIncrBig:    "integer",
		},
		// SQLite stores text verbatim; no UTC conversion expressions.
		utcReadExpr: map[string]string{},
	}
}
