package main

// PostgreSQL catalog spellings are the verbose lowercase forms
// information_schema reports ("timestamp with time zone"), with the
// short aliases kept for pg_catalog-derived metadata.
func newPostgresMapper(log *Logger) *TypeMapper {
	return &TypeMapper{
		dialect:       DialectPostgres,
		log:           log,
		genericNative: "varchar",
		toCanonical: map[string]CanonicalType{
			"boolean":                     TypeBool,
			"bool":                        TypeBool,
			"smallint":                    TypeSmallInt,
			"int2":                        TypeSmallInt,
			"integer":                     TypeInt,
			"int4":                        TypeInt,
			"bigint":                      TypeBigInt,
			"int8":                        TypeBigInt,
			"real":                        TypeFloat,
			"float4":                      TypeFloat,
			"double precision":            TypeDouble,
			"float8":                      TypeDouble,
			"numeric":                     TypeDecimal,
			"decimal":                     TypeDecimal,
			"money":                       TypeMoney,
			"character":                   TypeChar,
			"bpchar":                      TypeChar,
			"char":                        TypeChar,
			"character varying":           TypeString,
			"varchar":                     TypeString,
			"text":                        TypeLongString,
			"bytea":                       TypeBlob,
			"date":                        TypeDate,
			"time without time zone":      TypeTime,
			"time":                        TypeTime,
			"time with time zone":         TypeTimeTz,
			"timetz":                      TypeTimeTz,
			"timestamp without time zone": TypeDateTime,
			"timestamp":                   TypeDateTime,
			"timestamp with time zone":    TypeDateTimeTz,
			"timestamptz":                 TypeDateTimeTz,
			"interval":                    TypeInterval,
			"json":                        TypeJSON,
			"jsonb":                       TypeJSON,
			"uuid":                        TypeGUID,
			"smallserial":                 TypeAutoIncrSmall,
			"serial":                      TypeAutoIncrInt,
			"bigserial":                   TypeAutoIncrBig,
		},
		toNative: map[CanonicalType]string{
			TypeUnknown:        "varchar",
			TypeBool:           "boolean",
			TypeTinyInt:        "smallint",
			TypeSmallInt:       "smallint",
			TypeMediumInt:      "integer",
			TypeInt:            "integer",
			TypeBigInt:         "bigint",
			TypeFloat:          "real",
			TypeDouble:         "double precision",
			TypeDecimal:        "numeric",
			TypeMoney:          "numeric",
			TypeChar:           "char",
			TypeString:         "varchar",
			TypeLongString:     "text",
			TypeUnicodeString:  "varchar",
			TypeCharBinary:     "bytea",
			TypeBinary:         "bytea",
			TypeBlob:           "bytea",
			TypeDate:           "date",
			TypeTime:           "time",
			TypeTimeTz:         "time with time zone",
			TypeDateTime:       "timestamp",
			TypeDateTimeTz:     "timestamp with time zone",
			TypeTimestamp:      "timestamp",
			TypeInterval:       "interval",
			TypeJSON:           "jsonb",
			TypeGUID:           "uuid",
			TypeAutoIncrTiny:   "smallserial",
			TypeAutoIncrSmall:  "smallserial",
			TypeAutoIncrMedium: "serial",
			TypeAutoIncrInt:    "serial",
			TypeAutoIncrBig:    "bigserial",
		},
		utcReadExpr: map[string]string{
			"timestamp with time zone": "%s AT TIME ZONE 'UTC'",
			"timestamptz":              "%s AT TIME ZONE 'UTC'",
			"time with time zone":      "%s AT TIME ZONE 'UTC'",
			"timetz":                   "%s AT TIME ZONE 'UTC'",
		},
	}
}
