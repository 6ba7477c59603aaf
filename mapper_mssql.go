package main

// MSSQL catalog spellings are lowercase (INFORMATION_SCHEMA DATA_TYPE).
func newMSSQLMapper(log *Logger) *TypeMapper {
	return &TypeMapper{
		dialect:       DialectMSSQL,
		log:           log,
		genericNative: "varchar",
		toCanonical: map[string]CanonicalType{
			"bit":              TypeBool,
			"tinyint":          TypeTinyInt,
			"smallint":         TypeSmallInt,
			"int":              TypeInt,
			"bigint":           TypeBigInt,
			"real":             TypeFloat,
			"float":            TypeDouble,
			"decimal":          TypeDecimal,
			"numeric":          TypeDecimal,
			"money":            TypeMoney,
			"smallmoney":       TypeMoney,
			"char":             TypeChar,
			"varchar":          TypeString,
			"text":             TypeLongString,
			"nchar":            TypeUnicodeString,
			"nvarchar":         TypeUnicodeString,
			"ntext":            TypeLongString,
			"binary":           TypeCharBinary,
			"varbinary":        TypeBinary,
			"image":            TypeBlob,
			"varchar(max)":     TypeLongString,
			"nvarchar(max)":    TypeLongString,
			"varbinary(max)":   TypeBlob,
			"date":             TypeDate,
			"time":             TypeTime,
			"smalldatetime":    TypeDateTime,
			"datetime":         TypeDateTime,
			"datetime2":        TypeDateTime,
			"datetimeoffset":   TypeDateTimeTz,
			"uniqueidentifier": TypeGUID,
			"xml":              TypeLongString,
			// timestamp is the legacy name for rowversion: an opaque
			// binary counter, not a point in time.
			"timestamp":  TypeCharBinary,
			"rowversion": TypeCharBinary,
			// identity spellings produced by this dialect's own
			// canonical table
			"tinyint identity":  TypeAutoIncrTiny,
			"smallint identity": TypeAutoIncrSmall,
			"int identity":      TypeAutoIncrInt,
			"bigint identity":   TypeAutoIncrBig,
		},
		toNative: map[CanonicalType]string{
			TypeUnknown:        "varchar",
			TypeBool:           "bit",
			TypeTinyInt:        "tinyint",
			TypeSmallInt:       "smallint",
			TypeMediumInt:      "int",
			TypeInt:            "int",
			TypeBigInt:         "bigint",
			TypeFloat:          "real",
			TypeDouble:         "float",
			TypeDecimal:        "decimal",
			TypeMoney:          "money",
			TypeChar:           "char",
			TypeString:         "varchar",
			TypeLongString:     "varchar(max)",
			TypeUnicodeString:  "nvarchar",
			TypeCharBinary:     "binary",
			TypeBinary:         "varbinary",
			TypeBlob:           "varbinary(max)",
			TypeDate:           "date",
			TypeTime:           "time",
			TypeTimeTz:         "time",
			TypeDateTime:       "datetime2",
			TypeDateTimeTz:     "datetimeoffset",
			TypeTimestamp:      "datetime2",
			TypeInterval:       "varchar(64)",
			TypeJSON:           "nvarchar(max)",
			TypeGUID:           "uniqueidentifier",
			TypeAutoIncrTiny:   "tinyint identity",
			TypeAutoIncrSmall:  "smallint identity",
			TypeAutoIncrMedium: "int identity",
			TypeAutoIncrInt:    "int identity",
			TypeAutoIncrBig:    "bigint identity",
		},
		utcReadExpr: map[string]string{
			"datetimeoffset": "%s AT TIME ZONE 'UTC'",
		},
	}
}
