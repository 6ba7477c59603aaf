package main

// MySQL catalog spellings are lowercase (INFORMATION_SCHEMA DATA_TYPE).
func newMySQLMapper(log *Logger) *TypeMapper {
	return &TypeMapper{
		dialect:       DialectMySQL,
		log:           log,
		genericNative: "varchar",
		toCanonical: map[string]CanonicalType{
			"bit":        TypeBool,
			"bool":       TypeBool,
			"boolean":    TypeBool,
			"tinyint":    TypeTinyInt,
			"smallint":   TypeSmallInt,
			"mediumint":  TypeMediumInt,
			"int":        TypeInt,
			"integer":    TypeInt,
			"bigint":     TypeBigInt,
			"float":      TypeFloat,
			"double":     TypeDouble,
			"real":       TypeDouble,
			"decimal":    TypeDecimal,
			"numeric":    TypeDecimal,
			"char":       TypeChar,
			"varchar":    TypeString,
			"tinytext":   TypeString,
			"text":       TypeLongString,
			"mediumtext": TypeLongString,
			"longtext":   TypeLongString,
			"enum":       TypeString,
			"set":        TypeString,
			"binary":     TypeCharBinary,
			"varbinary":  TypeBinary,
			"tinyblob":   TypeBlob,
			"blob":       TypeBlob,
			"mediumblob": TypeBlob,
			"longblob":   TypeBlob,
			"date":       TypeDate,
			"time":       TypeTime,
			"datetime":   TypeDateTime,
			"timestamp":  TypeTimestamp,
			"year":       TypeSmallInt,
			"json":       TypeJSON,
		},
		toNative: map[CanonicalType]string{
			TypeUnknown:       "varchar",
			TypeBool:          "tinyint(1)",
			TypeTinyInt:       "tinyint",
			TypeSmallInt:      "smallint",
			TypeMediumInt:     "mediumint",
			TypeInt:           "int",
			TypeBigInt:        "bigint",
			TypeFloat:         "float",
			TypeDouble:        "double",
			TypeDecimal:       "decimal",
			TypeMoney:         "decimal",
			TypeChar:          "char",
			TypeString:        "varchar",
			TypeLongString:    "longtext",
			TypeUnicodeString: "varchar",
			TypeCharBinary:    "binary",
			TypeBinary:        "varbinary",
			TypeBlob:          "longblob",
			TypeDate:          "date",
			TypeTime:          "time",
			TypeTimeTz:        "time",
			TypeDateTime:      "datetime",
			TypeDateTimeTz:    "timestamp",
			TypeTimestamp:     "timestamp",
			TypeInterval:      "varchar(64)",
			TypeJSON:          "json",
			TypeGUID:          "binary(16)",
			// AUTO_INCREMENT requires a key, which DDL compilation does
			// not emit, so identity columns land as plain integers.
			TypeAutoIncrTiny:   "tinyint",
			TypeAutoIncrSmall:  "smallint",
			TypeAutoIncrMedium: "mediumint",
			TypeAutoIncrInt:    "int",
			TypeAutoIncrBig:    "bigint",
		},
		// timestamp and datetime read back in the session time zone;
		// normalize to UTC on the way out.
		utcReadExpr: map[string]string{
			"timestamp": "CONVERT_TZ(%s, @@session.time_zone, '+00:00')",
			"datetime":  "CONVERT_TZ(%s, @@session.time_zone, '+00:00')",
		},
	}
}
