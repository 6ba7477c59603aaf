package main

// Oracle catalog spellings are uppercase (USER_TAB_COLUMNS DATA_TYPE),
// including the precision-qualified timestamp forms.
func newOracleMapper(log *Logger) *TypeMapper {
	return &TypeMapper{
		dialect:       DialectOracle,
		log:           log,
		genericNative: "VARCHAR2",
		toCanonical: map[string]CanonicalType{
			"NUMBER":                            TypeDecimal,
			"FLOAT":                             TypeDouble,
			"BINARY_FLOAT":                      TypeFloat,
			"BINARY_DOUBLE":                     TypeDouble,
			"CHAR":                              TypeChar,
			"NCHAR":                             TypeUnicodeString,
			"VARCHAR2":                          TypeString,
			"VARCHAR":                           TypeString,
			"NVARCHAR2":                         TypeUnicodeString,
			"CLOB":                              TypeLongString,
			"NCLOB":                             TypeLongString,
			"LONG":                              TypeLongString,
			"RAW":                               TypeBinary,
			"LONG RAW":                          TypeBlob,
			"BLOB":                              TypeBlob,
			"BFILE":                             TypeBlob,
			"DATE":                              TypeDateTime,
			"TIMESTAMP":                         TypeDateTime,
			"TIMESTAMP(6)":                      TypeDateTime,
			"TIMESTAMP(9)":                      TypeDateTime,
			"TIMESTAMP WITH TIME ZONE":          TypeDateTimeTz,
			"TIMESTAMP(6) WITH TIME ZONE":       TypeDateTimeTz,
			"TIMESTAMP WITH LOCAL TIME ZONE":    TypeDateTimeTz,
			"TIMESTAMP(6) WITH LOCAL TIME ZONE": TypeDateTimeTz,
			"INTERVAL YEAR TO MONTH":            TypeInterval,
			"INTERVAL DAY TO SECOND":            TypeInterval,
			"INTERVAL DAY(2) TO SECOND(6)":      TypeInterval,
			"XMLTYPE":                           TypeLongString,
			"JSON":                              TypeJSON,
		},
		toNative: map[CanonicalType]string{
			TypeUnknown:        "VARCHAR2",
			TypeBool:           "NUMBER(1)",
			TypeTinyInt:        "NUMBER(3)",
			TypeSmallInt:       "NUMBER(5)",
			TypeMediumInt:      "NUMBER(7)",
			TypeInt:            "NUMBER(10)",
			TypeBigInt:         "NUMBER(19)",
			TypeFloat:          "BINARY_FLOAT",
			TypeDouble:         "BINARY_DOUBLE",
			TypeDecimal:        "NUMBER",
			TypeMoney:          "NUMBER",
			TypeChar:           "CHAR",
			TypeString:         "VARCHAR2",
			TypeLongString:     "CLOB",
			TypeUnicodeString:  "NVARCHAR2",
			TypeCharBinary:     "RAW",
			TypeBinary:         "RAW",
			TypeBlob:           "BLOB",
			TypeDate:           "DATE",
			TypeTime:           "DATE",
			TypeTimeTz:         "TIMESTAMP WITH TIME ZONE",
			TypeDateTime:       "TIMESTAMP",
			TypeDateTimeTz:     "TIMESTAMP WITH TIME ZONE",
			TypeTimestamp:      "TIMESTAMP",
			TypeInterval:       "INTERVAL DAY TO SECOND",
			TypeJSON:           "CLOB",
			TypeGUID:           "RAW(16)",
			TypeAutoIncrTiny:   "NUMBER(3)",
			TypeAutoIncrSmall:  "NUMBER(5)",
			TypeAutoIncrMedium: "NUMBER(7)",
			TypeAutoIncrInt:    "NUMBER(10)",
			TypeAutoIncrBig:    "NUMBER(19)",
		},
		utcReadExpr: map[string]string{
			"TIMESTAMP WITH TIME ZONE":          "SYS_EXTRACT_UTC(%s)",
			"TIMESTAMP(6) WITH TIME ZONE":       "SYS_EXTRACT_UTC(%s)",
			"TIMESTAMP WITH LOCAL TIME ZONE":    "SYS_EXTRACT_UTC(%s)",
			"TIMESTAMP(6) WITH LOCAL TIME ZONE": "SYS_EXTRACT_UTC(%s)",
		},
	}
}
