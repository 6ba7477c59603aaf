package main

import "strings"

// Reserved words per target dialect. A source column whose name matches
// one of these (case-insensitively) is renamed by appending
// renameSuffix; the original name is kept for SELECT generation.
const renameSuffix = "_"

var sharedReservedWords = []string{
	"ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CHECK",
	"COLUMN", "CREATE", "CROSS", "CURRENT_DATE", "CURRENT_TIME",
	"CURRENT_TIMESTAMP", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP",
	"ELSE", "EXISTS", "FOR", "FOREIGN", "FROM", "GRANT", "GROUP", "HAVING",
	"IN", "INNER", "INSERT", "INTO", "IS", "JOIN", "KEY", "LEFT", "LIKE",
	"NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "PRIMARY", "REFERENCES",
	"RIGHT", "SELECT", "SET", "TABLE", "THEN", "TO", "UNION", "UNIQUE",
	"UPDATE", "VALUES", "WHEN", "WHERE", "WITH",
}

var mysqlReservedWords = append([]string{
	"ADD", "ANALYZE", "BEFORE", "BIGINT", "BINARY", "BLOB", "BOTH",
	"CHANGE", "CHAR", "CONDITION", "CONSTRAINT", "CONTINUE", "CONVERT",
	"DATABASE", "DATABASES", "DECIMAL", "DESCRIBE", "DIV", "DOUBLE",
	"ELSEIF", "ENCLOSED", "ESCAPED", "EXPLAIN", "FLOAT", "FORCE",
	"FULLTEXT", "GENERATED", "IGNORE", "INDEX", "INT", "INTERVAL",
	"KEYS", "KILL", "LEADING", "LIMIT", "LINES", "LOAD", "LOCK", "LONG",
	"MATCH", "MEDIUMINT", "MOD", "NATURAL", "OPTIMIZE", "OPTION",
	"PARTITION", "PROCEDURE", "RANGE", "READ", "REGEXP", "RENAME",
	"REPLACE", "REQUIRE", "RETURN", "REVOKE", "RLIKE", "SCHEMA",
	"SEPARATOR", "SHOW", "SMALLINT", "SPATIAL", "SQL", "SSL", "STARTING",
	"STRAIGHT_JOIN", "TERMINATED", "TINYINT", "TRAILING", "TRIGGER",
	"USAGE", "USE", "USING", "VARBINARY", "VARCHAR", "WHILE", "WRITE",
	"XOR", "ZEROFILL",
}, sharedReservedWords...)

var mssqlReservedWords = append([]string{
	"ANY", "AUTHORIZATION", "BACKUP", "BEGIN", "BREAK", "BROWSE", "BULK",
	"CASCADE", "CLOSE", "CLUSTERED", "COALESCE", "COMMIT", "COMPUTE",
	"CONTAINS", "CONTINUE", "CURRENT", "CURRENT_USER", "CURSOR",
	"DATABASE", "DBCC", "DEALLOCATE", "DECLARE", "DENY", "DISK",
	"DISTRIBUTED", "DUMP", "END", "ERRLVL", "ESCAPE", "EXEC", "EXECUTE",
	"EXIT", "EXTERNAL", "FETCH", "FILE", "FILLFACTOR", "FREETEXT", "FULL",
	"FUNCTION", "GOTO", "HOLDLOCK", "IDENTITY", "IDENTITY_INSERT", "IF",
	"INDEX", "KILL", "LINENO", "MERGE", "NATIONAL", "NOCHECK",
	"NONCLUSTERED", "NULLIF", "OF", "OFF", "OFFSETS", "OPEN",
	"OPENDATASOURCE", "OPENQUERY", "OPENROWSET", "OPENXML", "OVER",
	"PERCENT", "PIVOT", "PLAN", "PRECISION", "PRINT", "PROC", "PROCEDURE",
	"PUBLIC", "RAISERROR", "READ", "READTEXT", "RECONFIGURE",
	"REPLICATION", "RESTORE", "RESTRICT", "RETURN", "REVERT", "REVOKE",
	"ROLLBACK", "ROWCOUNT", "ROWGUIDCOL", "RULE", "SAVE", "SCHEMA",
	"SECURITYAUDIT", "SESSION_USER", "SETUSER", "SHUTDOWN", "SOME",
	"STATISTICS", "SYSTEM_USER", "TABLESAMPLE", "TEXTSIZE", "TOP", "TRAN",
	"TRANSACTION", "TRIGGER", "TRUNCATE", "TSEQUAL", "UNPIVOT",
	"UPDATETEXT", "USE", "USER", "VARYING", "VIEW", "WAITFOR",
	"WHILE", "WRITETEXT",
}, sharedReservedWords...)

var postgresReservedWords = append([]string{
	"ANALYSE", "ANALYZE", "ANY", "ARRAY", "ASYMMETRIC", "AUTHORIZATION",
	"BINARY", "BOTH", "CAST", "COLLATE", "COLLATION", "CONCURRENTLY",
	"CONSTRAINT", "CURRENT_CATALOG", "CURRENT_ROLE", "CURRENT_SCHEMA",
	"CURRENT_USER", "DEFERRABLE", "DO", "END", "EXCEPT", "FALSE", "FETCH",
	"FREEZE", "FULL", "ILIKE", "INITIALLY", "INTERSECT", "ISNULL",
	"LATERAL", "LEADING", "LIMIT", "LOCALTIME", "LOCALTIMESTAMP",
	"NATURAL", "NOTNULL", "OFFSET", "ONLY", "OVERLAPS", "PLACING",
	"RETURNING", "SESSION_USER", "SIMILAR", "SOME", "SYMMETRIC",
	"TABLESAMPLE", "TRAILING", "TRUE", "USER", "USING", "VARIADIC",
	"VERBOSE", "WINDOW",
}, sharedReservedWords...)

var oracleReservedWords = append([]string{
	"ACCESS", "ADD", "ANY", "AUDIT", "CHAR", "CLUSTER", "COMMENT",
	"COMPRESS", "CONNECT", "DATE", "DECIMAL", "EXCLUSIVE", "FILE",
	"FLOAT", "IDENTIFIED", "IMMEDIATE", "INCREMENT", "INDEX", "INITIAL",
	"INTEGER", "INTERSECT", "LEVEL", "LOCK", "LONG", "MAXEXTENTS",
	"MINUS", "MLSLABEL", "MODE", "MODIFY", "NOAUDIT", "NOCOMPRESS",
	"NOWAIT", "NUMBER", "OF", "OFFLINE", "ONLINE", "OPTION", "PCTFREE",
	"PRIOR", "PUBLIC", "RAW", "RENAME", "RESOURCE", "ROW", "ROWID",
	"ROWNUM", "ROWS", "SESSION", "SHARE", "SIZE", "SMALLINT",
	"SUCCESSFUL", "SYNONYM", "SYSDATE", "UID", "USER", "VALIDATE",
	"VARCHAR", "VARCHAR2", "VIEW", "WHENEVER",
}, sharedReservedWords...)

var sqliteReservedWords = append([]string{
	"ABORT", "ACTION", "ADD", "AFTER", "ATTACH", "AUTOINCREMENT",
	"BEFORE", "BEGIN", "CASCADE", "CAST", "COLLATE", "COMMIT",
	"CONFLICT", "CONSTRAINT", "DATABASE", "DEFERRABLE", "DEFERRED",
	"DETACH", "EACH", "END", "ESCAPE", "EXCEPT", "EXCLUSIVE", "EXPLAIN",
	"FAIL", "FULL", "GLOB", "IF", "IGNORE", "IMMEDIATE", "INDEX",
	"INDEXED", "INITIALLY", "INSTEAD", "INTERSECT", "ISNULL", "LIMIT",
	"MATCH", "NATURAL", "NOTNULL", "OF", "OFFSET", "PLAN", "PRAGMA",
	"QUERY", "RAISE", "RECURSIVE", "REGEXP", "REINDEX", "RELEASE",
	"RENAME", "REPLACE", "RESTRICT", "ROLLBACK", "ROW", "SAVEPOINT",
	"TEMP", "TEMPORARY", "TRANSACTION", "TRIGGER", "VACUUM", "VIEW",
	"VIRTUAL", "WITHOUT",
}, sharedReservedWords...)

// reservedWordSet builds an uppercase lookup set from a word list.
func reservedWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set
}
